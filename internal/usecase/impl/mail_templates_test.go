package impl

import (
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestBuildDiscountAppliedMail(t *testing.T) {
	msg := buildDiscountAppliedMail([]string{"a@example.com"}, "seller", "Handmade mug", 25)

	assert.Equal(t, "Exclusive Discount on Your Favorite Products!", msg.Subject)
	assert.Contains(t, msg.HTML, "25% discount on Handmade mug")
	assert.Contains(t, msg.HTML, "seller")
	assert.Contains(t, msg.Text, "25% discount")
}

func TestBuildDiscountRemovedMail(t *testing.T) {
	msg := buildDiscountRemovedMail(nil, "seller", "Handmade mug")

	assert.Equal(t, "Update: Discount Removal Notification", msg.Subject)
	assert.Contains(t, msg.HTML, "discount on Handmade mug has been removed by seller")
}

func TestBuildStatusMail(t *testing.T) {
	approved := buildStatusMail([]string{"a@example.com"}, entity.PostStatusApproved)
	assert.Equal(t, "Your Post Has Been Approved", approved.Subject)
	assert.Contains(t, approved.HTML, "Congratulations")
	assert.Contains(t, approved.HTML, "approved")

	rejected := buildStatusMail([]string{"a@example.com"}, entity.PostStatusRejected)
	assert.Equal(t, "Update on Your Post Status", rejected.Subject)
	assert.Contains(t, rejected.HTML, "rejected")
}

func TestBuildOrderMails(t *testing.T) {
	event := &service.PaymentEvent{
		ProductName:  "Handmade mug",
		ProductImage: "https://cdn.example.com/product.png",
		BuyerEmail:   "buyer@example.com",
		OwnerName:    "seller",
		Amount:       25,
		ShippingCost: 5,
		Shipping: entity.ShippingAddress{
			Line1:      "1 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
			Country:    "US",
		},
	}

	confirmation := buildOrderConfirmationMail("buyer@example.com", "buyer", event)
	assert.Equal(t, "Your Order Confirmation - Transaction Successful", confirmation.Subject)
	assert.Equal(t, []string{"buyer@example.com"}, confirmation.To)
	assert.Contains(t, confirmation.HTML, "Dear buyer,")
	assert.Contains(t, confirmation.HTML, "$25.00")
	assert.Contains(t, confirmation.HTML, "$5.00")
	assert.Contains(t, confirmation.HTML, "1 Main St, Springfield, IL, US - 62701")

	newOrder := buildNewOrderMail("seller@example.com", "buyer", event)
	assert.Equal(t, "New Order Received", newOrder.Subject)
	assert.Equal(t, []string{"seller@example.com"}, newOrder.To)
	assert.Contains(t, newOrder.HTML, "Dear seller,")
	assert.Contains(t, newOrder.HTML, "buyer@example.com")
}

func TestFormatShippingAddress_SkipsEmptyLine2(t *testing.T) {
	addr := entity.ShippingAddress{
		Line1:      "1 Main St",
		Line2:      "Apt 4",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "US",
	}
	assert.Equal(t, "1 Main St, Apt 4, Springfield, IL, US - 62701", formatShippingAddress(addr))

	addr.Line2 = ""
	assert.Equal(t, "1 Main St, Springfield, IL, US - 62701", formatShippingAddress(addr))
}
