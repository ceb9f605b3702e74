package impl

import (
	"fmt"
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
)

// Mail builders for every notification kind the services send. Each
// builder renders one typed input set into a ready-to-send message;
// the services never concatenate email bodies inline.

func buildDiscountAppliedMail(recipients []string, ownerName, productName string, percent float64) *service.MailMessage {
	html := fmt.Sprintf(`<p>Dear Customer,</p>
<p>We are excited to announce an exclusive discount on a product by %s!</p>
<p>Enjoy a %.0f%% discount on %s. Don't miss this limited-time offer!</p>
<p>Best regards,<br/>The Bazaar Team</p>`, ownerName, percent, productName)

	text := fmt.Sprintf("Dear Customer, We are excited to announce an exclusive discount on our products! Enjoy a %.0f%% discount on %s. Don't miss this limited-time offer! Best regards, The Bazaar Team", percent, productName)

	return &service.MailMessage{
		To:      recipients,
		Subject: "Exclusive Discount on Your Favorite Products!",
		HTML:    html,
		Text:    text,
	}
}

func buildDiscountRemovedMail(recipients []string, ownerName, productName string) *service.MailMessage {
	html := fmt.Sprintf(`<p>Dear Customer,</p>
<p>We wanted to inform you that the previous discount on %s has been removed by %s.</p>
<p>We appreciate your understanding and continued support.</p>
<p>Best regards,<br/>The Bazaar Team</p>`, productName, ownerName)

	text := fmt.Sprintf("Dear Customer, We wanted to inform you that the previous discount on %s has been removed. We appreciate your understanding and continued support. Best regards, The Bazaar Team", productName)

	return &service.MailMessage{
		To:      recipients,
		Subject: "Update: Discount Removal Notification",
		HTML:    html,
		Text:    text,
	}
}

func buildStatusMail(recipients []string, status entity.PostStatus) *service.MailMessage {
	if status == entity.PostStatusApproved {
		return &service.MailMessage{
			To:      recipients,
			Subject: "Your Post Has Been Approved",
			HTML: `<h1>Congratulations!</h1>
<p>We are pleased to inform you that your post has been <strong>approved</strong> by the admin.</p>
<p>Thank you for your contribution.</p>
<p>Best regards,</p>
<p>The Bazaar Team</p>`,
			Text: "Congratulations! Your post has been approved by the admin. Thank you for your contribution. Best regards, The Bazaar Team",
		}
	}

	return &service.MailMessage{
		To:      recipients,
		Subject: "Update on Your Post Status",
		HTML: `<h1>Important Update</h1>
<p>We regret to inform you that your post has been <strong>rejected</strong> by the admin.</p>
<p>If you have any questions or would like to discuss further, please feel free to contact us.</p>
<p>Best regards,</p>
<p>The Bazaar Team</p>`,
		Text: "Important Update: Your post has been rejected by the admin. If you have any questions or would like to discuss further, please feel free to contact us. Best regards, The Bazaar Team",
	}
}

func buildOrderConfirmationMail(to, buyerName string, event *service.PaymentEvent) *service.MailMessage {
	html := fmt.Sprintf(`<h1>Transaction Successful</h1>
<p>Dear %s,</p>
<p>Thank you for your purchase! We are pleased to confirm your transaction was successful.</p>
<h3>Order Details:</h3>
<ul>
    <li><strong>Product Name:</strong> %s</li>
    <li><strong>Product Image:</strong> %s</li>
    <li><strong>Amount Paid:</strong> product price $%.2f and shipping cost $%.2f</li>
</ul>
<h3>Shipping Address:</h3>
<p>%s</p>
<p>We will notify you once your order is shipped.</p>
<p>Thank you for shopping with us!</p>
<p>Best regards,<br/>The Bazaar Team</p>`,
		buyerName, event.ProductName, event.ProductImage, event.Amount, event.ShippingCost,
		formatShippingAddress(event.Shipping))

	return &service.MailMessage{
		To:      []string{to},
		Subject: "Your Order Confirmation - Transaction Successful",
		HTML:    html,
	}
}

func buildNewOrderMail(to, buyerName string, event *service.PaymentEvent) *service.MailMessage {
	html := fmt.Sprintf(`<h1>New Order Received</h1>
<p>Dear %s,</p>
<p>You have received a new order on your post.</p>
<h3>Order Details:</h3>
<ul>
    <li><strong>Product Name:</strong> %s</li>
    <li><strong>Product Image:</strong> %s</li>
    <li><strong>Buyer Name:</strong> %s</li>
    <li><strong>Buyer Email:</strong> %s</li>
    <li><strong>Amount Paid:</strong> $%.2f</li>
    <li><strong>Shipping Cost:</strong> $%.2f</li>
</ul>
<h3>Shipping Address:</h3>
<p>%s</p>
<p>Please proceed with the necessary steps to fulfill the order.</p>
<p>Best regards,<br/>The Bazaar Team</p>`,
		event.OwnerName, event.ProductName, event.ProductImage, buyerName, event.BuyerEmail,
		event.Amount, event.ShippingCost, formatShippingAddress(event.Shipping))

	return &service.MailMessage{
		To:      []string{to},
		Subject: "New Order Received",
		HTML:    html,
	}
}

func formatShippingAddress(addr entity.ShippingAddress) string {
	parts := []string{addr.Line1}
	if addr.Line2 != "" {
		parts = append(parts, addr.Line2)
	}
	parts = append(parts, addr.City, addr.State, addr.Country)

	return strings.Join(parts, ", ") + " - " + addr.PostalCode
}
