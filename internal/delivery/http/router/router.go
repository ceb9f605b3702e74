// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PostHandler     *handler.PostHandler
	UserHandler     *handler.UserHandler
	CheckoutHandler *handler.CheckoutHandler
	WebhookHandler  *handler.WebhookHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	postHandler     *handler.PostHandler
	userHandler     *handler.UserHandler
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		postHandler:     params.PostHandler,
		userHandler:     params.UserHandler,
		checkoutHandler: params.CheckoutHandler,
		webhookHandler:  params.WebhookHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Product post routes
	e.POST("/post", r.postHandler.CreatePost)
	e.PUT("/post", r.postHandler.EditPost)
	e.GET("/post", r.postHandler.ListPosts)
	e.PUT("/post/deletePost", r.postHandler.DeletePost)
	e.PUT("/post/like", r.postHandler.ToggleLike)
	e.PUT("/post/addDiscount", r.postHandler.AddDiscount)
	e.PUT("/post/removeDiscount", r.postHandler.RemoveDiscount)
	e.PUT("/post/statusUpdate", r.postHandler.UpdateStatus)
	e.POST("/userPosts", r.postHandler.ListUserPosts)
	e.PUT("/postComment", r.postHandler.AddComment)

	// Admin user routes
	userGroup := e.Group("/user")
	{
		userGroup.GET("/getAll", r.userHandler.ListUsers)
		userGroup.DELETE("/deleteUser", r.userHandler.DeleteUser)
	}

	// Payment checkout
	e.POST("/create-checkout-session", r.checkoutHandler.CreateCheckoutSession)

	// Webhooks: identity-provider sync and payment completion
	e.POST("/api/webhook", r.webhookHandler.HandleIdentityEvent)
	e.POST("/webhook", r.webhookHandler.HandlePaymentEvent)
}
