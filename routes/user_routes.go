package routes

import (
	"github.com/Govind-619/Plug233/controllers"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes the storefront routes
func initUserRoutes(router *gin.RouterGroup, h *controllers.Controller, auth gin.HandlerFunc) {
	// Public routes (no authentication required)
	router.GET("/products", h.ListProducts)
	router.GET("/products/search", h.SearchProducts)
	router.GET("/products/:id", h.GetProduct)
	router.GET("/categories", h.ListCategories)

	content := router.Group("/content")
	{
		content.GET("/hero", h.ListHeroSlides)
		content.GET("/faqs", h.ListFAQs)
		content.GET("/pages/:slug", h.GetSitePage)
	}
	router.POST("/contact", h.SubmitContact)

	// Cart is session-backed and works before sign-in
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("", h.AddToCart)
		cart.PUT("", h.UpdateCartItem)
		cart.DELETE("", h.ClearCart)
		cart.DELETE("/:productId", h.RemoveFromCart)
		cart.POST("/coupon", h.ApplyCoupon)
	}

	router.POST("/checkout", auth, h.PlaceOrder)

	user := router.Group("/user")
	user.Use(auth)
	{
		initAccountRoutes(user, h)

		user.GET("/orders", h.ListMyOrders)
		user.GET("/orders/:id", h.GetMyOrder)
		user.POST("/orders/:id/cancel", h.CancelMyOrder)
		user.GET("/orders/:id/invoice", h.DownloadInvoice)

		user.POST("/requests", h.SubmitRequest)
		user.GET("/requests", h.ListMyRequests)
		user.GET("/requests/:id", h.GetMyRequest)
		user.POST("/requests/:id/accept", h.AcceptQuote)
	}
}
