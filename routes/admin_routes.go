package routes

import (
	"github.com/Govind-619/Plug233/controllers"
	"github.com/Govind-619/Plug233/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all back-office routes
func initAdminRoutes(router *gin.RouterGroup, h *controllers.Controller, auth gin.HandlerFunc) {
	admin := router.Group("/admin")
	admin.Use(auth, middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", h.GetDashboard)

		products := admin.Group("/products")
		{
			products.POST("", h.CreateProduct)
			products.POST("/reindex", h.ReindexProducts)
			products.PUT("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)
			products.POST("/:id/variants", h.AddProductVariant)
			products.DELETE("/:id/variants/:variantId", h.DeleteProductVariant)
		}

		categories := admin.Group("/categories")
		{
			categories.POST("", h.CreateCategory)
			categories.PUT("/:id", h.UpdateCategory)
			categories.DELETE("/:id", h.DeleteCategory)
		}

		coupons := admin.Group("/coupons")
		{
			coupons.GET("", h.ListCoupons)
			coupons.POST("", h.CreateCoupon)
			coupons.PUT("/:id", h.UpdateCoupon)
			coupons.DELETE("/:id", h.DeleteCoupon)
		}

		requests := admin.Group("/requests")
		{
			requests.GET("", h.AdminListRequests)
			requests.GET("/:id", h.AdminGetRequest)
			requests.POST("/:id/quote", h.QuoteRequest)
			requests.POST("/:id/convert", h.ConvertRequestToOrder)
			requests.PATCH("/:id/status", h.UpdateRequestStatus)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", h.AdminListOrders)
			orders.GET("/:id", h.AdminGetOrder)
			orders.PATCH("/:id/status", h.UpdateOrderStatus)
		}

		shipments := admin.Group("/shipments")
		{
			shipments.GET("", h.ListShipments)
			shipments.POST("", h.CreateShipment)
			shipments.GET("/eligible", h.EligibleShipmentItems)
			shipments.GET("/:id", h.GetShipment)
			shipments.PUT("/:id", h.UpdateShipment)
			shipments.DELETE("/:id", h.DeleteShipment)
			shipments.PUT("/:id/items", h.AssignShipmentMembers)
			shipments.GET("/:id/labels", h.ShipmentLabels)
			shipments.GET("/:id/labels.pdf", h.ShipmentLabelsPDF)
			shipments.GET("/:id/manifest.xlsx", h.ShipmentManifest)
		}

		admin.GET("/hero", h.ListHeroSlides)
		admin.POST("/hero", h.SaveHeroSlide)
		admin.PUT("/hero/:id", h.SaveHeroSlide)
		admin.DELETE("/hero/:id", h.DeleteHeroSlide)

		admin.GET("/faqs", h.ListFAQs)
		admin.POST("/faqs", h.SaveFAQ)
		admin.PUT("/faqs/:id", h.SaveFAQ)
		admin.DELETE("/faqs/:id", h.DeleteFAQ)

		admin.GET("/pages", h.ListSitePages)
		admin.PUT("/pages/:slug", h.SaveSitePage)

		admin.GET("/contacts", h.ListContactSubmissions)

		admin.POST("/users/:id/wallet", h.AdminCreditWallet)
	}
}
