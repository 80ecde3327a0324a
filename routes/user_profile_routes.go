package routes

import (
	"github.com/Govind-619/Plug233/controllers"
	"github.com/gin-gonic/gin"
)

// initAccountRoutes registers the signed-in customer's account routes
func initAccountRoutes(user *gin.RouterGroup, h *controllers.Controller) {
	user.GET("/profile", h.GetProfile)
	user.PUT("/profile", h.UpdateProfile)

	user.GET("/wallet", h.GetWallet)
	user.GET("/referrals", h.GetReferrals)

	user.GET("/addresses", h.ListAddresses)
	user.POST("/addresses", h.AddAddress)
	user.DELETE("/addresses/:id", h.DeleteAddress)

	user.GET("/wishlist", h.GetWishlist)
	user.POST("/wishlist", h.AddToWishlist)
	user.DELETE("/wishlist/:productId", h.RemoveFromWishlist)

	user.GET("/notifications", h.ListNotifications)
	user.POST("/notifications/read-all", h.MarkAllNotificationsRead)
	user.POST("/notifications/:id/read", h.MarkNotificationRead)
}
