package controllers

import (
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetProfile handles GET /v1/user/profile
func (h *Controller) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.Success(c, "Profile retrieved successfully", user)
}

// UpdateProfile handles PUT /v1/user/profile
func (h *Controller) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	profile, err := h.Accounts.UpdateProfile(c.Request.Context(), user.ID, in)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	utils.Success(c, "Profile updated successfully", profile)
}

// GetWallet handles GET /v1/user/wallet
func (h *Controller) GetWallet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	pagination := utils.NewPagination(c)
	wallet, err := h.Accounts.Wallet(c.Request.Context(), user.ID, pageOf(pagination))
	if err != nil {
		respondError(c, err, "Failed to fetch wallet")
		return
	}
	utils.Success(c, "Wallet retrieved successfully", wallet)
}

// GetReferrals handles GET /v1/user/referrals
func (h *Controller) GetReferrals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.Accounts.Referrals(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch referrals")
		return
	}
	utils.Success(c, "Referrals retrieved successfully", view)
}

// ListAddresses handles GET /v1/user/addresses
func (h *Controller) ListAddresses(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	addresses, err := h.Accounts.Addresses(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch addresses")
		return
	}
	utils.Success(c, "Addresses retrieved successfully", addresses)
}

// AddAddress handles POST /v1/user/addresses
func (h *Controller) AddAddress(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var in services.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	addr, err := h.Accounts.AddAddress(c.Request.Context(), user.ID, in)
	if err != nil {
		respondError(c, err, "Failed to add address")
		return
	}
	utils.Created(c, "Address added successfully", addr)
}

// DeleteAddress handles DELETE /v1/user/addresses/:id
func (h *Controller) DeleteAddress(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Accounts.DeleteAddress(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete address")
		return
	}
	utils.Success(c, "Address deleted successfully", nil)
}

// GetWishlist handles GET /v1/user/wishlist
func (h *Controller) GetWishlist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.Accounts.Wishlist(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch wishlist")
		return
	}
	utils.Success(c, "Wishlist retrieved successfully", items)
}

// AddToWishlist handles POST /v1/user/wishlist
func (h *Controller) AddToWishlist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	item, err := h.Accounts.AddToWishlist(c.Request.Context(), user.ID, req.ProductID)
	if err != nil {
		respondError(c, err, "Failed to add to wishlist")
		return
	}
	utils.Success(c, "Product added to wishlist", item)
}

// RemoveFromWishlist handles DELETE /v1/user/wishlist/:productId
func (h *Controller) RemoveFromWishlist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Accounts.RemoveFromWishlist(c.Request.Context(), user.ID, c.Param("productId")); err != nil {
		respondError(c, err, "Failed to remove from wishlist")
		return
	}
	utils.Success(c, "Product removed from wishlist", nil)
}

// ListNotifications handles GET /v1/user/notifications
func (h *Controller) ListNotifications(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	notes, err := h.Notifications.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch notifications")
		return
	}
	unread, err := h.Notifications.UnreadCount(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch notifications")
		return
	}
	utils.Success(c, "Notifications retrieved successfully", gin.H{
		"notifications": notes,
		"unread":        unread,
	})
}

// MarkNotificationRead handles POST /v1/user/notifications/:id/read
func (h *Controller) MarkNotificationRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Notifications.MarkRead(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to update notification")
		return
	}
	utils.Success(c, "Notification marked as read", nil)
}

// MarkAllNotificationsRead handles POST /v1/user/notifications/read-all
func (h *Controller) MarkAllNotificationsRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Notifications.MarkAllRead(c.Request.Context(), user.ID); err != nil {
		respondError(c, err, "Failed to update notifications")
		return
	}
	utils.Success(c, "All notifications marked as read", nil)
}

type WalletCreditRequest struct {
	Amount      decimal.Decimal              `json:"amount"`
	Type        models.WalletTransactionType `json:"type"`
	Description string                       `json:"description"`
}

// AdminCreditWallet handles POST /v1/admin/users/:id/wallet
func (h *Controller) AdminCreditWallet(c *gin.Context) {
	var req WalletCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Type == "" {
		req.Type = models.WalletCredit
	}
	profile, err := h.Accounts.CreditWallet(c.Request.Context(), c.Param("id"), req.Amount, req.Type, req.Description)
	if err != nil {
		respondError(c, err, "Failed to credit wallet")
		return
	}
	utils.LogInfo("Credited %s to wallet of %s (%s)", req.Amount.StringFixed(2), profile.ID, req.Type)
	utils.Success(c, "Wallet credited", gin.H{
		"user_id": profile.ID,
		"balance": profile.WalletBalance.StringFixed(2),
	})
}
