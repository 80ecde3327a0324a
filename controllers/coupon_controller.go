package controllers

import (
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

// ApplyCouponRequest represents the request body for applying a coupon
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon previews a coupon against the current cart. Usage is only
// counted once an order is paid.
func (h *Controller) ApplyCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCoupon called")

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	_, subtotal, err := h.Checkout.Price(c.Request.Context(), loadCart(c))
	if err != nil {
		respondError(c, err, "Failed to price cart")
		return
	}

	quote, err := h.Coupons.Evaluate(c.Request.Context(), req.Code, subtotal)
	if err != nil {
		utils.LogDebug("Coupon %s rejected: %v", req.Code, err)
		respondError(c, err, "Failed to apply coupon")
		return
	}

	utils.Success(c, "Coupon applied successfully", gin.H{
		"code":          quote.Coupon.Code,
		"discount_type": quote.Coupon.DiscountType,
		"subtotal":      quote.Subtotal.StringFixed(2),
		"discount":      quote.Discount.StringFixed(2),
		"total":         quote.Total.StringFixed(2),
	})
}

// ListCoupons handles GET /v1/admin/coupons
func (h *Controller) ListCoupons(c *gin.Context) {
	coupons, err := h.Coupons.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch coupons")
		return
	}
	utils.Success(c, "Coupons retrieved successfully", coupons)
}

// CreateCoupon handles POST /v1/admin/coupons
func (h *Controller) CreateCoupon(c *gin.Context) {
	var in services.CouponInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	coupon, err := h.Coupons.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create coupon")
		return
	}
	utils.LogInfo("Coupon %s created", coupon.Code)
	utils.Created(c, "Coupon created successfully", coupon)
}

// UpdateCoupon handles PUT /v1/admin/coupons/:id
func (h *Controller) UpdateCoupon(c *gin.Context) {
	var in services.CouponInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	coupon, err := h.Coupons.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to update coupon")
		return
	}
	utils.Success(c, "Coupon updated successfully", coupon)
}

// DeleteCoupon handles DELETE /v1/admin/coupons/:id
func (h *Controller) DeleteCoupon(c *gin.Context) {
	if err := h.Coupons.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete coupon")
		return
	}
	utils.Success(c, "Coupon deleted successfully", nil)
}
