package controllers

import (
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	CouponCode    string               `json:"coupon_code"`
}

// PlaceOrder handles POST /v1/checkout. A wallet order is paid on the spot and
// the cart is cleared. A gateway order stays pending and the response carries
// the redirect URL.
func (h *Controller) PlaceOrder(c *gin.Context) {
	utils.LogInfo("Checkout called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	result, err := h.Checkout.Checkout(c.Request.Context(), services.CheckoutInput{
		Profile:    &user,
		Cart:       loadCart(c),
		Method:     req.PaymentMethod,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		utils.LogError("Checkout failed for user %s: %v", user.ID, err)
		respondError(c, err, utils.ErrCheckoutFailed)
		return
	}

	if result.Order.Status == models.OrderStatusPaid {
		if err := saveCart(c, loadCart(c).Clear()); err != nil {
			utils.LogError("Failed to clear cart after order %s: %v", result.Order.ID, err)
		}
	}
	utils.Created(c, "Order placed successfully", result)
}
