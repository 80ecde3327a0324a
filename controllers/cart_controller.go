package controllers

import (
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type CartLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice string            `json:"total_price"`
}

func cartView(cart models.Cart) cartResponse {
	return cartResponse{
		Items:      cart.Items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice().StringFixed(2),
	}
}

// loadCart reads the cart from the session. A corrupt value is discarded.
func loadCart(c *gin.Context) models.Cart {
	raw, _ := sessions.Default(c).Get(models.CartSessionKey).(string)
	cart, err := models.DecodeCart(raw)
	if err != nil {
		utils.LogError("Discarding unreadable cart: %v", err)
	}
	return cart
}

func saveCart(c *gin.Context, cart models.Cart) error {
	encoded, err := cart.Encode()
	if err != nil {
		return err
	}
	session := sessions.Default(c)
	session.Set(models.CartSessionKey, encoded)
	return session.Save()
}

func storeCart(c *gin.Context, cart models.Cart, message string) {
	if err := saveCart(c, cart); err != nil {
		utils.LogError("Failed to save cart: %v", err)
		utils.InternalServerError(c, "Failed to save cart", nil)
		return
	}
	utils.Success(c, message, cartView(cart))
}

// GetCart handles GET /v1/cart
func (h *Controller) GetCart(c *gin.Context) {
	utils.Success(c, "Cart retrieved successfully", cartView(loadCart(c)))
}

// AddToCart handles POST /v1/cart
func (h *Controller) AddToCart(c *gin.Context) {
	var req CartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	item, err := h.Catalog.CartLine(c.Request.Context(), req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		respondError(c, err, "Failed to add to cart")
		return
	}
	utils.LogDebug("Adding %s x%d to cart", item.ProductID, item.Quantity)
	storeCart(c, loadCart(c).Add(item), "Item added to cart")
}

// UpdateCartItem handles PUT /v1/cart. A quantity of 0 removes the line.
func (h *Controller) UpdateCartItem(c *gin.Context) {
	var req CartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	storeCart(c, loadCart(c).UpdateQuantity(req.ProductID, req.VariantID, req.Quantity), "Cart updated")
}

// RemoveFromCart handles DELETE /v1/cart/:productId?variant=
func (h *Controller) RemoveFromCart(c *gin.Context) {
	storeCart(c, loadCart(c).Remove(c.Param("productId"), c.Query("variant")), "Item removed from cart")
}

// ClearCart handles DELETE /v1/cart
func (h *Controller) ClearCart(c *gin.Context) {
	storeCart(c, loadCart(c).Clear(), "Cart cleared")
}
