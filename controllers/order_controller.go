package controllers

import (
	"fmt"
	"net/http"

	"github.com/Govind-619/Plug233/documents"
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

// ListMyOrders handles GET /v1/user/orders
func (h *Controller) ListMyOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	orders, err := h.Orders.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch orders")
		return
	}
	utils.Success(c, "Orders retrieved successfully", orders)
}

// GetMyOrder handles GET /v1/user/orders/:id, which also backs the checkout
// callback page.
func (h *Controller) GetMyOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	order, err := h.Orders.GetMine(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch order")
		return
	}
	utils.Success(c, "Order retrieved successfully", order)
}

// CancelMyOrder handles POST /v1/user/orders/:id/cancel
func (h *Controller) CancelMyOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	order, err := h.Orders.CancelMine(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to cancel order")
		return
	}
	utils.LogInfo("Order %s cancelled by %s", order.ID, user.ID)
	utils.Success(c, "Order cancelled", order)
}

// DownloadInvoice handles GET /v1/user/orders/:id/invoice
func (h *Controller) DownloadInvoice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	order, err := h.Orders.GetMine(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch order")
		return
	}
	if order.Status == models.OrderStatusPending || order.Status == models.OrderStatusCancelled {
		utils.BadRequest(c, "Invoice is only available for paid orders", nil)
		return
	}

	ref := services.ShortRef(order.ID)
	pdf, err := documents.InvoicePDF(order, &user, ref)
	if err != nil {
		utils.LogError("Failed to render invoice for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", ref))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// AdminListOrders handles GET /v1/admin/orders?status=
func (h *Controller) AdminListOrders(c *gin.Context) {
	pagination := utils.NewPagination(c)
	total, orders, err := h.Orders.List(c.Request.Context(), models.OrderStatus(c.Query("status")), pageOf(pagination))
	if err != nil {
		respondError(c, err, "Failed to fetch orders")
		return
	}
	pagination.SetTotal(total)
	utils.SendPaginatedResponse(c, "Orders retrieved successfully", orders, pagination)
}

// AdminGetOrder handles GET /v1/admin/orders/:id
func (h *Controller) AdminGetOrder(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch order")
		return
	}
	utils.Success(c, "Order retrieved successfully", order)
}

type OrderStatusUpdate struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus handles PATCH /v1/admin/orders/:id/status
func (h *Controller) UpdateOrderStatus(c *gin.Context) {
	var body OrderStatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	order, err := h.Orders.SetStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		respondError(c, err, "Failed to update order status")
		return
	}
	utils.LogInfo("Order %s moved to %s", order.ID, order.Status)
	utils.Success(c, "Order status updated", order)
}
