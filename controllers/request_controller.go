package controllers

import (
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SubmitRequest handles POST /v1/user/requests
func (h *Controller) SubmitRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var in services.RequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req, err := h.Requests.Submit(c.Request.Context(), user.ID, in)
	if err != nil {
		respondError(c, err, "Failed to submit request")
		return
	}
	utils.LogInfo("Request %s submitted by %s", req.ID, user.ID)
	utils.Created(c, "Request submitted successfully", req)
}

// ListMyRequests handles GET /v1/user/requests
func (h *Controller) ListMyRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	requests, err := h.Requests.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch requests")
		return
	}
	utils.Success(c, "Requests retrieved successfully", requests)
}

// GetMyRequest handles GET /v1/user/requests/:id
func (h *Controller) GetMyRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	req, err := h.Requests.Get(c.Request.Context(), c.Param("id"))
	if err != nil || req.UserID != user.ID {
		utils.NotFound(c, "Request not found")
		return
	}
	utils.Success(c, "Request retrieved successfully", req)
}

// AcceptQuote handles POST /v1/user/requests/:id/accept
func (h *Controller) AcceptQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	req, err := h.Requests.Accept(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to accept quote")
		return
	}
	utils.Success(c, "Quote accepted", req)
}

// AdminListRequests handles GET /v1/admin/requests?status=
func (h *Controller) AdminListRequests(c *gin.Context) {
	pagination := utils.NewPagination(c)
	total, requests, err := h.Requests.List(c.Request.Context(), models.RequestStatus(c.Query("status")), pageOf(pagination))
	if err != nil {
		respondError(c, err, "Failed to fetch requests")
		return
	}
	pagination.SetTotal(total)
	utils.SendPaginatedResponse(c, "Requests retrieved successfully", requests, pagination)
}

// AdminGetRequest handles GET /v1/admin/requests/:id
func (h *Controller) AdminGetRequest(c *gin.Context) {
	req, err := h.Requests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch request")
		return
	}
	utils.Success(c, "Request retrieved successfully", req)
}

type QuoteRequest struct {
	QuotePrice decimal.Decimal `json:"quote_price"`
}

// QuoteRequest handles POST /v1/admin/requests/:id/quote
func (h *Controller) QuoteRequest(c *gin.Context) {
	var body QuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	req, err := h.Requests.Quote(c.Request.Context(), c.Param("id"), body.QuotePrice)
	if err != nil {
		respondError(c, err, "Failed to quote request")
		return
	}
	utils.LogInfo("Request %s quoted at %s", req.ID, body.QuotePrice.StringFixed(2))
	utils.Success(c, "Quote sent", req)
}

// ConvertRequestToOrder handles POST /v1/admin/requests/:id/convert
func (h *Controller) ConvertRequestToOrder(c *gin.Context) {
	order, err := h.Requests.ConvertToOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to convert request")
		return
	}
	utils.LogInfo("Request %s converted to order %s", c.Param("id"), order.ID)
	utils.Created(c, "Order created from request", order)
}

type RequestStatusUpdate struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

// UpdateRequestStatus handles PATCH /v1/admin/requests/:id/status
func (h *Controller) UpdateRequestStatus(c *gin.Context) {
	var body RequestStatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	req, err := h.Requests.SetStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		respondError(c, err, "Failed to update request status")
		return
	}
	utils.Success(c, "Request status updated", req)
}
