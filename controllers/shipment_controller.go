package controllers

import (
	"fmt"
	"net/http"

	"github.com/Govind-619/Plug233/documents"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// ListShipments handles GET /v1/admin/shipments
func (h *Controller) ListShipments(c *gin.Context) {
	batches, err := h.Shipments.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch shipments")
		return
	}
	utils.Success(c, "Shipments retrieved successfully", batches)
}

// GetShipment handles GET /v1/admin/shipments/:id
func (h *Controller) GetShipment(c *gin.Context) {
	batch, err := h.Shipments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch shipment")
		return
	}
	utils.Success(c, "Shipment retrieved successfully", batch)
}

// CreateShipment handles POST /v1/admin/shipments
func (h *Controller) CreateShipment(c *gin.Context) {
	var in services.BatchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	batch, err := h.Shipments.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create shipment")
		return
	}
	utils.LogInfo("Shipment batch %s created", batch.ID)
	utils.Created(c, "Shipment created successfully", batch)
}

// UpdateShipment handles PUT /v1/admin/shipments/:id. A status change
// cascades to the batch members.
func (h *Controller) UpdateShipment(c *gin.Context) {
	var in services.BatchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	batch, err := h.Shipments.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to update shipment")
		return
	}
	utils.Success(c, "Shipment updated successfully", batch)
}

// DeleteShipment handles DELETE /v1/admin/shipments/:id
func (h *Controller) DeleteShipment(c *gin.Context) {
	if err := h.Shipments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete shipment")
		return
	}
	utils.Success(c, "Shipment deleted successfully", nil)
}

// EligibleShipmentItems handles GET /v1/admin/shipments/eligible
func (h *Controller) EligibleShipmentItems(c *gin.Context) {
	eligible, err := h.Shipments.Eligible(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch eligible items")
		return
	}
	utils.Success(c, "Eligible items retrieved successfully", eligible)
}

type AssignMembersRequest struct {
	OrderIDs   []string `json:"order_ids"`
	RequestIDs []string `json:"request_ids"`
}

// AssignShipmentMembers handles PUT /v1/admin/shipments/:id/items. The body
// replaces the batch's members.
func (h *Controller) AssignShipmentMembers(c *gin.Context) {
	var req AssignMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	batch, err := h.Shipments.AssignMembers(c.Request.Context(), c.Param("id"), req.OrderIDs, req.RequestIDs)
	if err != nil {
		respondError(c, err, "Failed to assign items")
		return
	}
	utils.LogInfo("Batch %s now holds %d orders and %d requests", batch.ID, len(batch.Orders), len(batch.Requests))
	utils.Success(c, "Shipment items updated", batch)
}

// ShipmentLabels handles GET /v1/admin/shipments/:id/labels (JSON) and
// /labels.pdf (printable 4x6 labels).
func (h *Controller) ShipmentLabels(c *gin.Context) {
	batch, labels, err := h.Shipments.Labels(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build labels")
		return
	}
	utils.Success(c, "Labels retrieved successfully", gin.H{"batch": batch, "labels": labels})
}

func (h *Controller) ShipmentLabelsPDF(c *gin.Context) {
	batch, labels, err := h.Shipments.Labels(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build labels")
		return
	}
	pdf, err := documents.LabelsPDF(labels)
	if err != nil {
		utils.LogError("Failed to render labels for batch %s: %v", batch.ID, err)
		utils.InternalServerError(c, "Failed to generate labels", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=labels-%s.pdf", fileStem(batch.BatchName, batch.ID)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ShipmentManifest handles GET /v1/admin/shipments/:id/manifest.xlsx
func (h *Controller) ShipmentManifest(c *gin.Context) {
	batch, labels, err := h.Shipments.Labels(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build manifest")
		return
	}
	data, err := documents.ManifestXLSX(batch, labels)
	if err != nil {
		utils.LogError("Failed to render manifest for batch %s: %v", batch.ID, err)
		utils.InternalServerError(c, "Failed to generate manifest", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=manifest-%s.xlsx", fileStem(batch.BatchName, batch.ID)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func fileStem(name, id string) string {
	if s := slug.Make(name); s != "" {
		return s
	}
	return services.ShortRef(id)
}
