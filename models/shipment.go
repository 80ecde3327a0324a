package models

import (
	"time"
)

// ShipmentBatch groups orders and requests shipped together under one tracking number.
type ShipmentBatch struct {
	Model
	BatchName         string         `json:"batch_name" gorm:"not null"`
	ShipmentDate      *time.Time     `json:"shipment_date"`
	Status            ShipmentStatus `json:"status" gorm:"size:20;not null;default:pending"`
	TrackingNumber    string         `json:"tracking_number"`
	EstimatedDelivery *time.Time     `json:"estimated_delivery"`
	Orders            []Order        `json:"orders,omitempty"`
	Requests          []Request      `json:"requests,omitempty"`
}
