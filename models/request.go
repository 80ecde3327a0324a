package models

import (
	"github.com/shopspring/decimal"
)

// PlaceholderLink is stored when a request is submitted without a link or image.
const PlaceholderLink = "https://placeholder.com"

// Request is a customer-submitted request-to-buy for an item not in the catalog.
type Request struct {
	Model
	UserID          string           `json:"user_id" gorm:"size:36;not null;index"`
	ProductName     string           `json:"product_name" gorm:"not null"`
	LinkOrImage     string           `json:"link_or_image"`
	Description     string           `json:"description"`
	Budget          *decimal.Decimal `json:"budget" gorm:"type:numeric(12,2)"`
	Status          RequestStatus    `json:"status" gorm:"size:20;not null;default:pending;index"`
	QuotePrice      *decimal.Decimal `json:"quote_price" gorm:"type:numeric(12,2)"`
	OrderID         *string          `json:"order_id" gorm:"size:36"`
	ShipmentBatchID *string          `json:"shipment_batch_id" gorm:"size:36;index"`
}
