package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	Model
	Name        string           `json:"name" gorm:"not null"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price" gorm:"type:numeric(12,2);not null"`
	Currency    string           `json:"currency" gorm:"size:3;not null;default:GHS"`
	Stock       int              `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	SKU         string           `json:"sku" gorm:"index"`
	Images      []string         `json:"images" gorm:"serializer:json"`
	CategoryID  *string          `json:"category_id" gorm:"size:36;index"`
	Category    *Category        `json:"category,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
}

// ImageURL returns the first image or an empty string.
func (p Product) ImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type ProductVariant struct {
	Model
	ProductID       string          `json:"product_id" gorm:"size:36;not null;index"`
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	SKU             string          `json:"sku"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment" gorm:"type:numeric(12,2);not null;default:0"`
	Stock           int             `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
}

// UnitPrice is the product price with the variant adjustment applied.
func (v ProductVariant) UnitPrice(p Product) decimal.Decimal {
	return p.Price.Add(v.PriceAdjustment)
}
