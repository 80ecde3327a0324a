package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType is either percent or fixed.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

type Coupon struct {
	Model
	Code         string          `json:"code" gorm:"uniqueIndex;size:64;not null"`
	DiscountType DiscountType    `json:"discount_type" gorm:"size:10;not null"`
	Value        decimal.Decimal `json:"value" gorm:"type:numeric(12,2);not null"`
	MinOrder     decimal.Decimal `json:"min_order" gorm:"type:numeric(12,2);not null;default:0"`
	Expiry       *time.Time      `json:"expiry"`
	UsageLimit   *int            `json:"usage_limit"`
	UsedCount    int             `json:"used_count" gorm:"not null;default:0"`
}

// Expired reports whether the coupon has an expiry before now.
func (c Coupon) Expired(now time.Time) bool {
	return c.Expiry != nil && c.Expiry.Before(now)
}

// Exhausted reports whether the usage limit has been reached.
func (c Coupon) Exhausted() bool {
	return c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit
}
