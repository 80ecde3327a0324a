package models

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod names how an order is settled.
type PaymentMethod string

const (
	PaymentMethodWallet   PaymentMethod = "wallet"
	PaymentMethodPaystack PaymentMethod = "paystack"
	PaymentMethodStripe   PaymentMethod = "stripe"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodWallet, PaymentMethodPaystack, PaymentMethodStripe:
		return true
	}
	return false
}

type Order struct {
	Model
	UserID          string          `json:"user_id" gorm:"size:36;not null;index"`
	Status          OrderStatus     `json:"status" gorm:"size:20;not null;default:pending;index"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:numeric(12,2);not null"`
	Currency        string          `json:"currency" gorm:"size:3;not null;default:GHS"`
	CouponID        *string         `json:"coupon_id" gorm:"size:36"`
	DiscountAmount  decimal.Decimal `json:"discount_amount" gorm:"type:numeric(12,2);not null;default:0"`
	PaymentMethod   PaymentMethod   `json:"payment_method" gorm:"size:20"`
	ShipmentBatchID *string         `json:"shipment_batch_id" gorm:"size:36;index"`
	Items           []OrderItem     `json:"items,omitempty"`
}

// OrderItem snapshots the unit price at purchase time.
type OrderItem struct {
	Model
	OrderID   string          `json:"order_id" gorm:"size:36;not null;index"`
	ProductID string          `json:"product_id" gorm:"size:36;not null"`
	VariantID *string         `json:"variant_id" gorm:"size:36"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
}

// LineTotal is price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
