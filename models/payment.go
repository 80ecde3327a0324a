package models

import (
	"github.com/shopspring/decimal"
)

const PaymentStatusCompleted = "completed"

type Payment struct {
	Model
	UserID        string          `json:"user_id" gorm:"size:36;index"`
	OrderID       string          `json:"order_id" gorm:"size:36;not null;index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Currency      string          `json:"currency" gorm:"size:3;not null"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"size:20;not null"`
	Status        string          `json:"status" gorm:"size:20;not null"`
	// TransactionID is the gateway reference. Unique so a redelivered
	// webhook cannot settle twice.
	TransactionID *string `json:"transaction_id" gorm:"uniqueIndex;size:255"`
}
