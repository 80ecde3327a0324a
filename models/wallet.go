package models

import (
	"github.com/shopspring/decimal"
)

// WalletTransactionType tags a ledger row.
type WalletTransactionType string

const (
	WalletCredit   WalletTransactionType = "credit"
	WalletDebit    WalletTransactionType = "debit"
	WalletReferral WalletTransactionType = "referral"
	WalletCashback WalletTransactionType = "cashback"
	WalletRefund   WalletTransactionType = "refund"
)

// WalletTransaction is a signed ledger entry. Debits are negative.
type WalletTransaction struct {
	Model
	UserID      string                `json:"user_id" gorm:"size:36;not null;index"`
	Amount      decimal.Decimal       `json:"amount" gorm:"type:numeric(12,2);not null"`
	Type        WalletTransactionType `json:"type" gorm:"size:20;not null"`
	ReferenceID string                `json:"reference_id" gorm:"size:64"`
	Description string                `json:"description"`
}
