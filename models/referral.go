package models

import (
	"github.com/shopspring/decimal"
)

const (
	ReferralPending   = "pending"
	ReferralCompleted = "completed"
)

type Referral struct {
	Model
	ReferrerID string          `json:"referrer_id" gorm:"size:36;not null;index"`
	ReferredID string          `json:"referred_id" gorm:"size:36;not null;uniqueIndex"`
	Commission decimal.Decimal `json:"commission" gorm:"type:numeric(12,2);not null;default:0"`
	Status     string          `json:"status" gorm:"size:20;not null;default:pending"`
}
