package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReferralRepo struct {
	DB *gorm.DB
}

func (r *ReferralRepo) Create(ctx context.Context, ref *models.Referral) error {
	return translate(r.DB.WithContext(ctx).Create(ref).Error)
}

func (r *ReferralRepo) ListByReferrer(ctx context.Context, referrerID string) ([]models.Referral, error) {
	var out []models.Referral
	err := r.DB.WithContext(ctx).Where("referrer_id = ?", referrerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *ReferralRepo) TotalCommission(ctx context.Context, referrerID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.WithContext(ctx).Model(&models.Referral{}).
		Where("referrer_id = ? AND status = ?", referrerID, models.ReferralCompleted).
		Select("COALESCE(SUM(commission), 0)").
		Row().Scan(&sum)
	return sum.Round(2), err
}
