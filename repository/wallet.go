package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type WalletRepo struct {
	DB *gorm.DB
}

func (r *WalletRepo) Record(ctx context.Context, t *models.WalletTransaction) error {
	return translate(r.DB.WithContext(ctx).Create(t).Error)
}

func (r *WalletRepo) ListByUser(ctx context.Context, userID string, page Page) (int64, []models.WalletTransaction, error) {
	q := r.DB.WithContext(ctx).Model(&models.WalletTransaction{}).Where("user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var out []models.WalletTransaction
	if err := page.apply(q.Order("created_at DESC")).Find(&out).Error; err != nil {
		return 0, nil, err
	}
	return total, out, nil
}
