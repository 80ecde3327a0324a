package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type PaymentRepo struct {
	DB *gorm.DB
}

func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return translate(r.DB.WithContext(ctx).Create(p).Error)
}

// ExistsByTransaction reports whether a payment with the gateway
// transaction id has already been recorded.
func (r *PaymentRepo) ExistsByTransaction(ctx context.Context, transactionID string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("transaction_id = ?", transactionID).Count(&n).Error
	return n > 0, err
}

func (r *PaymentRepo) ListByOrder(ctx context.Context, orderID string) ([]models.Payment, error) {
	var out []models.Payment
	err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at ASC").Find(&out).Error
	return out, err
}
