package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type ShipmentRepo struct {
	DB *gorm.DB
}

func (r *ShipmentRepo) List(ctx context.Context) ([]models.ShipmentBatch, error) {
	var out []models.ShipmentBatch
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *ShipmentRepo) Get(ctx context.Context, id string) (*models.ShipmentBatch, error) {
	var b models.ShipmentBatch
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// GetWithMembers loads the batch with its orders and requests.
func (r *ShipmentRepo) GetWithMembers(ctx context.Context, id string) (*models.ShipmentBatch, error) {
	var b models.ShipmentBatch
	if err := r.DB.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Requests", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("id = ?", id).First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *ShipmentRepo) Create(ctx context.Context, b *models.ShipmentBatch) error {
	return translate(r.DB.WithContext(ctx).Omit("Orders", "Requests").Create(b).Error)
}

func (r *ShipmentRepo) Save(ctx context.Context, b *models.ShipmentBatch) error {
	return translate(r.DB.WithContext(ctx).Omit("Orders", "Requests").Save(b).Error)
}

func (r *ShipmentRepo) Delete(ctx context.Context, id string) error {
	return affected(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.ShipmentBatch{}))
}
