package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type WishlistRepo struct {
	DB *gorm.DB
}

func (r *WishlistRepo) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	var out []models.WishlistItem
	err := r.DB.WithContext(ctx).Preload("Product").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

// Add is a no-op when the product is already on the list.
func (r *WishlistRepo) Add(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		FirstOrCreate(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *WishlistRepo) Remove(ctx context.Context, userID, productID string) error {
	return affected(r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}))
}
