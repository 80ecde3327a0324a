package repository

import (
	"context"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type CouponRepo struct {
	DB *gorm.DB
}

// GetByCode looks the code up case-insensitively.
func (r *CouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var c models.Coupon
	if err := r.DB.WithContext(ctx).
		Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CouponRepo) Get(ctx context.Context, id string) (*models.Coupon, error) {
	var c models.Coupon
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CouponRepo) List(ctx context.Context) ([]models.Coupon, error) {
	var out []models.Coupon
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *CouponRepo) Create(ctx context.Context, c *models.Coupon) error {
	return translate(r.DB.WithContext(ctx).Create(c).Error)
}

func (r *CouponRepo) Save(ctx context.Context, c *models.Coupon) error {
	return translate(r.DB.WithContext(ctx).Save(c).Error)
}

func (r *CouponRepo) Delete(ctx context.Context, id string) error {
	return affected(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Coupon{}))
}

// IncrementUsage bumps used_count only while the usage limit allows it. It
// returns false when the coupon was already exhausted.
func (r *CouponRepo) IncrementUsage(ctx context.Context, id string) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Coupon{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", id).
		Update("used_count", gorm.Expr("used_count + ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
