package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	DB *gorm.DB
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*models.Profile, error) {
	var p models.Profile
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// GetMany returns the profiles for ids keyed by id. Missing ids are absent.
func (r *ProfileRepo) GetMany(ctx context.Context, ids []string) (map[string]models.Profile, error) {
	out := make(map[string]models.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var profiles []models.Profile
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}

func (r *ProfileRepo) GetByReferralCode(ctx context.Context, code string) (*models.Profile, error) {
	var p models.Profile
	if err := r.DB.WithContext(ctx).Where("referral_code = ?", code).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	return translate(r.DB.WithContext(ctx).Create(p).Error)
}

// Update writes the given columns only.
func (r *ProfileRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return affected(r.DB.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(fields))
}

// DebitWallet subtracts amount only while the balance covers it. It returns
// false when the balance was insufficient.
func (r *ProfileRepo) DebitWallet(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ? AND wallet_balance >= ?", id, amount).
		Update("wallet_balance", gorm.Expr("ROUND(wallet_balance - ?, 2)", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ProfileRepo) CreditWallet(ctx context.Context, id string, amount decimal.Decimal) error {
	return affected(r.DB.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", id).
		Update("wallet_balance", gorm.Expr("ROUND(wallet_balance + ?, 2)", amount)))
}

func (r *ProfileRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Profile{}).Count(&n).Error
	return n, err
}
