package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type AddressRepo struct {
	DB *gorm.DB
}

func (r *AddressRepo) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	var out []models.Address
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("is_default DESC").Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *AddressRepo) Create(ctx context.Context, a *models.Address) error {
	return translate(r.DB.WithContext(ctx).Create(a).Error)
}

// ClearDefault unsets the default flag on every address of the user.
func (r *AddressRepo) ClearDefault(ctx context.Context, userID string) error {
	return r.DB.WithContext(ctx).Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}

func (r *AddressRepo) Delete(ctx context.Context, userID, id string) error {
	return affected(r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{}))
}

// DefaultsFor returns the default address of each user that has one.
func (r *AddressRepo) DefaultsFor(ctx context.Context, userIDs []string) (map[string]models.Address, error) {
	out := make(map[string]models.Address, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var rows []models.Address
	if err := r.DB.WithContext(ctx).
		Where("user_id IN ? AND is_default = ?", userIDs, true).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, a := range rows {
		out[a.UserID] = a
	}
	return out, nil
}
