package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type NotificationRepo struct {
	DB *gorm.DB
}

func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return translate(r.DB.WithContext(ctx).Create(n).Error)
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *NotificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	return affected(r.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true))
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	return r.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func (r *NotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).Count(&n).Error
	return n, err
}
