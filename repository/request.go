package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type RequestRepo struct {
	DB *gorm.DB
}

func (r *RequestRepo) Create(ctx context.Context, req *models.Request) error {
	return translate(r.DB.WithContext(ctx).Create(req).Error)
}

func (r *RequestRepo) Get(ctx context.Context, id string) (*models.Request, error) {
	var req models.Request
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&req).Error; err != nil {
		return nil, translate(err)
	}
	return &req, nil
}

func (r *RequestRepo) ListByUser(ctx context.Context, userID string) ([]models.Request, error) {
	var out []models.Request
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *RequestRepo) List(ctx context.Context, status models.RequestStatus, page Page) (int64, []models.Request, error) {
	q := r.DB.WithContext(ctx).Model(&models.Request{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var out []models.Request
	if err := page.apply(q.Order("created_at DESC")).Find(&out).Error; err != nil {
		return 0, nil, err
	}
	return total, out, nil
}

// Transition applies fields (which must include status) only when the
// request's current status is one of from.
func (r *RequestRepo) Transition(ctx context.Context, id string, from []models.RequestStatus, fields map[string]interface{}) error {
	if len(from) == 0 {
		return ErrNotFound
	}
	return affected(r.DB.WithContext(ctx).Model(&models.Request{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(fields))
}

func (r *RequestRepo) TransitionBatch(ctx context.Context, batchID string, from []models.RequestStatus, next models.RequestStatus) (int64, error) {
	if len(from) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).Model(&models.Request{}).
		Where("shipment_batch_id = ? AND status IN ?", batchID, from).
		Update("status", next)
	return res.RowsAffected, res.Error
}

func (r *RequestRepo) ListByStatuses(ctx context.Context, statuses []models.RequestStatus) ([]models.Request, error) {
	var out []models.Request
	err := r.DB.WithContext(ctx).Where("status IN ?", statuses).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *RequestRepo) ClearBatch(ctx context.Context, batchID string) error {
	return r.DB.WithContext(ctx).Model(&models.Request{}).
		Where("shipment_batch_id = ?", batchID).
		Update("shipment_batch_id", nil).Error
}

func (r *RequestRepo) AssignBatch(ctx context.Context, batchID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&models.Request{}).
		Where("id IN ?", ids).
		Update("shipment_batch_id", batchID).Error
}

func (r *RequestRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Request{}).Count(&n).Error
	return n, err
}

func (r *RequestRepo) Latest(ctx context.Context, n int) ([]models.Request, error) {
	var out []models.Request
	err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(n).Find(&out).Error
	return out, err
}
