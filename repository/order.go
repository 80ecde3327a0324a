package repository

import (
	"context"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepo struct {
	DB *gorm.DB
}

// Create inserts the order and its items in one statement batch.
func (r *OrderRepo) Create(ctx context.Context, o *models.Order) error {
	return translate(r.DB.WithContext(ctx).Create(o).Error)
}

func (r *OrderRepo) Get(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&o).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

// GetForUser only returns the order when it belongs to userID.
func (r *OrderRepo) GetForUser(ctx context.Context, userID, id string) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).First(&o).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	err := r.DB.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepo) List(ctx context.Context, status models.OrderStatus, page Page) (int64, []models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var out []models.Order
	if err := page.apply(q.Order("created_at DESC")).Find(&out).Error; err != nil {
		return 0, nil, err
	}
	return total, out, nil
}

// Transition moves the order to next only when its current status is one of
// from. It returns ErrNotFound when no row matched.
func (r *OrderRepo) Transition(ctx context.Context, id string, from []models.OrderStatus, next models.OrderStatus) error {
	if len(from) == 0 {
		return ErrNotFound
	}
	return affected(r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", next))
}

// TransitionBatch moves every order in the batch whose status is in from.
func (r *OrderRepo) TransitionBatch(ctx context.Context, batchID string, from []models.OrderStatus, next models.OrderStatus) (int64, error) {
	if len(from) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("shipment_batch_id = ? AND status IN ?", batchID, from).
		Update("status", next)
	return res.RowsAffected, res.Error
}

// CancelStalePending cancels pending orders created before cutoff and
// returns their ids.
func (r *OrderRepo) CancelStalePending(ctx context.Context, cutoff time.Time) ([]string, error) {
	var ids []string
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("status = ? AND created_at < ?", models.OrderStatusPending, cutoff).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id IN ? AND status = ?", ids, models.OrderStatusPending).
		Update("status", models.OrderStatusCancelled).Error
	return ids, err
}

func (r *OrderRepo) ListByStatuses(ctx context.Context, statuses []models.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	err := r.DB.WithContext(ctx).Where("status IN ?", statuses).Order("created_at DESC").Find(&out).Error
	return out, err
}

// ClearBatch detaches every order from the batch.
func (r *OrderRepo) ClearBatch(ctx context.Context, batchID string) error {
	return r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("shipment_batch_id = ?", batchID).
		Update("shipment_batch_id", nil).Error
}

func (r *OrderRepo) AssignBatch(ctx context.Context, batchID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id IN ?", ids).
		Update("shipment_batch_id", batchID).Error
}

func (r *OrderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, err
}

// Revenue sums total_price over orders in the given status.
func (r *OrderRepo) Revenue(ctx context.Context, status models.OrderStatus) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total_price), 0)").
		Row().Scan(&sum)
	return sum.Round(2), err
}

func (r *OrderRepo) Latest(ctx context.Context, n int) ([]models.Order, error) {
	var out []models.Order
	err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(n).Find(&out).Error
	return out, err
}
