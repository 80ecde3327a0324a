package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/utils"
)

type OrderService struct {
	repos    *repository.Repositories
	notifier *NotificationService
	events   EventPublisher
}

func NewOrderService(repos *repository.Repositories, notifier *NotificationService, events EventPublisher) *OrderService {
	return &OrderService{repos: repos, notifier: notifier, events: publisherOrNop(events)}
}

func (s *OrderService) ListMine(ctx context.Context, userID string) ([]models.Order, error) {
	return s.repos.Orders.ListByUser(ctx, userID)
}

func (s *OrderService) GetMine(ctx context.Context, userID, id string) (*models.Order, error) {
	return s.repos.Orders.GetForUser(ctx, userID, id)
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.repos.Orders.Get(ctx, id)
}

func (s *OrderService) List(ctx context.Context, status models.OrderStatus, page repository.Page) (int64, []models.Order, error) {
	if status != "" && !status.Valid() {
		return 0, nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.repos.Orders.List(ctx, status, page)
}

// CancelMine lets a customer abandon an order that was never paid.
func (s *OrderService) CancelMine(ctx context.Context, userID, id string) (*models.Order, error) {
	order, err := s.repos.Orders.GetForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: only pending orders can be cancelled", ErrInvalidTransition)
	}
	return s.SetStatus(ctx, id, models.OrderStatusCancelled)
}

// SetStatus moves an order through the order transition table. Cancelling
// a paid order refunds the total to the customer's wallet.
func (s *OrderService) SetStatus(ctx context.Context, id string, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}

	var order *models.Order
	var note *models.Notification
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		o, err := tx.Orders.Get(ctx, id)
		if err != nil {
			return err
		}
		if !o.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: order %s cannot move from %s to %s", ErrInvalidTransition, ShortRef(id), o.Status, next)
		}
		prev := o.Status
		if err := tx.Orders.Transition(ctx, id, []models.OrderStatus{prev}, next); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: order %s changed concurrently", ErrInvalidTransition, ShortRef(id))
			}
			return err
		}
		o.Status = next

		msg := fmt.Sprintf("Order %s is now %s.", ShortRef(o.ID), next)
		if prev == models.OrderStatusPaid && next == models.OrderStatusCancelled && o.TotalPrice.IsPositive() {
			if err := creditWallet(ctx, tx, o.UserID, o.TotalPrice, models.WalletRefund,
				"REFUND-ORDER-"+ShortRef(o.ID), fmt.Sprintf("Refund for cancelled order %s", ShortRef(o.ID))); err != nil {
				return err
			}
			msg = fmt.Sprintf("Order %s was cancelled and %s %s was refunded to your wallet.", ShortRef(o.ID), o.Currency, o.TotalPrice.StringFixed(2))
		}
		if s.notifier != nil {
			note, err = s.notifier.Record(ctx, tx, o.UserID, models.NotificationOrder, msg)
			if err != nil {
				return err
			}
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Order %s moved to %s", order.ID, order.Status)
	if s.notifier != nil {
		s.notifier.Deliver(ctx, note)
	}
	if err := s.events.Publish(ctx, TopicOrderStatusChanged, order.ID, OrderEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Total:   order.TotalPrice,
		Method:  order.PaymentMethod,
	}); err != nil {
		utils.LogError("Failed to publish %s for order %s: %v", TopicOrderStatusChanged, order.ID, err)
	}
	return order, nil
}

// ReapStale cancels orders left pending for longer than ttl.
func (s *OrderService) ReapStale(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}
	ids, err := s.repos.Orders.CancelStalePending(ctx, time.Now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("cancel stale orders: %w", err)
	}
	if len(ids) > 0 {
		utils.LogInfo("Cancelled %d orders pending longer than %s", len(ids), ttl)
	}
	return len(ids), nil
}

// RunReaper calls ReapStale every interval until ctx is done.
func (s *OrderService) RunReaper(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.ReapStale(ctx, ttl); err != nil {
				utils.LogError("Pending order reaper: %v", err)
			}
		}
	}
}
