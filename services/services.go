package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
)

var (
	ErrNotFound   = repository.ErrNotFound
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")

	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponUsageExceeded = errors.New("coupon usage limit reached")
	ErrCouponMinimumNotMet = errors.New("order does not meet the coupon minimum")

	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrGatewayUnavailable  = errors.New("payment gateway not configured")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)

// Gateway starts a hosted payment for an order and returns the URL the
// customer is redirected to.
type Gateway interface {
	Initiate(ctx context.Context, order *models.Order, email string) (string, error)
}

// Mailer delivers an email.
type Mailer interface {
	Send(to, subject, body string) error
}

// EventPublisher emits domain events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event interface{}) error
}

// ProductIndex is the full-text index kept in step with the catalog.
type ProductIndex interface {
	Index(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit, offset int) (int64, []string, error)
}

// Event topics.
const (
	TopicOrderPaid            = "order.paid"
	TopicOrderStatusChanged   = "order.status_changed"
	TopicRequestStatusChanged = "request.status_changed"
	TopicShipmentUpdated      = "shipment.updated"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, interface{}) error { return nil }

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

// ShortRef is the human reference for an id: its first 8 characters upper-cased.
func ShortRef(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

func errorsIsDuplicate(err error) bool {
	return errors.Is(err, repository.ErrDuplicate)
}
