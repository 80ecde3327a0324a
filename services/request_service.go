package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/utils"
	"github.com/shopspring/decimal"
)

// RequestInput is the customer's request-to-buy form.
type RequestInput struct {
	ProductName string           `json:"product_name"`
	LinkOrImage string           `json:"link_or_image"`
	Description string           `json:"description"`
	Budget      *decimal.Decimal `json:"budget"`
}

func (in *RequestInput) Validate() error {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.LinkOrImage = strings.TrimSpace(in.LinkOrImage)
	in.Description = strings.TrimSpace(in.Description)

	if err := utils.ValidateStringLength(in.ProductName, 2, 200); err != nil {
		return fmt.Errorf("%w: product name %v", ErrValidation, err)
	}
	if ok, msg := utils.ValidateXSS(in.Description); !ok {
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	if in.LinkOrImage != "" && !utils.IsHTTPURL(in.LinkOrImage) {
		return fmt.Errorf("%w: link_or_image must be a valid URL", ErrValidation)
	}
	if in.Budget != nil && in.Budget.IsNegative() {
		return fmt.Errorf("%w: budget cannot be negative", ErrValidation)
	}
	return nil
}

// RequestEvent is published whenever a request changes status.
type RequestEvent struct {
	RequestID string               `json:"request_id"`
	UserID    string               `json:"user_id"`
	Status    models.RequestStatus `json:"status"`
	OrderID   string               `json:"order_id,omitempty"`
}

type RequestService struct {
	repos    *repository.Repositories
	notifier *NotificationService
	events   EventPublisher
	currency string
}

func NewRequestService(repos *repository.Repositories, notifier *NotificationService, events EventPublisher, currency string) *RequestService {
	return &RequestService{repos: repos, notifier: notifier, events: publisherOrNop(events), currency: currency}
}

func (s *RequestService) Submit(ctx context.Context, userID string, in RequestInput) (*models.Request, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	link := in.LinkOrImage
	if link == "" {
		link = models.PlaceholderLink
	}
	req := &models.Request{
		UserID:      userID,
		ProductName: in.ProductName,
		LinkOrImage: link,
		Description: in.Description,
		Budget:      in.Budget,
		Status:      models.RequestStatusPending,
	}
	if err := s.repos.Requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	utils.LogInfo("Request %s submitted by %s for %q", req.ID, userID, req.ProductName)
	return req, nil
}

func (s *RequestService) ListMine(ctx context.Context, userID string) ([]models.Request, error) {
	return s.repos.Requests.ListByUser(ctx, userID)
}

func (s *RequestService) List(ctx context.Context, status models.RequestStatus, page repository.Page) (int64, []models.Request, error) {
	if status != "" && !status.Valid() {
		return 0, nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.repos.Requests.List(ctx, status, page)
}

func (s *RequestService) Get(ctx context.Context, id string) (*models.Request, error) {
	return s.repos.Requests.Get(ctx, id)
}

// transition checks the table against the stored status, then applies the
// update conditionally so a concurrent change cannot be overwritten.
func (s *RequestService) transition(ctx context.Context, tx *repository.Repositories, id string, next models.RequestStatus, fields map[string]interface{}) (*models.Request, error) {
	req, err := tx.Requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: request %s cannot move from %s to %s", ErrInvalidTransition, ShortRef(id), req.Status, next)
	}
	fields["status"] = next
	if err := tx.Requests.Transition(ctx, id, []models.RequestStatus{req.Status}, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: request %s changed concurrently", ErrInvalidTransition, ShortRef(id))
		}
		return nil, err
	}
	return tx.Requests.Get(ctx, id)
}

// Quote sets or revises the quote price and moves the request to quoted.
func (s *RequestService) Quote(ctx context.Context, id string, price decimal.Decimal) (*models.Request, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: quote price must be greater than 0", ErrValidation)
	}
	price = price.Round(2)

	var req *models.Request
	var note *models.Notification
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		r, err := s.transition(ctx, tx, id, models.RequestStatusQuoted, map[string]interface{}{"quote_price": price})
		if err != nil {
			return err
		}
		req = r
		note, err = s.record(ctx, tx, r.UserID, models.NotificationQuote,
			fmt.Sprintf("Your request for %s has been quoted at %s %s.", r.ProductName, s.currency, price.StringFixed(2)))
		return err
	})
	if err != nil {
		return nil, err
	}
	s.after(ctx, req, "", note)
	return req, nil
}

// Accept records the customer's acceptance of a quote.
func (s *RequestService) Accept(ctx context.Context, userID, id string) (*models.Request, error) {
	var req *models.Request
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		current, err := tx.Requests.Get(ctx, id)
		if err != nil {
			return err
		}
		if current.UserID != userID {
			return ErrNotFound
		}
		req, err = s.transition(ctx, tx, id, models.RequestStatusAccepted, map[string]interface{}{})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.after(ctx, req, "", nil)
	return req, nil
}

// ConvertToOrder turns a quoted request into a pending order priced at the
// quote. The order carries no line items.
func (s *RequestService) ConvertToOrder(ctx context.Context, id string) (*models.Order, error) {
	var order *models.Order
	var req *models.Request
	var note *models.Notification
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		current, err := tx.Requests.Get(ctx, id)
		if err != nil {
			return err
		}
		if current.Status != models.RequestStatusQuoted && current.Status != models.RequestStatusAccepted {
			return fmt.Errorf("%w: only quoted requests can be converted (request is %s)", ErrInvalidTransition, current.Status)
		}
		if current.QuotePrice == nil {
			return fmt.Errorf("%w: request %s has no quote price", ErrValidation, ShortRef(id))
		}

		order = &models.Order{
			UserID:     current.UserID,
			Status:     models.OrderStatusPending,
			TotalPrice: *current.QuotePrice,
			Currency:   s.currency,
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		req, err = s.transition(ctx, tx, id, models.RequestStatusOrdered, map[string]interface{}{"order_id": order.ID})
		if err != nil {
			return err
		}
		note, err = s.record(ctx, tx, req.UserID, models.NotificationOrder,
			fmt.Sprintf("Your request for %s is now order %s (%s %s).", req.ProductName, ShortRef(order.ID), s.currency, order.TotalPrice.StringFixed(2)))
		return err
	})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Request %s converted to order %s", id, order.ID)
	s.after(ctx, req, order.ID, note)
	return order, nil
}

// SetStatus is the admin status picker. Backward moves are rejected.
func (s *RequestService) SetStatus(ctx context.Context, id string, status models.RequestStatus) (*models.Request, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if status == models.RequestStatusQuoted {
		return nil, fmt.Errorf("%w: use the quote action to quote a request", ErrValidation)
	}

	var req *models.Request
	var note *models.Notification
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		r, err := s.transition(ctx, tx, id, status, map[string]interface{}{})
		if err != nil {
			return err
		}
		req = r
		note, err = s.record(ctx, tx, r.UserID, models.NotificationStatus,
			fmt.Sprintf("Your request for %s is now %s.", r.ProductName, strings.ReplaceAll(string(status), "_", " ")))
		return err
	})
	if err != nil {
		return nil, err
	}
	s.after(ctx, req, "", note)
	return req, nil
}

func (s *RequestService) record(ctx context.Context, tx *repository.Repositories, userID string, kind models.NotificationType, msg string) (*models.Notification, error) {
	if s.notifier == nil {
		return nil, nil
	}
	return s.notifier.Record(ctx, tx, userID, kind, msg)
}

func (s *RequestService) after(ctx context.Context, req *models.Request, orderID string, note *models.Notification) {
	if s.notifier != nil && note != nil {
		s.notifier.Deliver(ctx, note)
	}
	if err := s.events.Publish(ctx, TopicRequestStatusChanged, req.ID, RequestEvent{
		RequestID: req.ID,
		UserID:    req.UserID,
		Status:    req.Status,
		OrderID:   orderID,
	}); err != nil {
		utils.LogError("Failed to publish %s for request %s: %v", TopicRequestStatusChanged, req.ID, err)
	}
}
