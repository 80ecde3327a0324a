package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/utils"
)

// Orders and requests in these states can be placed in a shipment batch.
var (
	ShippableOrderStatuses = []models.OrderStatus{
		models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusDelivered,
	}
	ShippableRequestStatuses = []models.RequestStatus{
		models.RequestStatusPaid, models.RequestStatusOrdered, models.RequestStatusInWarehouse,
		models.RequestStatusShipped, models.RequestStatusDelivered,
	}
)

type BatchInput struct {
	BatchName         string                `json:"batch_name"`
	ShipmentDate      *time.Time            `json:"shipment_date"`
	Status            models.ShipmentStatus `json:"status"`
	TrackingNumber    string                `json:"tracking_number"`
	EstimatedDelivery *time.Time            `json:"estimated_delivery"`
}

func (in *BatchInput) Validate() error {
	in.BatchName = strings.TrimSpace(in.BatchName)
	in.TrackingNumber = strings.TrimSpace(in.TrackingNumber)
	if in.BatchName == "" {
		return fmt.Errorf("%w: batch_name is required", ErrValidation)
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown shipment status %q", ErrValidation, in.Status)
	}
	return nil
}

// ShipmentEvent is published when a batch changes.
type ShipmentEvent struct {
	BatchID        string                `json:"batch_id"`
	Status         models.ShipmentStatus `json:"status"`
	TrackingNumber string                `json:"tracking_number,omitempty"`
	Orders         int64                 `json:"orders_updated"`
	Requests       int64                 `json:"requests_updated"`
}

// Eligible lists what may be assigned to a batch.
type Eligible struct {
	Orders   []models.Order   `json:"orders"`
	Requests []models.Request `json:"requests"`
}

type ShipmentService struct {
	repos  *repository.Repositories
	events EventPublisher
}

func NewShipmentService(repos *repository.Repositories, events EventPublisher) *ShipmentService {
	return &ShipmentService{repos: repos, events: publisherOrNop(events)}
}

func (s *ShipmentService) List(ctx context.Context) ([]models.ShipmentBatch, error) {
	return s.repos.Shipments.List(ctx)
}

func (s *ShipmentService) Get(ctx context.Context, id string) (*models.ShipmentBatch, error) {
	return s.repos.Shipments.GetWithMembers(ctx, id)
}

func (s *ShipmentService) Create(ctx context.Context, in BatchInput) (*models.ShipmentBatch, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	b := &models.ShipmentBatch{
		BatchName:         in.BatchName,
		ShipmentDate:      in.ShipmentDate,
		Status:            models.ShipmentStatusPending,
		TrackingNumber:    in.TrackingNumber,
		EstimatedDelivery: in.EstimatedDelivery,
	}
	if b.ShipmentDate == nil {
		today := time.Now().Truncate(24 * time.Hour)
		b.ShipmentDate = &today
	}
	if err := s.repos.Shipments.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}
	utils.LogInfo("Shipment batch %s (%s) created", b.ID, b.BatchName)
	return b, nil
}

// Update saves the batch fields. A status change is cascaded to member
// orders and requests whose own transition table allows it.
func (s *ShipmentService) Update(ctx context.Context, id string, in BatchInput) (*models.ShipmentBatch, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var batch *models.ShipmentBatch
	var ev ShipmentEvent
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		b, err := tx.Shipments.Get(ctx, id)
		if err != nil {
			return err
		}
		if in.Status == "" {
			in.Status = b.Status
		}
		statusChanged := b.Status != in.Status
		b.BatchName = in.BatchName
		b.Status = in.Status
		b.TrackingNumber = in.TrackingNumber
		// Omitted dates keep their stored values
		if in.ShipmentDate != nil {
			b.ShipmentDate = in.ShipmentDate
		}
		if in.EstimatedDelivery != nil {
			b.EstimatedDelivery = in.EstimatedDelivery
		}
		if err := tx.Shipments.Save(ctx, b); err != nil {
			return fmt.Errorf("save batch: %w", err)
		}
		batch = b
		ev = ShipmentEvent{BatchID: b.ID, Status: b.Status, TrackingNumber: b.TrackingNumber}
		if statusChanged {
			ev.Orders, ev.Requests, err = cascadeBatchStatus(ctx, tx, b.ID, b.Status)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Shipment batch %s updated to %s (%d orders, %d requests moved)", batch.ID, batch.Status, ev.Orders, ev.Requests)
	s.publish(ctx, ev)
	return batch, nil
}

func cascadeBatchStatus(ctx context.Context, tx *repository.Repositories, batchID string, status models.ShipmentStatus) (int64, int64, error) {
	var orderNext models.OrderStatus
	var requestNext models.RequestStatus
	switch status {
	case models.ShipmentStatusShipped:
		orderNext, requestNext = models.OrderStatusShipped, models.RequestStatusShipped
	case models.ShipmentStatusDelivered:
		orderNext, requestNext = models.OrderStatusDelivered, models.RequestStatusDelivered
	default:
		return 0, 0, nil
	}
	orders, err := tx.Orders.TransitionBatch(ctx, batchID, models.OrderPredecessors(orderNext), orderNext)
	if err != nil {
		return 0, 0, fmt.Errorf("cascade to orders: %w", err)
	}
	requests, err := tx.Requests.TransitionBatch(ctx, batchID, models.RequestPredecessors(requestNext), requestNext)
	if err != nil {
		return 0, 0, fmt.Errorf("cascade to requests: %w", err)
	}
	return orders, requests, nil
}

// Delete detaches all members and removes the batch.
func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	return s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Orders.ClearBatch(ctx, id); err != nil {
			return err
		}
		if err := tx.Requests.ClearBatch(ctx, id); err != nil {
			return err
		}
		return tx.Shipments.Delete(ctx, id)
	})
}

func (s *ShipmentService) Eligible(ctx context.Context) (*Eligible, error) {
	orders, err := s.repos.Orders.ListByStatuses(ctx, ShippableOrderStatuses)
	if err != nil {
		return nil, err
	}
	requests, err := s.repos.Requests.ListByStatuses(ctx, ShippableRequestStatuses)
	if err != nil {
		return nil, err
	}
	return &Eligible{Orders: orders, Requests: requests}, nil
}

// AssignMembers replaces the batch membership with exactly orderIDs and
// requestIDs. Clearing and setting happen in one transaction.
func (s *ShipmentService) AssignMembers(ctx context.Context, batchID string, orderIDs, requestIDs []string) (*models.ShipmentBatch, error) {
	orderIDs = dedupe(orderIDs)
	requestIDs = dedupe(requestIDs)

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Shipments.Get(ctx, batchID); err != nil {
			return err
		}
		if err := checkShippable(ctx, tx, orderIDs, requestIDs); err != nil {
			return err
		}
		if err := tx.Orders.ClearBatch(ctx, batchID); err != nil {
			return fmt.Errorf("clear orders: %w", err)
		}
		if err := tx.Requests.ClearBatch(ctx, batchID); err != nil {
			return fmt.Errorf("clear requests: %w", err)
		}
		if err := tx.Orders.AssignBatch(ctx, batchID, orderIDs); err != nil {
			return fmt.Errorf("assign orders: %w", err)
		}
		if err := tx.Requests.AssignBatch(ctx, batchID, requestIDs); err != nil {
			return fmt.Errorf("assign requests: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Shipment batch %s now holds %d orders and %d requests", batchID, len(orderIDs), len(requestIDs))
	return s.repos.Shipments.GetWithMembers(ctx, batchID)
}

func checkShippable(ctx context.Context, tx *repository.Repositories, orderIDs, requestIDs []string) error {
	for _, id := range orderIDs {
		o, err := tx.Orders.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("order %s: %w", ShortRef(id), err)
		}
		if !containsOrderStatus(ShippableOrderStatuses, o.Status) {
			return fmt.Errorf("%w: order %s is %s and cannot be shipped", ErrValidation, ShortRef(id), o.Status)
		}
	}
	for _, id := range requestIDs {
		r, err := tx.Requests.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("request %s: %w", ShortRef(id), err)
		}
		if !containsRequestStatus(ShippableRequestStatuses, r.Status) {
			return fmt.Errorf("%w: request %s is %s and cannot be shipped", ErrValidation, ShortRef(id), r.Status)
		}
	}
	return nil
}

// Labels builds one shipping label per batch member, orders first.
func (s *ShipmentService) Labels(ctx context.Context, batchID string) (*models.ShipmentBatch, []models.ShippingLabel, error) {
	batch, err := s.repos.Shipments.GetWithMembers(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}

	userIDs := make([]string, 0, len(batch.Orders)+len(batch.Requests))
	for _, o := range batch.Orders {
		userIDs = append(userIDs, o.UserID)
	}
	for _, r := range batch.Requests {
		userIDs = append(userIDs, r.UserID)
	}
	userIDs = dedupe(userIDs)

	profiles, err := s.repos.Profiles.GetMany(ctx, userIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load profiles: %w", err)
	}
	addresses, err := s.repos.Addresses.DefaultsFor(ctx, userIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load addresses: %w", err)
	}

	labels := make([]models.ShippingLabel, 0, len(batch.Orders)+len(batch.Requests))
	for _, o := range batch.Orders {
		labels = append(labels, models.ShippingLabel{
			Kind:           "order",
			EntityID:       o.ID,
			Ref:            ShortRef(o.ID),
			Description:    fmt.Sprintf("Order · %s", o.Status),
			Recipient:      ResolveRecipient(profiles[o.UserID], addressPtr(addresses, o.UserID)),
			BatchName:      batch.BatchName,
			TrackingNumber: batch.TrackingNumber,
		})
	}
	for _, r := range batch.Requests {
		labels = append(labels, models.ShippingLabel{
			Kind:           "request",
			EntityID:       r.ID,
			Ref:            ShortRef(r.ID),
			Description:    r.ProductName,
			Recipient:      ResolveRecipient(profiles[r.UserID], addressPtr(addresses, r.UserID)),
			BatchName:      batch.BatchName,
			TrackingNumber: batch.TrackingNumber,
		})
	}
	return batch, labels, nil
}

func addressPtr(m map[string]models.Address, userID string) *models.Address {
	if a, ok := m[userID]; ok {
		return &a
	}
	return nil
}

// ResolveRecipient prefers the default address, then profile fields, then
// fixed placeholders.
func ResolveRecipient(p models.Profile, addr *models.Address) models.LabelRecipient {
	rec := models.LabelRecipient{
		Name:    firstNonEmpty(p.Name, p.Email, models.DefaultRecipientName),
		Country: models.DefaultRecipientCountry,
		Phone:   p.Phone,
	}
	if addr != nil {
		rec.Address = firstNonEmpty(addr.Address, p.Address, models.DefaultRecipientAddress)
		rec.City = addr.City
		rec.Country = firstNonEmpty(addr.Country, models.DefaultRecipientCountry)
		rec.Phone = firstNonEmpty(addr.Phone, p.Phone)
	} else {
		rec.Address = firstNonEmpty(p.Address, models.DefaultRecipientAddress)
	}
	return rec
}

func (s *ShipmentService) publish(ctx context.Context, ev ShipmentEvent) {
	if err := s.events.Publish(ctx, TopicShipmentUpdated, ev.BatchID, ev); err != nil {
		utils.LogError("Failed to publish %s for batch %s: %v", TopicShipmentUpdated, ev.BatchID, err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func containsOrderStatus(list []models.OrderStatus, s models.OrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsRequestStatus(list []models.RequestStatus, s models.RequestStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
