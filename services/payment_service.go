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

// Settlement is a confirmed charge reported by a gateway webhook.
type Settlement struct {
	OrderID       string
	Amount        decimal.Decimal
	Currency      string
	Method        models.PaymentMethod
	TransactionID string
}

// SettleOutcome reports what SettleOrder did.
type SettleOutcome string

const (
	SettleApplied   SettleOutcome = "applied"
	SettleDuplicate SettleOutcome = "duplicate"
	// SettleRecorded means the payment was stored but the order was no
	// longer pending, so its status was left alone.
	SettleRecorded SettleOutcome = "recorded"
	// SettleRefunded means the order had been cancelled before the charge
	// landed; the amount paid was credited to the customer's wallet.
	SettleRefunded SettleOutcome = "refunded"
)

var errAlreadySettled = errors.New("transaction already settled")

type PaymentService struct {
	repos    *repository.Repositories
	notifier *NotificationService
	events   EventPublisher
}

func NewPaymentService(repos *repository.Repositories, notifier *NotificationService, events EventPublisher) *PaymentService {
	return &PaymentService{repos: repos, notifier: notifier, events: publisherOrNop(events)}
}

// SettleOrder marks the order paid, records the payment and counts the
// coupon redemption. A transaction id seen before is acknowledged without
// touching any row.
func (s *PaymentService) SettleOrder(ctx context.Context, st Settlement) (SettleOutcome, error) {
	if st.OrderID == "" {
		return "", fmt.Errorf("%w: order id is required", ErrValidation)
	}
	if st.Currency == "" {
		st.Currency = "GHS"
	}
	st.Currency = strings.ToUpper(st.Currency)

	outcome := SettleApplied
	var order *models.Order
	var note *models.Notification

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if st.TransactionID != "" {
			seen, err := tx.Payments.ExistsByTransaction(ctx, st.TransactionID)
			if err != nil {
				return fmt.Errorf("check transaction: %w", err)
			}
			if seen {
				return errAlreadySettled
			}
		}

		o, err := tx.Orders.Get(ctx, st.OrderID)
		if err != nil {
			return fmt.Errorf("load order %s: %w", st.OrderID, err)
		}
		order = o

		var txID *string
		if st.TransactionID != "" {
			id := st.TransactionID
			txID = &id
		}
		if err := tx.Payments.Create(ctx, &models.Payment{
			UserID:        o.UserID,
			OrderID:       o.ID,
			Amount:        st.Amount,
			Currency:      st.Currency,
			PaymentMethod: st.Method,
			Status:        models.PaymentStatusCompleted,
			TransactionID: txID,
		}); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return errAlreadySettled
			}
			return fmt.Errorf("record payment: %w", err)
		}

		if o.Status == models.OrderStatusCancelled {
			utils.LogError("Payment %s for cancelled order %s; crediting %s %s to wallet", st.TransactionID, o.ID, st.Currency, st.Amount.StringFixed(2))
			outcome = SettleRefunded
			if !st.Amount.IsPositive() {
				return nil
			}
			if err := creditWallet(ctx, tx, o.UserID, st.Amount, models.WalletRefund,
				"REFUND-ORDER-"+ShortRef(o.ID), fmt.Sprintf("Late payment for cancelled order %s", ShortRef(o.ID))); err != nil {
				return err
			}
			if s.notifier != nil {
				n, err := s.notifier.Record(ctx, tx, o.UserID, models.NotificationPaymentStatus,
					fmt.Sprintf("Order %s was cancelled before your payment arrived. %s %s was credited to your wallet.", ShortRef(o.ID), st.Currency, st.Amount.StringFixed(2)))
				if err != nil {
					return err
				}
				note = n
			}
			return nil
		}
		if o.Status != models.OrderStatusPending {
			utils.LogError("Payment %s for order %s arrived while order is %s; status left unchanged", st.TransactionID, o.ID, o.Status)
			outcome = SettleRecorded
			return nil
		}

		if err := tx.Orders.Transition(ctx, o.ID, models.OrderPredecessors(models.OrderStatusPaid), models.OrderStatusPaid); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
		o.Status = models.OrderStatusPaid

		if o.CouponID != nil {
			ok, err := tx.Coupons.IncrementUsage(ctx, *o.CouponID)
			if err != nil {
				return fmt.Errorf("increment coupon usage: %w", err)
			}
			if !ok {
				// The customer has already paid; keep the order and flag the overrun.
				utils.LogError("Coupon %s usage limit exceeded by paid order %s", *o.CouponID, o.ID)
			}
		}

		if s.notifier != nil {
			n, err := s.notifier.Record(ctx, tx, o.UserID, models.NotificationPaymentStatus,
				fmt.Sprintf("Payment received for order %s.", ShortRef(o.ID)))
			if err != nil {
				return err
			}
			note = n
		}
		return nil
	})
	if errors.Is(err, errAlreadySettled) {
		utils.LogInfo("Ignoring duplicate %s settlement %s for order %s", st.Method, st.TransactionID, st.OrderID)
		return SettleDuplicate, nil
	}
	if err != nil {
		return "", err
	}

	utils.LogInfo("Order %s settled via %s (%s %s, ref %s)", order.ID, st.Method, st.Currency, st.Amount.StringFixed(2), st.TransactionID)
	if s.notifier != nil {
		s.notifier.Deliver(ctx, note)
	}
	if outcome == SettleApplied {
		if err := s.events.Publish(ctx, TopicOrderPaid, order.ID, OrderEvent{
			OrderID: order.ID,
			UserID:  order.UserID,
			Status:  order.Status,
			Total:   order.TotalPrice,
			Method:  st.Method,
		}); err != nil {
			utils.LogError("Failed to publish %s for order %s: %v", TopicOrderPaid, order.ID, err)
		}
	}
	return outcome, nil
}
