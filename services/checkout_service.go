package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/utils"
	"github.com/shopspring/decimal"
)

type CheckoutInput struct {
	Profile    *models.Profile
	Cart       models.Cart
	Method     models.PaymentMethod
	CouponCode string
}

type CheckoutResult struct {
	Order       *models.Order   `json:"order"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	RedirectURL string          `json:"redirect_url,omitempty"`
}

type CheckoutService struct {
	repos    *repository.Repositories
	coupons  *CouponService
	gateways map[models.PaymentMethod]Gateway
	notifier *NotificationService
	events   EventPublisher
	currency string
}

func NewCheckoutService(repos *repository.Repositories, coupons *CouponService, notifier *NotificationService, events EventPublisher, currency string) *CheckoutService {
	return &CheckoutService{
		repos:    repos,
		coupons:  coupons,
		gateways: map[models.PaymentMethod]Gateway{},
		notifier: notifier,
		events:   publisherOrNop(events),
		currency: currency,
	}
}

// RegisterGateway enables a hosted payment method.
func (s *CheckoutService) RegisterGateway(method models.PaymentMethod, g Gateway) {
	s.gateways[method] = g
}

// Price re-reads every cart line from the catalog and returns the order
// items with unit prices snapshotted.
func (s *CheckoutService) Price(ctx context.Context, cart models.Cart) ([]models.OrderItem, decimal.Decimal, error) {
	if cart.IsEmpty() {
		return nil, decimal.Zero, ErrEmptyCart
	}
	ids := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.repos.Products.GetMany(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("load products: %w", err)
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	subtotal := decimal.Zero
	for _, line := range cart.Items {
		if line.Quantity <= 0 {
			continue
		}
		p, ok := products[line.ProductID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: product %s is no longer available", ErrValidation, line.ProductID)
		}
		item := models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  line.Quantity,
			Price:     p.Price,
		}
		if line.VariantID != "" {
			variant, ok := findVariant(p, line.VariantID)
			if !ok {
				return nil, decimal.Zero, fmt.Errorf("%w: variant %s not found for %s", ErrValidation, line.VariantID, p.Name)
			}
			vid := variant.ID
			item.VariantID = &vid
			item.Price = variant.UnitPrice(p)
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}
	if len(items) == 0 {
		return nil, decimal.Zero, ErrEmptyCart
	}
	return items, subtotal, nil
}

func findVariant(p models.Product, id string) (models.ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return models.ProductVariant{}, false
}

// Checkout writes the order and its items, then settles it from the wallet
// or hands it to a hosted gateway. Gateway orders stay pending until the
// gateway's webhook arrives.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if in.Profile == nil {
		return nil, fmt.Errorf("%w: profile is required", ErrValidation)
	}
	if !in.Method.Valid() {
		return nil, fmt.Errorf("%w: unsupported payment method %q", ErrValidation, in.Method)
	}
	gateway, hosted := s.gateways[in.Method]
	if in.Method != models.PaymentMethodWallet && !hosted {
		return nil, ErrGatewayUnavailable
	}

	items, subtotal, err := s.Price(ctx, in.Cart)
	if err != nil {
		return nil, err
	}

	discount := decimal.Zero
	var couponID *string
	if in.CouponCode != "" {
		quote, err := s.coupons.Evaluate(ctx, in.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = quote.Discount
		id := quote.Coupon.ID
		couponID = &id
	}
	total := subtotal.Sub(discount)

	order := &models.Order{
		UserID:         in.Profile.ID,
		Status:         models.OrderStatusPending,
		TotalPrice:     total,
		Currency:       s.currency,
		CouponID:       couponID,
		DiscountAmount: discount,
		PaymentMethod:  in.Method,
		Items:          items,
	}
	result := &CheckoutResult{Order: order, Subtotal: subtotal, Discount: discount}

	if in.Method == models.PaymentMethodWallet {
		if err := s.payFromWallet(ctx, order); err != nil {
			return nil, err
		}
		utils.LogInfo("Order %s paid from wallet by %s: %s %s", order.ID, order.UserID, order.Currency, order.TotalPrice.StringFixed(2))
		s.publish(ctx, TopicOrderPaid, order)
		return result, nil
	}

	if err := s.repos.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	url, err := gateway.Initiate(ctx, order, in.Profile.Email)
	if err != nil {
		utils.LogError("Gateway %s failed to initiate order %s: %v", in.Method, order.ID, err)
		return nil, fmt.Errorf("initiate %s payment: %w", in.Method, err)
	}
	result.RedirectURL = url
	utils.LogInfo("Order %s awaiting %s payment", order.ID, in.Method)
	return result, nil
}

// payFromWallet runs the wallet path in a single transaction so the debit,
// ledger row, status change, payment row and coupon usage commit together.
func (s *CheckoutService) payFromWallet(ctx context.Context, order *models.Order) error {
	var note *models.Notification
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		ok, err := tx.Profiles.DebitWallet(ctx, order.UserID, order.TotalPrice)
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}
		if !ok {
			return ErrInsufficientBalance
		}

		if err := tx.Wallet.Record(ctx, &models.WalletTransaction{
			UserID:      order.UserID,
			Amount:      order.TotalPrice.Neg(),
			Type:        models.WalletDebit,
			ReferenceID: order.ID,
			Description: "Order payment",
		}); err != nil {
			return fmt.Errorf("record wallet debit: %w", err)
		}

		if err := tx.Orders.Transition(ctx, order.ID, models.OrderPredecessors(models.OrderStatusPaid), models.OrderStatusPaid); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
		order.Status = models.OrderStatusPaid

		if err := tx.Payments.Create(ctx, &models.Payment{
			UserID:        order.UserID,
			OrderID:       order.ID,
			Amount:        order.TotalPrice,
			Currency:      order.Currency,
			PaymentMethod: models.PaymentMethodWallet,
			Status:        models.PaymentStatusCompleted,
		}); err != nil {
			return fmt.Errorf("record payment: %w", err)
		}

		if order.CouponID != nil {
			ok, err := tx.Coupons.IncrementUsage(ctx, *order.CouponID)
			if err != nil {
				return fmt.Errorf("increment coupon usage: %w", err)
			}
			if !ok {
				return ErrCouponUsageExceeded
			}
		}

		if s.notifier != nil {
			n, err := s.notifier.Record(ctx, tx, order.UserID, models.NotificationOrder,
				fmt.Sprintf("Order %s has been paid from your wallet.", ShortRef(order.ID)))
			if err != nil {
				return err
			}
			note = n
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, ErrCouponUsageExceeded) {
			utils.LogError("Wallet checkout failed for %s: %v", order.UserID, err)
		}
		return err
	}
	if s.notifier != nil {
		s.notifier.Deliver(ctx, note)
	}
	return nil
}

func (s *CheckoutService) publish(ctx context.Context, topic string, order *models.Order) {
	if err := s.events.Publish(ctx, topic, order.ID, OrderEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Total:   order.TotalPrice,
		Method:  order.PaymentMethod,
	}); err != nil {
		utils.LogError("Failed to publish %s for order %s: %v", topic, order.ID, err)
	}
}

// OrderEvent is the payload published for order lifecycle changes.
type OrderEvent struct {
	OrderID string               `json:"order_id"`
	UserID  string               `json:"user_id"`
	Status  models.OrderStatus   `json:"status"`
	Total   decimal.Decimal      `json:"total"`
	Method  models.PaymentMethod `json:"payment_method,omitempty"`
}
