package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	StripeSignatureHeader = "Stripe-Signature"
	stripeCurrency        = "usd"
)

// SessionCreator is the part of the Stripe client that opens checkout
// sessions.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeItem is a cart line as posted to the checkout endpoint.
type StripeItem struct {
	Product *struct {
		Name string `json:"name"`
	} `json:"product,omitempty"`
	Name     string          `json:"name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

func (i StripeItem) label() string {
	if i.Product != nil && i.Product.Name != "" {
		return i.Product.Name
	}
	if i.Name != "" {
		return i.Name
	}
	return "Product"
}

// StripeCheckout is the checkout endpoint body.
type StripeCheckout struct {
	OrderID        string           `json:"orderId"`
	Amount         *decimal.Decimal `json:"amount"`
	Items          []StripeItem     `json:"items"`
	DiscountAmount decimal.Decimal  `json:"discountAmount"`
}

type Stripe struct {
	sessions      SessionCreator
	webhookSecret string
	appURL        string
}

// NewStripe returns nil when no secret key is configured.
func NewStripe(secretKey, webhookSecret, appURL string) *Stripe {
	if secretKey == "" {
		return nil
	}
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Stripe{sessions: sc.CheckoutSessions, webhookSecret: webhookSecret, appURL: appURL}
}

// NewStripeWithSessions wires a custom session creator.
func NewStripeWithSessions(sessions SessionCreator, webhookSecret, appURL string) *Stripe {
	return &Stripe{sessions: sessions, webhookSecret: webhookSecret, appURL: appURL}
}

func (s *Stripe) Configured() bool {
	return s != nil && s.sessions != nil
}

// LineItems builds the session lines. A known amount is charged as one
// "Order Total" line. Otherwise each item becomes a line, unless a discount
// applies, in which case the discounted sum is charged as one line.
func LineItems(in StripeCheckout) []*stripe.CheckoutSessionLineItemParams {
	total := func(amount decimal.Decimal) []*stripe.CheckoutSessionLineItemParams {
		return []*stripe.CheckoutSessionLineItemParams{lineItem("Order Total", amount, 1)}
	}
	if in.Amount != nil {
		return total(*in.Amount)
	}
	if in.DiscountAmount.IsPositive() {
		sum := decimal.Zero
		for _, it := range in.Items {
			sum = sum.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
		}
		return total(decimal.Max(sum.Sub(in.DiscountAmount), decimal.Zero))
	}
	lines := make([]*stripe.CheckoutSessionLineItemParams, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, lineItem(it.label(), it.Price, it.Quantity))
	}
	return lines
}

func lineItem(name string, unit decimal.Decimal, qty int64) *stripe.CheckoutSessionLineItemParams {
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(stripeCurrency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(name),
			},
			UnitAmount: stripe.Int64(ToMinorUnits(unit)),
		},
		Quantity: stripe.Int64(qty),
	}
}

// CreateSession opens a hosted checkout session and returns its URL.
func (s *Stripe) CreateSession(ctx context.Context, in StripeCheckout) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          LineItems(in),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(fmt.Sprintf("%s/checkout/success?session_id={CHECKOUT_SESSION_ID}&order=%s", s.appURL, in.OrderID)),
		CancelURL:          stripe.String(s.appURL + "/checkout"),
	}
	params.Context = ctx
	params.AddMetadata("orderId", in.OrderID)

	sess, err := s.sessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe session: %w", err)
	}
	return sess.URL, nil
}

// Initiate charges the order total as a single line.
func (s *Stripe) Initiate(ctx context.Context, order *models.Order, email string) (string, error) {
	amount := order.TotalPrice
	return s.CreateSession(ctx, StripeCheckout{OrderID: order.ID, Amount: &amount})
}

// StripeCompletion is a verified checkout.session.completed event.
type StripeCompletion struct {
	SessionID string
	OrderID   string
	Amount    decimal.Decimal
	Currency  string
}

// ParseWebhook verifies the signature and returns the completed session,
// or nil for any other event type.
func (s *Stripe) ParseWebhook(payload []byte, signature string) (*StripeCompletion, error) {
	if s == nil || s.webhookSecret == "" {
		return nil, ErrNotConfigured
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, err
	}
	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return nil, nil
	}
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	currency := string(sess.Currency)
	if currency == "" {
		currency = stripeCurrency
	}
	return &StripeCompletion{
		SessionID: sess.ID,
		OrderID:   sess.Metadata["orderId"],
		Amount:    FromMinorUnits(sess.AmountTotal),
		Currency:  strings.ToUpper(currency),
	}, nil
}
