package gateways

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/shopspring/decimal"
)

const (
	PaystackBaseURL         = "https://api.paystack.co"
	PaystackSignatureHeader = "x-paystack-signature"
	PaystackChargeSuccess   = "charge.success"
)

var ErrNotConfigured = errors.New("gateway not configured")

// PaystackError is a rejection reported by the Paystack API.
type PaystackError struct {
	Message string
}

func (e *PaystackError) Error() string {
	return e.Message
}

// PaystackInit is a transaction initialization request. Amount is in minor
// units (pesewas).
type PaystackInit struct {
	Email   string
	Amount  int64
	OrderID string
}

type PaystackAuthorization struct {
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
}

// Paystack talks to the Paystack REST API.
type Paystack struct {
	secret   string
	baseURL  string
	appURL   string
	currency string
	client   *http.Client
}

func NewPaystack(secret, appURL, currency string) *Paystack {
	if currency == "" {
		currency = "GHS"
	}
	return &Paystack{
		secret:   secret,
		baseURL:  PaystackBaseURL,
		appURL:   appURL,
		currency: currency,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// WithBaseURL points the client at another API host.
func (p *Paystack) WithBaseURL(url string) *Paystack {
	p.baseURL = url
	return p
}

func (p *Paystack) Configured() bool {
	return p != nil && p.secret != ""
}

// CallbackURL is where Paystack sends the customer after paying.
func (p *Paystack) CallbackURL(orderID string) string {
	return fmt.Sprintf("%s/checkout/callback?order=%s", p.appURL, orderID)
}

// Initialize calls /transaction/initialize.
func (p *Paystack) Initialize(ctx context.Context, in PaystackInit) (*PaystackAuthorization, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(map[string]interface{}{
		"email":        in.Email,
		"amount":       in.Amount,
		"currency":     p.currency,
		"metadata":     map[string]string{"orderId": in.OrderID},
		"callback_url": p.CallbackURL(in.OrderID),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			AuthorizationURL string `json:"authorization_url"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode paystack response: %w", err)
	}
	if !body.Status {
		msg := body.Message
		if msg == "" {
			msg = "Paystack error"
		}
		return nil, &PaystackError{Message: msg}
	}
	return &PaystackAuthorization{
		AuthorizationURL: body.Data.AuthorizationURL,
		Reference:        body.Data.Reference,
	}, nil
}

// Initiate starts a Paystack payment for the order total.
func (p *Paystack) Initiate(ctx context.Context, order *models.Order, email string) (string, error) {
	auth, err := p.Initialize(ctx, PaystackInit{
		Email:   email,
		Amount:  ToMinorUnits(order.TotalPrice),
		OrderID: order.ID,
	})
	if err != nil {
		return "", err
	}
	return auth.AuthorizationURL, nil
}

// VerifyPaystackSignature checks the hex HMAC-SHA512 of body against the
// signature header.
func VerifyPaystackSignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifySignature checks a webhook body against the configured secret.
func (p *Paystack) VerifySignature(body []byte, signature string) bool {
	if p == nil {
		return false
	}
	return VerifyPaystackSignature(p.secret, body, signature)
}

// PaystackEvent is the subset of a webhook payload we act on.
type PaystackEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Metadata  struct {
			OrderID string `json:"orderId"`
		} `json:"metadata"`
	} `json:"data"`
}

// ParsePaystackEvent decodes a webhook body. Metadata that is not an object
// is treated as absent.
func ParsePaystackEvent(body []byte) (*PaystackEvent, error) {
	var ev PaystackEvent
	if err := json.Unmarshal(body, &ev); err == nil {
		return &ev, nil
	}
	var loose struct {
		Event string `json:"event"`
		Data  struct {
			Reference string `json:"reference"`
			Amount    int64  `json:"amount"`
			Currency  string `json:"currency"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &loose); err != nil {
		return nil, err
	}
	ev.Event = loose.Event
	ev.Data.Reference = loose.Data.Reference
	ev.Data.Amount = loose.Data.Amount
	ev.Data.Currency = loose.Data.Currency
	return &ev, nil
}

// ToMinorUnits converts a major-unit amount to rounded minor units.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FromMinorUnits converts minor units back to a major-unit amount.
func FromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
