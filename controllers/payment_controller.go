package controllers

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/Govind-619/Plug233/gateways"
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

// The payment endpoints answer in the bare shapes the gateways' client
// scripts expect rather than the standard envelope.

type PaystackInitRequest struct {
	Email   string  `json:"email"`
	Amount  float64 `json:"amount"`
	OrderID string  `json:"orderId"`
}

// PaystackInit handles POST /api/payments/paystack/init. Amount is in
// pesewas.
func (h *Controller) PaystackInit(c *gin.Context) {
	utils.LogInfo("PaystackInit called")

	if !h.Paystack.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Paystack not configured"})
		return
	}

	var req PaystackInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment initialization failed"})
		return
	}

	auth, err := h.Paystack.Initialize(c.Request.Context(), gateways.PaystackInit{
		Email:   req.Email,
		Amount:  int64(math.Round(req.Amount)),
		OrderID: req.OrderID,
	})
	if err != nil {
		var perr *gateways.PaystackError
		if errors.As(err, &perr) {
			utils.LogError("Paystack rejected order %s: %s", req.OrderID, perr.Message)
			c.JSON(http.StatusBadRequest, gin.H{"error": perr.Message})
			return
		}
		utils.LogError("Paystack init failed for order %s: %v", req.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment initialization failed"})
		return
	}
	c.JSON(http.StatusOK, auth)
}

// PaystackWebhook handles POST /api/payments/paystack/webhook
func (h *Controller) PaystackWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed"})
		return
	}
	sig := c.GetHeader(gateways.PaystackSignatureHeader)
	if !h.Paystack.Configured() || sig == "" {
		utils.LogError("Paystack webhook rejected: missing secret or signature")
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed"})
		return
	}
	if !h.Paystack.VerifySignature(body, sig) {
		utils.LogError("Paystack webhook rejected: signature mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"status": "invalid"})
		return
	}

	event, err := gateways.ParsePaystackEvent(body)
	if err != nil {
		utils.LogError("Paystack webhook body unreadable: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed"})
		return
	}

	if event.Event == gateways.PaystackChargeSuccess && event.Data.Metadata.OrderID != "" {
		currency := strings.ToUpper(event.Data.Currency)
		if currency == "" {
			currency = "GHS"
		}
		st := services.Settlement{
			OrderID:       event.Data.Metadata.OrderID,
			Amount:        gateways.FromMinorUnits(event.Data.Amount),
			Currency:      currency,
			Method:        models.PaymentMethodPaystack,
			TransactionID: event.Data.Reference,
		}
		if !h.settle(c, st) {
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StripeCheckout handles POST /api/payments/stripe/checkout
func (h *Controller) StripeCheckout(c *gin.Context) {
	utils.LogInfo("StripeCheckout called")

	if !h.Stripe.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe not configured"})
		return
	}

	var req gateways.StripeCheckout
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}

	url, err := h.Stripe.CreateSession(c.Request.Context(), req)
	if err != nil {
		utils.LogError("Stripe session failed for order %s: %v", req.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// StripeWebhook handles POST /api/payments/stripe/webhook
func (h *Controller) StripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}
	sig := c.GetHeader("Stripe-Signature")
	if h.Stripe == nil || sig == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing config"})
		return
	}

	completion, err := h.Stripe.ParseWebhook(body, sig)
	if errors.Is(err, gateways.ErrNotConfigured) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing config"})
		return
	}
	if err != nil {
		utils.LogError("Stripe webhook rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	if completion != nil && completion.OrderID != "" {
		st := services.Settlement{
			OrderID:       completion.OrderID,
			Amount:        completion.Amount,
			Currency:      strings.ToUpper(completion.Currency),
			Method:        models.PaymentMethodStripe,
			TransactionID: completion.SessionID,
		}
		if !h.settle(c, st) {
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// settle applies a verified payment. An unknown order is acknowledged so the
// gateway stops retrying; storage failures answer 500 so it retries.
func (h *Controller) settle(c *gin.Context, st services.Settlement) bool {
	outcome, err := h.Payments.SettleOrder(c.Request.Context(), st)
	if errors.Is(err, services.ErrNotFound) {
		utils.LogError("%s payment %s references unknown order %s", st.Method, st.TransactionID, st.OrderID)
		return true
	}
	if err != nil {
		utils.LogError("Failed to settle %s payment %s: %v", st.Method, st.TransactionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed"})
		return false
	}
	utils.LogDebug("%s payment %s for order %s: %s", st.Method, st.TransactionID, st.OrderID, outcome)
	return true
}
