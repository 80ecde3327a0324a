package controllers

import (
	"errors"
	"net/http"

	"github.com/Govind-619/Plug233/gateways"
	"github.com/Govind-619/Plug233/middleware"
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

// Controller holds the services every handler works through.
type Controller struct {
	Catalog       *services.CatalogService
	Coupons       *services.CouponService
	Checkout      *services.CheckoutService
	Payments      *services.PaymentService
	Requests      *services.RequestService
	Orders        *services.OrderService
	Shipments     *services.ShipmentService
	Accounts      *services.AccountService
	Notifications *services.NotificationService
	Content       *services.ContentService
	Dashboard     *services.DashboardService
	SEO           *services.SEOService

	Paystack *gateways.Paystack
	Stripe   *gateways.Stripe
}

// currentUser reads the profile set by the auth middleware and answers 401
// when it is missing.
func currentUser(c *gin.Context) (models.Profile, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
	}
	return user, ok
}

func pageOf(p *utils.Pagination) repository.Page {
	return repository.Page{Limit: p.Limit, Offset: p.Offset}
}

// respondError maps a service error to the response envelope. Errors with no
// mapping are logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	utils.RespondAppError(c, toAppError(err, fallback))
}

func toAppError(err error, fallback string) *utils.AppError {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundError(utils.ErrRecordNotFound, nil)
	case errors.Is(err, services.ErrCouponNotFound):
		return utils.NotFoundError("Invalid coupon code", nil)
	case errors.Is(err, services.ErrCouponExpired):
		return utils.BadRequestError("Coupon has expired", nil)
	case errors.Is(err, services.ErrCouponUsageExceeded):
		return utils.BadRequestError("Coupon usage limit reached", nil)
	case errors.Is(err, services.ErrCouponMinimumNotMet):
		return utils.BadRequestError("Order total does not meet the coupon minimum", nil)
	case errors.Is(err, services.ErrEmptyCart):
		return utils.BadRequestError("Cart is empty", nil)
	case errors.Is(err, services.ErrInsufficientBalance):
		return utils.BadRequestError("Insufficient wallet balance", nil)
	case errors.Is(err, services.ErrValidation):
		return utils.BadRequestError("Validation failed", err)
	case errors.Is(err, services.ErrConflict):
		return utils.ConflictError(utils.ErrDuplicateEntry, err)
	case errors.Is(err, services.ErrInvalidTransition):
		return utils.ConflictError("Status change not allowed", err)
	case errors.Is(err, services.ErrGatewayUnavailable):
		return utils.ServiceUnavailableError("Payment method unavailable", nil)
	}
	return utils.NewAppError(http.StatusInternalServerError, fallback, err)
}
