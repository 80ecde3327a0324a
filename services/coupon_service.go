package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CouponQuote is the outcome of evaluating a coupon against a subtotal.
type CouponQuote struct {
	Coupon   *models.Coupon  `json:"coupon"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

type CouponService struct {
	repos *repository.Repositories
	now   func() time.Time
}

func NewCouponService(repos *repository.Repositories) *CouponService {
	return &CouponService{repos: repos, now: time.Now}
}

// Evaluate validates code against subtotal and computes the discount. It
// never consumes the coupon; usage is counted when an order is paid.
func (s *CouponService) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (*CouponQuote, error) {
	return s.evaluate(ctx, s.repos, code, subtotal)
}

func (s *CouponService) evaluate(ctx context.Context, repos *repository.Repositories, code string, subtotal decimal.Decimal) (*CouponQuote, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrCouponNotFound
	}
	coupon, err := repos.Coupons.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("lookup coupon: %w", err)
	}
	if coupon.Expired(s.now()) {
		return nil, ErrCouponExpired
	}
	if coupon.Exhausted() {
		return nil, ErrCouponUsageExceeded
	}
	if subtotal.LessThan(coupon.MinOrder) {
		return nil, ErrCouponMinimumNotMet
	}

	discount := ComputeDiscount(coupon, subtotal)
	return &CouponQuote{
		Coupon:   coupon,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}, nil
}

// ComputeDiscount applies the coupon to subtotal. Percent coupons are not
// re-checked against 100 here; fixed coupons never exceed the subtotal.
func ComputeDiscount(c *models.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	switch c.DiscountType {
	case models.DiscountPercent:
		d := subtotal.Mul(c.Value).Div(hundred).Round(2)
		if d.GreaterThan(subtotal) {
			return subtotal
		}
		return d
	case models.DiscountFixed:
		return decimal.Min(c.Value, subtotal)
	}
	return decimal.Zero
}

// CouponInput is the admin form for a coupon.
type CouponInput struct {
	Code         string              `json:"code" binding:"required"`
	DiscountType models.DiscountType `json:"discount_type" binding:"required"`
	Value        decimal.Decimal     `json:"value"`
	MinOrder     *decimal.Decimal    `json:"min_order"`
	Expiry       *time.Time          `json:"expiry"`
	UsageLimit   *int                `json:"usage_limit"`
}

// Validate normalizes the code and enforces the admin-side rules.
func (in *CouponInput) Validate() error {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if in.Code == "" {
		return fmt.Errorf("%w: code is required", ErrValidation)
	}
	if in.DiscountType != models.DiscountPercent && in.DiscountType != models.DiscountFixed {
		return fmt.Errorf("%w: discount_type must be percent or fixed", ErrValidation)
	}
	if !in.Value.IsPositive() {
		return fmt.Errorf("%w: value must be greater than 0", ErrValidation)
	}
	if in.DiscountType == models.DiscountPercent && in.Value.GreaterThan(hundred) {
		return fmt.Errorf("%w: percent discount cannot exceed 100", ErrValidation)
	}
	if in.MinOrder != nil && in.MinOrder.IsNegative() {
		return fmt.Errorf("%w: min_order cannot be negative", ErrValidation)
	}
	if in.UsageLimit != nil && *in.UsageLimit < 0 {
		return fmt.Errorf("%w: usage_limit cannot be negative", ErrValidation)
	}
	return nil
}

func (in CouponInput) apply(c *models.Coupon) {
	c.Code = in.Code
	c.DiscountType = in.DiscountType
	c.Value = in.Value
	c.MinOrder = decimal.Zero
	if in.MinOrder != nil {
		c.MinOrder = *in.MinOrder
	}
	c.Expiry = in.Expiry
	c.UsageLimit = in.UsageLimit
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.repos.Coupons.List(ctx)
}

func (s *CouponService) Create(ctx context.Context, in CouponInput) (*models.Coupon, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var c models.Coupon
	in.apply(&c)
	if err := s.repos.Coupons.Create(ctx, &c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: coupon code %s already exists", ErrConflict, in.Code)
		}
		return nil, err
	}
	return &c, nil
}

func (s *CouponService) Update(ctx context.Context, id string, in CouponInput) (*models.Coupon, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repos.Coupons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(c)
	if err := s.repos.Coupons.Save(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: coupon code %s already exists", ErrConflict, in.Code)
		}
		return nil, err
	}
	return c, nil
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.repos.Coupons.Delete(ctx, id)
}
