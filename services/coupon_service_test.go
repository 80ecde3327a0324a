package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var money = testutil.Money

func intPtr(n int) *int { return &n }

func TestCouponEvaluate(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	past := time.Now().Add(-time.Hour)

	testutil.Coupon(t, repos, models.Coupon{Code: "SAVE20", DiscountType: models.DiscountPercent, Value: money("20")})
	testutil.Coupon(t, repos, models.Coupon{Code: "FLAT50", DiscountType: models.DiscountFixed, Value: money("50")})
	testutil.Coupon(t, repos, models.Coupon{Code: "OLD", DiscountType: models.DiscountFixed, Value: money("5"), Expiry: &past})
	testutil.Coupon(t, repos, models.Coupon{Code: "USEDUP", DiscountType: models.DiscountFixed, Value: money("5"), UsageLimit: intPtr(3), UsedCount: 3})
	testutil.Coupon(t, repos, models.Coupon{Code: "BIGSPEND", DiscountType: models.DiscountPercent, Value: money("10"), MinOrder: money("200")})

	svc := NewCouponService(repos)

	tests := []struct {
		name         string
		code         string
		subtotal     string
		wantErr      error
		wantDiscount string
		wantTotal    string
	}{
		{"percent", "SAVE20", "100", nil, "20", "80"},
		{"fixed capped at subtotal", "FLAT50", "30", nil, "30", "0"},
		{"case insensitive", "save20", "50", nil, "10", "40"},
		{"unknown", "NOPE", "100", ErrCouponNotFound, "", ""},
		{"blank", "  ", "100", ErrCouponNotFound, "", ""},
		{"expired", "OLD", "100", ErrCouponExpired, "", ""},
		{"usage limit reached", "USEDUP", "100", ErrCouponUsageExceeded, "", ""},
		{"minimum not met", "BIGSPEND", "199.99", ErrCouponMinimumNotMet, "", ""},
		{"minimum met exactly", "BIGSPEND", "200", nil, "20", "180"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := svc.Evaluate(ctx, tt.code, money(tt.subtotal))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, quote.Discount.Equal(money(tt.wantDiscount)), "discount %s", quote.Discount)
			assert.True(t, quote.Total.Equal(money(tt.wantTotal)), "total %s", quote.Total)
		})
	}
}

func TestCouponEvaluateDoesNotConsume(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	c := testutil.Coupon(t, repos, models.Coupon{Code: "ONCE", DiscountType: models.DiscountFixed, Value: money("5"), UsageLimit: intPtr(1)})

	svc := NewCouponService(repos)
	for i := 0; i < 3; i++ {
		_, err := svc.Evaluate(ctx, "ONCE", money("10"))
		require.NoError(t, err)
	}

	got, err := repos.Coupons.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UsedCount)
}

func TestCouponExpiryUsesClock(t *testing.T) {
	repos := testutil.NewRepos(t)
	expiry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	testutil.Coupon(t, repos, models.Coupon{Code: "NY", DiscountType: models.DiscountFixed, Value: money("5"), Expiry: &expiry})

	svc := NewCouponService(repos)
	svc.now = func() time.Time { return expiry.Add(-time.Minute) }
	_, err := svc.Evaluate(context.Background(), "NY", money("10"))
	assert.NoError(t, err)

	svc.now = func() time.Time { return expiry.Add(time.Minute) }
	_, err = svc.Evaluate(context.Background(), "NY", money("10"))
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestComputeDiscountPercentOverHundredClamps(t *testing.T) {
	c := &models.Coupon{DiscountType: models.DiscountPercent, Value: money("150")}
	assert.True(t, ComputeDiscount(c, money("40")).Equal(money("40")))

	c = &models.Coupon{DiscountType: models.DiscountPercent, Value: money("33")}
	assert.Equal(t, "3.30", ComputeDiscount(c, money("9.99")).StringFixed(2))
}

func TestCouponInputValidate(t *testing.T) {
	tests := []struct {
		name string
		in   CouponInput
		ok   bool
	}{
		{"valid percent", CouponInput{Code: " save10 ", DiscountType: models.DiscountPercent, Value: money("10")}, true},
		{"percent over 100", CouponInput{Code: "X", DiscountType: models.DiscountPercent, Value: money("101")}, false},
		{"zero value", CouponInput{Code: "X", DiscountType: models.DiscountFixed, Value: money("0")}, false},
		{"bad type", CouponInput{Code: "X", DiscountType: "bogo", Value: money("1")}, false},
		{"missing code", CouponInput{DiscountType: models.DiscountFixed, Value: money("1")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}

	in := CouponInput{Code: " save10 ", DiscountType: models.DiscountPercent, Value: money("10")}
	require.NoError(t, in.Validate())
	assert.Equal(t, "SAVE10", in.Code)
}

func TestCouponCreateDuplicate(t *testing.T) {
	repos := testutil.NewRepos(t)
	svc := NewCouponService(repos)
	ctx := context.Background()

	_, err := svc.Create(ctx, CouponInput{Code: "dup", DiscountType: models.DiscountFixed, Value: money("5")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CouponInput{Code: "DUP", DiscountType: models.DiscountFixed, Value: money("5")})
	assert.ErrorIs(t, err, ErrConflict)
}
