package services

import (
	"context"
	"testing"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, repos *repository.Repositories, userID, total string, couponID *string) *models.Order {
	t.Helper()
	o := &models.Order{
		UserID:        userID,
		Status:        models.OrderStatusPending,
		TotalPrice:    money(total),
		Currency:      "GHS",
		CouponID:      couponID,
		PaymentMethod: models.PaymentMethodPaystack,
	}
	require.NoError(t, repos.Orders.Create(context.Background(), o))
	return o
}

func TestSettleOrderAppliesOnce(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "adwoa", "0")
	coupon := testutil.Coupon(t, repos, models.Coupon{Code: "TEN", DiscountType: models.DiscountFixed, Value: money("10")})
	order := pendingOrder(t, repos, user.ID, "90", &coupon.ID)

	events := &fakePublisher{}
	mailer := &fakeMailer{}
	svc := NewPaymentService(repos, NewNotificationService(repos, mailer), events)

	st := Settlement{OrderID: order.ID, Amount: money("90"), Currency: "ghs", Method: models.PaymentMethodPaystack, TransactionID: "PSK_123"}
	outcome, err := svc.SettleOrder(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, SettleApplied, outcome)

	outcome, err = svc.SettleOrder(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, SettleDuplicate, outcome)

	stored, err := repos.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)

	payments, err := repos.Payments.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "GHS", payments[0].Currency)
	require.NotNil(t, payments[0].TransactionID)
	assert.Equal(t, "PSK_123", *payments[0].TransactionID)

	used, err := repos.Coupons.Get(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, used.UsedCount)

	assert.Equal(t, []string{TopicOrderPaid}, events.topics())
	assert.Len(t, mailer.sent, 1)
}

func TestSettleOrderNotPendingRecordsOnly(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "nana", "0")
	order := pendingOrder(t, repos, user.ID, "40", nil)
	require.NoError(t, repos.Orders.Transition(ctx, order.ID, []models.OrderStatus{models.OrderStatusPending}, models.OrderStatusPaid))

	events := &fakePublisher{}
	svc := NewPaymentService(repos, nil, events)
	outcome, err := svc.SettleOrder(ctx, Settlement{OrderID: order.ID, Amount: money("40"), Method: models.PaymentMethodStripe, TransactionID: "cs_test_1"})
	require.NoError(t, err)
	assert.Equal(t, SettleRecorded, outcome)

	stored, err := repos.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)

	profile, err := repos.Profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, profile.WalletBalance.IsZero())

	payments, err := repos.Payments.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Empty(t, events.topics())
}

func TestSettleOrderAfterReapCreditsWallet(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "kojo", "5")
	order := pendingOrder(t, repos, user.ID, "75.50", nil)
	require.NoError(t, repos.DB().Model(&models.Order{}).Where("id = ?", order.ID).
		UpdateColumn("created_at", time.Now().Add(-2*time.Hour)).Error)

	reaped, err := NewOrderService(repos, nil, nil).ReapStale(ctx, time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, reaped)

	mailer := &fakeMailer{}
	events := &fakePublisher{}
	svc := NewPaymentService(repos, NewNotificationService(repos, mailer), events)
	st := Settlement{OrderID: order.ID, Amount: money("75.50"), Currency: "ghs", Method: models.PaymentMethodPaystack, TransactionID: "psk_late_1"}
	outcome, err := svc.SettleOrder(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, SettleRefunded, outcome)

	stored, err := repos.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, stored.Status)

	profile, err := repos.Profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "80.50", profile.WalletBalance.StringFixed(2))

	_, ledger, err := repos.Wallet.ListByUser(ctx, user.ID, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, models.WalletRefund, ledger[0].Type)
	assert.Equal(t, "75.50", ledger[0].Amount.StringFixed(2))

	payments, err := repos.Payments.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Body, "credited to your wallet")
	assert.Empty(t, events.topics())

	outcome, err = svc.SettleOrder(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, SettleDuplicate, outcome)
	profile, err = repos.Profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "80.50", profile.WalletBalance.StringFixed(2))
}

func TestSettleOrderCouponOverflowStillPays(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "akua", "0")
	coupon := testutil.Coupon(t, repos, models.Coupon{Code: "LAST", DiscountType: models.DiscountFixed, Value: money("5"), UsageLimit: intPtr(1), UsedCount: 1})
	order := pendingOrder(t, repos, user.ID, "15", &coupon.ID)

	svc := NewPaymentService(repos, nil, nil)
	outcome, err := svc.SettleOrder(ctx, Settlement{OrderID: order.ID, Amount: money("15"), Method: models.PaymentMethodPaystack, TransactionID: "PSK_9"})
	require.NoError(t, err)
	assert.Equal(t, SettleApplied, outcome)

	stored, err := repos.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)

	c, err := repos.Coupons.Get(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.UsedCount)
}

func TestSettleOrderUnknownOrder(t *testing.T) {
	repos := testutil.NewRepos(t)
	svc := NewPaymentService(repos, nil, nil)

	_, err := svc.SettleOrder(context.Background(), Settlement{OrderID: "missing", Amount: money("1"), Method: models.PaymentMethodPaystack, TransactionID: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SettleOrder(context.Background(), Settlement{Amount: money("1")})
	assert.ErrorIs(t, err, ErrValidation)
}
