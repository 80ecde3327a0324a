package repository_test

import (
	"context"
	"testing"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebitWalletNeverOverdraws(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	p := testutil.Profile(t, repos, "kwame", "50")

	ok, err := repos.Profiles.DebitWallet(ctx, p.ID, testutil.Money("30.25"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repos.Profiles.DebitWallet(ctx, p.ID, testutil.Money("19.76"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repos.Profiles.DebitWallet(ctx, p.ID, testutil.Money("19.75"))
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repos.Profiles.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.WalletBalance.IsZero(), got.WalletBalance.String())

	require.NoError(t, repos.Profiles.CreditWallet(ctx, p.ID, testutil.Money("10.10")))
	assert.ErrorIs(t, repos.Profiles.CreditWallet(ctx, "nobody", testutil.Money("1")), repository.ErrNotFound)
}

func TestIncrementUsageStopsAtLimit(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	limit := 2
	c := testutil.Coupon(t, repos, models.Coupon{Code: "TWICE", DiscountType: models.DiscountFixed, Value: testutil.Money("5"), UsageLimit: &limit})

	for i := 0; i < limit; i++ {
		ok, err := repos.Coupons.IncrementUsage(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := repos.Coupons.IncrementUsage(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repos.Coupons.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, limit, got.UsedCount)

	unlimited := testutil.Coupon(t, repos, models.Coupon{Code: "ALWAYS", DiscountType: models.DiscountFixed, Value: testutil.Money("5")})
	for i := 0; i < 5; i++ {
		ok, err := repos.Coupons.IncrementUsage(ctx, unlimited.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestOrderTransitionGuardsCurrentStatus(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	p := testutil.Profile(t, repos, "efua", "0")
	o := &models.Order{UserID: p.ID, Status: models.OrderStatusPending, TotalPrice: testutil.Money("10"), Currency: "GHS"}
	require.NoError(t, repos.Orders.Create(ctx, o))

	err := repos.Orders.Transition(ctx, o.ID, []models.OrderStatus{models.OrderStatusPaid}, models.OrderStatusShipped)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repos.Orders.Transition(ctx, o.ID, models.OrderPredecessors(models.OrderStatusPaid), models.OrderStatusPaid))
	got, err := repos.Orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, got.Status)

	assert.ErrorIs(t, repos.Orders.Transition(ctx, o.ID, nil, models.OrderStatusCancelled), repository.ErrNotFound)
}

func TestPaymentTransactionIDIsUnique(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	p := testutil.Profile(t, repos, "yaw", "0")
	o := &models.Order{UserID: p.ID, Status: models.OrderStatusPending, TotalPrice: testutil.Money("10"), Currency: "GHS"}
	require.NoError(t, repos.Orders.Create(ctx, o))

	ref := "psk_ref_1"
	pay := func() error {
		return repos.Payments.Create(ctx, &models.Payment{
			UserID: p.ID, OrderID: o.ID, Amount: testutil.Money("10"), Currency: "GHS",
			PaymentMethod: models.PaymentMethodPaystack, Status: models.PaymentStatusCompleted, TransactionID: &ref,
		})
	}
	require.NoError(t, pay())
	assert.Error(t, pay())

	exists, err := repos.Payments.ExistsByTransaction(ctx, ref)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Payments.ExistsByTransaction(ctx, "other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRevenueCountsOnlyGivenStatus(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	p := testutil.Profile(t, repos, "abena", "0")
	for _, o := range []struct {
		status models.OrderStatus
		total  string
	}{
		{models.OrderStatusPaid, "12.50"},
		{models.OrderStatusPaid, "7.50"},
		{models.OrderStatusPending, "100"},
	} {
		require.NoError(t, repos.Orders.Create(ctx, &models.Order{UserID: p.ID, Status: o.status, TotalPrice: testutil.Money(o.total), Currency: "GHS"}))
	}

	revenue, err := repos.Orders.Revenue(ctx, models.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, "20.00", revenue.StringFixed(2))

	revenue, err = repos.Orders.Revenue(ctx, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}
