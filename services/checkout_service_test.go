package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckout(repos *repository.Repositories, mailer Mailer, events EventPublisher) *CheckoutService {
	notifier := NewNotificationService(repos, mailer)
	return NewCheckoutService(repos, NewCouponService(repos), notifier, events, "GHS")
}

func cartOf(lines ...models.CartItem) models.Cart {
	return models.Cart{Items: lines}
}

func TestCheckoutWalletWithCoupon(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()

	user := testutil.Profile(t, repos, "ama", "200")
	product := testutil.Product(t, repos, "Sneakers", "50")
	coupon := testutil.Coupon(t, repos, models.Coupon{Code: "SAVE20", DiscountType: models.DiscountPercent, Value: money("20")})

	mailer := &fakeMailer{}
	events := &fakePublisher{}
	svc := newCheckout(repos, mailer, events)

	res, err := svc.Checkout(ctx, CheckoutInput{
		Profile:    user,
		Cart:       cartOf(models.CartItem{ProductID: product.ID, Quantity: 2}),
		Method:     models.PaymentMethodWallet,
		CouponCode: "save20",
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPaid, res.Order.Status)
	assert.True(t, res.Subtotal.Equal(money("100")))
	assert.True(t, res.Discount.Equal(money("20")))
	assert.True(t, res.Order.TotalPrice.Equal(money("80")))
	assert.Empty(t, res.RedirectURL)

	profile, err := repos.Profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, profile.WalletBalance.Equal(money("120")), "balance %s", profile.WalletBalance)

	total, ledger, err := repos.Wallet.ListByUser(ctx, user.ID, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.True(t, ledger[0].Amount.Equal(money("-80")))
	assert.Equal(t, models.WalletDebit, ledger[0].Type)
	assert.Equal(t, res.Order.ID, ledger[0].ReferenceID)

	stored, err := repos.Orders.Get(ctx, res.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.True(t, stored.Items[0].Price.Equal(money("50")))

	payments, err := repos.Payments.ListByOrder(ctx, res.Order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, models.PaymentMethodWallet, payments[0].PaymentMethod)

	used, err := repos.Coupons.Get(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, used.UsedCount)

	notes, err := repos.Notifications.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ama@example.com", mailer.sent[0].To)
	assert.Equal(t, []string{TopicOrderPaid}, events.topics())
}

func TestCheckoutWalletInsufficientBalanceLeavesNoOrder(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()

	user := testutil.Profile(t, repos, "kofi", "10")
	product := testutil.Product(t, repos, "Headphones", "75.50")
	svc := newCheckout(repos, nil, nil)

	_, err := svc.Checkout(ctx, CheckoutInput{
		Profile: user,
		Cart:    cartOf(models.CartItem{ProductID: product.ID, Quantity: 1}),
		Method:  models.PaymentMethodWallet,
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	orders, err := repos.Orders.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	profile, err := repos.Profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, profile.WalletBalance.Equal(money("10")))
}

func TestCheckoutWalletExactBalance(t *testing.T) {
	repos := testutil.NewRepos(t)
	user := testutil.Profile(t, repos, "esi", "75.50")
	product := testutil.Product(t, repos, "Headphones", "75.50")
	svc := newCheckout(repos, nil, nil)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Profile: user,
		Cart:    cartOf(models.CartItem{ProductID: product.ID, Quantity: 1}),
		Method:  models.PaymentMethodWallet,
	})
	require.NoError(t, err)

	profile, err := repos.Profiles.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, profile.WalletBalance.IsZero())
}

func TestCheckoutGatewayLeavesOrderPending(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()

	user := testutil.Profile(t, repos, "yaw", "0")
	product := testutil.Product(t, repos, "Watch", "120")
	coupon := testutil.Coupon(t, repos, models.Coupon{Code: "FLAT20", DiscountType: models.DiscountFixed, Value: money("20")})

	gw := &fakeGateway{url: "https://pay.example.com/checkout"}
	events := &fakePublisher{}
	svc := newCheckout(repos, nil, events)
	svc.RegisterGateway(models.PaymentMethodPaystack, gw)

	res, err := svc.Checkout(ctx, CheckoutInput{
		Profile:    user,
		Cart:       cartOf(models.CartItem{ProductID: product.ID, Quantity: 1}),
		Method:     models.PaymentMethodPaystack,
		CouponCode: "FLAT20",
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, res.Order.Status)
	assert.Equal(t, "https://pay.example.com/checkout?order="+res.Order.ID, res.RedirectURL)
	assert.Equal(t, []string{res.Order.ID + "|yaw@example.com"}, gw.calls)
	assert.Empty(t, events.topics())

	stored, err := repos.Orders.Get(ctx, res.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
	assert.True(t, stored.TotalPrice.Equal(money("100")))
	require.NotNil(t, stored.CouponID)

	unused, err := repos.Coupons.Get(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unused.UsedCount)
}

func TestCheckoutRejections(t *testing.T) {
	repos := testutil.NewRepos(t)
	user := testutil.Profile(t, repos, "abena", "500")
	product := testutil.Product(t, repos, "Bag", "40")
	svc := newCheckout(repos, nil, nil)
	line := models.CartItem{ProductID: product.ID, Quantity: 1}

	tests := []struct {
		name string
		in   CheckoutInput
		want error
	}{
		{"empty cart", CheckoutInput{Profile: user, Method: models.PaymentMethodWallet}, ErrEmptyCart},
		{"unknown method", CheckoutInput{Profile: user, Cart: cartOf(line), Method: "cash"}, ErrValidation},
		{"gateway not registered", CheckoutInput{Profile: user, Cart: cartOf(line), Method: models.PaymentMethodStripe}, ErrGatewayUnavailable},
		{"missing product", CheckoutInput{Profile: user, Cart: cartOf(models.CartItem{ProductID: "gone", Quantity: 1}), Method: models.PaymentMethodWallet}, ErrValidation},
		{"bad coupon", CheckoutInput{Profile: user, Cart: cartOf(line), Method: models.PaymentMethodWallet, CouponCode: "NOPE"}, ErrCouponNotFound},
		{"no profile", CheckoutInput{Cart: cartOf(line), Method: models.PaymentMethodWallet}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Checkout(context.Background(), tt.in)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	orders, err := repos.Orders.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutGatewayFailureSurfaces(t *testing.T) {
	repos := testutil.NewRepos(t)
	user := testutil.Profile(t, repos, "kwame", "0")
	product := testutil.Product(t, repos, "Lamp", "15")
	svc := newCheckout(repos, nil, nil)
	svc.RegisterGateway(models.PaymentMethodStripe, &fakeGateway{err: errors.New("card network down")})

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		Profile: user,
		Cart:    cartOf(models.CartItem{ProductID: product.ID, Quantity: 1}),
		Method:  models.PaymentMethodStripe,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card network down")
}

func TestCheckoutWalletCouponExhaustedMidway(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "efua", "100")
	product := testutil.Product(t, repos, "Cap", "20")
	testutil.Coupon(t, repos, models.Coupon{Code: "ONE", DiscountType: models.DiscountFixed, Value: money("5"), UsageLimit: intPtr(1)})
	svc := newCheckout(repos, nil, nil)

	in := CheckoutInput{
		Profile:    user,
		Cart:       cartOf(models.CartItem{ProductID: product.ID, Quantity: 1}),
		Method:     models.PaymentMethodWallet,
		CouponCode: "ONE",
	}
	_, err := svc.Checkout(ctx, in)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, in)
	assert.ErrorIs(t, err, ErrCouponUsageExceeded)

	profile, err := repos.Profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, profile.WalletBalance.Equal(money("85")))
}

func TestPriceUsesVariantPrice(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	product := testutil.Product(t, repos, "Shirt", "30")
	variant := &models.ProductVariant{ProductID: product.ID, Size: "XL", PriceAdjustment: money("5")}
	require.NoError(t, repos.Products.CreateVariant(ctx, variant))

	svc := newCheckout(repos, nil, nil)
	items, subtotal, err := svc.Price(ctx, cartOf(
		models.CartItem{ProductID: product.ID, Quantity: 1},
		models.CartItem{ProductID: product.ID, VariantID: variant.ID, Quantity: 2},
	))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, subtotal.Equal(money("100")), "subtotal %s", subtotal)
	require.NotNil(t, items[1].VariantID)
	assert.Equal(t, variant.ID, *items[1].VariantID)
}
