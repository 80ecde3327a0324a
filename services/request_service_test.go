package services

import (
	"context"
	"testing"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRequest(t *testing.T, svc *RequestService, userID, name string) *models.Request {
	t.Helper()
	req, err := svc.Submit(context.Background(), userID, RequestInput{ProductName: name})
	require.NoError(t, err)
	return req
}

func TestRequestSubmitDefaults(t *testing.T) {
	repos := testutil.NewRepos(t)
	user := testutil.Profile(t, repos, "ama", "0")
	svc := NewRequestService(repos, nil, nil, "GHS")

	req := submitRequest(t, svc, user.ID, "  PlayStation 5  ")
	assert.Equal(t, "PlayStation 5", req.ProductName)
	assert.Equal(t, models.PlaceholderLink, req.LinkOrImage)
	assert.Equal(t, models.RequestStatusPending, req.Status)

	_, err := svc.Submit(context.Background(), user.ID, RequestInput{ProductName: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Submit(context.Background(), user.ID, RequestInput{ProductName: "Camera", LinkOrImage: "not a url"})
	assert.ErrorIs(t, err, ErrValidation)

	negative := money("-1")
	_, err = svc.Submit(context.Background(), user.ID, RequestInput{ProductName: "Camera", Budget: &negative})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequestQuoteThenConvert(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "kofi", "0")
	events := &fakePublisher{}
	svc := NewRequestService(repos, NewNotificationService(repos, nil), events, "GHS")

	req := submitRequest(t, svc, user.ID, "Drone")

	_, err := svc.ConvertToOrder(ctx, req.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	quoted, err := svc.Quote(ctx, req.ID, money("150.00"))
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusQuoted, quoted.Status)
	require.NotNil(t, quoted.QuotePrice)
	assert.True(t, quoted.QuotePrice.Equal(money("150")))

	order, err := svc.ConvertToOrder(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.TotalPrice.Equal(money("150")))
	assert.Equal(t, user.ID, order.UserID)

	stored, err := repos.Requests.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusOrdered, stored.Status)
	require.NotNil(t, stored.OrderID)
	assert.Equal(t, order.ID, *stored.OrderID)

	storedOrder, err := repos.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, storedOrder.Items)

	_, err = svc.ConvertToOrder(ctx, req.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	notes, err := repos.Notifications.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Equal(t, []string{TopicRequestStatusChanged, TopicRequestStatusChanged}, events.topics())
}

func TestRequestQuoteRevisionAndValidation(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "yaa", "0")
	svc := NewRequestService(repos, nil, nil, "GHS")
	req := submitRequest(t, svc, user.ID, "Laptop")

	_, err := svc.Quote(ctx, req.ID, money("0"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Quote(ctx, req.ID, money("900"))
	require.NoError(t, err)
	revised, err := svc.Quote(ctx, req.ID, money("850.555"))
	require.NoError(t, err)
	assert.Equal(t, "850.56", revised.QuotePrice.StringFixed(2))
}

func TestRequestAccept(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	owner := testutil.Profile(t, repos, "owner", "0")
	other := testutil.Profile(t, repos, "other", "0")
	svc := NewRequestService(repos, nil, nil, "GHS")
	req := submitRequest(t, svc, owner.ID, "Guitar")

	_, err := svc.Accept(ctx, owner.ID, req.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Quote(ctx, req.ID, money("300"))
	require.NoError(t, err)

	_, err = svc.Accept(ctx, other.ID, req.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	accepted, err := svc.Accept(ctx, owner.ID, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, accepted.Status)

	order, err := svc.ConvertToOrder(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.Equal(money("300")))
}

func TestRequestSetStatusRejectsBackwardMoves(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "kwesi", "0")
	svc := NewRequestService(repos, nil, nil, "GHS")
	req := submitRequest(t, svc, user.ID, "Bike")

	got, err := svc.SetStatus(ctx, req.ID, models.RequestStatusReviewing)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusReviewing, got.Status)

	_, err = svc.SetStatus(ctx, req.ID, models.RequestStatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.SetStatus(ctx, req.ID, models.RequestStatusQuoted)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetStatus(ctx, req.ID, "teleported")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetStatus(ctx, "missing", models.RequestStatusReviewing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func paidRequest(t *testing.T, svc *RequestService, userID, name string) *models.Request {
	t.Helper()
	ctx := context.Background()
	req := submitRequest(t, svc, userID, name)
	_, err := svc.Quote(ctx, req.ID, money("120"))
	require.NoError(t, err)
	_, err = svc.Accept(ctx, userID, req.ID)
	require.NoError(t, err)
	paid, err := svc.SetStatus(ctx, req.ID, models.RequestStatusPaid)
	require.NoError(t, err)
	return paid
}

func TestRequestPaidMovesStraightToShipping(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "adjoa", "0")
	svc := NewRequestService(repos, nil, nil, "GHS")

	shipped := paidRequest(t, svc, user.ID, "Drone")
	got, err := svc.SetStatus(ctx, shipped.ID, models.RequestStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusShipped, got.Status)

	delivered := paidRequest(t, svc, user.ID, "Camera")
	got, err = svc.SetStatus(ctx, delivered.ID, models.RequestStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusDelivered, got.Status)

	_, err = svc.SetStatus(ctx, delivered.ID, models.RequestStatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRequestListFilters(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "abla", "0")
	svc := NewRequestService(repos, nil, nil, "GHS")
	first := submitRequest(t, svc, user.ID, "Phone")
	submitRequest(t, svc, user.ID, "Tablet")
	_, err := svc.Quote(ctx, first.ID, money("10"))
	require.NoError(t, err)

	total, quoted, err := svc.List(ctx, models.RequestStatusQuoted, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, quoted, 1)
	assert.Equal(t, first.ID, quoted[0].ID)

	_, _, err = svc.List(ctx, "bogus", repository.Page{Limit: 10})
	assert.ErrorIs(t, err, ErrValidation)

	mine, err := svc.ListMine(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
