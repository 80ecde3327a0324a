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

func TestEnsureProfileCreatesOnce(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	svc := NewAccountService(repos)

	p, err := svc.EnsureProfile(ctx, Identity{ID: "sub-1", Email: " kofi@example.com ", Name: "Kofi"})
	require.NoError(t, err)
	assert.Equal(t, "kofi@example.com", p.Email)
	assert.Equal(t, models.RoleUser, p.Role)
	assert.Len(t, p.ReferralCode, 8)
	assert.True(t, p.WalletBalance.IsZero())

	again, err := svc.EnsureProfile(ctx, Identity{ID: "sub-1", Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Kofi", again.Name)
	assert.Equal(t, p.ReferralCode, again.ReferralCode)

	_, err = svc.EnsureProfile(ctx, Identity{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEnsureProfileRecordsReferral(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	referrer := testutil.Profile(t, repos, "AMA", "0")
	svc := NewAccountService(repos)

	p, err := svc.EnsureProfile(ctx, Identity{ID: "sub-2", Email: "new@example.com", ReferralCode: "refama"})
	require.NoError(t, err)
	require.NotNil(t, p.ReferredByID)
	assert.Equal(t, referrer.ID, *p.ReferredByID)

	view, err := svc.Referrals(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, "REFAMA", view.Code)
	require.Len(t, view.Referrals, 1)
	assert.Equal(t, p.ID, view.Referrals[0].ReferredID)
	assert.Equal(t, models.ReferralPending, view.Referrals[0].Status)
	assert.True(t, view.TotalCommission.IsZero())

	unknown, err := svc.EnsureProfile(ctx, Identity{ID: "sub-3", ReferralCode: "NOSUCH"})
	require.NoError(t, err)
	assert.Nil(t, unknown.ReferredByID)
}

func TestCreditWallet(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "yaw", "5")
	svc := NewAccountService(repos)

	p, err := svc.CreditWallet(ctx, user.ID, money("12.345"), "", "Goodwill")
	require.NoError(t, err)
	assert.Equal(t, "17.35", p.WalletBalance.StringFixed(2))

	_, err = svc.CreditWallet(ctx, user.ID, money("1"), models.WalletDebit, "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.CreditWallet(ctx, user.ID, money("-1"), models.WalletCredit, "")
	assert.ErrorIs(t, err, ErrValidation)

	view, err := svc.Wallet(ctx, user.ID, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, view.Total)
	assert.Equal(t, models.WalletCredit, view.Transactions[0].Type)
	assert.True(t, view.Balance.Equal(money("17.35")))
}

func TestAddAddressKeepsSingleDefault(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "esi", "0")
	svc := NewAccountService(repos)

	first, err := svc.AddAddress(ctx, user.ID, AddressInput{Address: "1 Ring Rd", Phone: "020 123 4567"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, "+233201234567", first.Phone)
	assert.Equal(t, "Home", first.Label)
	assert.Equal(t, "Ghana", first.Country)

	second, err := svc.AddAddress(ctx, user.ID, AddressInput{Address: "2 High St", Label: "Office", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	list, err := svc.Addresses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.False(t, list[1].IsDefault)

	_, err = svc.AddAddress(ctx, user.ID, AddressInput{Address: " "})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.AddAddress(ctx, user.ID, AddressInput{Address: "x", Phone: "123"})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.DeleteAddress(ctx, user.ID, first.ID))
	assert.ErrorIs(t, svc.DeleteAddress(ctx, user.ID, first.ID), ErrNotFound)
}

func TestUpdateProfileValidates(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "kwame", "0")
	svc := NewAccountService(repos)

	p, err := svc.UpdateProfile(ctx, user.ID, ProfileInput{Name: "Kwame Mensah", Phone: "+233 24 000 0000"})
	require.NoError(t, err)
	assert.Equal(t, "Kwame Mensah", p.Name)
	assert.Equal(t, "+233240000000", p.Phone)

	_, err = svc.UpdateProfile(ctx, user.ID, ProfileInput{Name: "R2D2"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.UpdateProfile(ctx, user.ID, ProfileInput{AvatarURL: "ftp://x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWishlist(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "adjoa", "0")
	product := testutil.Product(t, repos, "Perfume", "80")
	svc := NewAccountService(repos)

	_, err := svc.AddToWishlist(ctx, user.ID, product.ID)
	require.NoError(t, err)
	_, err = svc.AddToWishlist(ctx, user.ID, product.ID)
	require.NoError(t, err)
	_, err = svc.AddToWishlist(ctx, user.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := svc.Wishlist(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)

	require.NoError(t, svc.RemoveFromWishlist(ctx, user.ID, product.ID))
	items, err = svc.Wishlist(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
