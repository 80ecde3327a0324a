package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesSameLine(t *testing.T) {
	price := decimal.NewFromInt(10)
	c := Cart{}.
		Add(CartItem{ProductID: "p1", Price: price, Quantity: 1}).
		Add(CartItem{ProductID: "p1", Price: price, Quantity: 2}).
		Add(CartItem{ProductID: "p1", VariantID: "v1", Price: price}).
		Add(CartItem{ProductID: "p2", Price: price, Quantity: 1})

	require.Len(t, c.Items, 3)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, 5, c.TotalItems())
	assert.True(t, c.TotalPrice().Equal(decimal.NewFromInt(50)))
}

func TestCartDoesNotMutateReceiver(t *testing.T) {
	base := Cart{}.Add(CartItem{ProductID: "p1", Quantity: 1})
	grown := base.Add(CartItem{ProductID: "p1", Quantity: 4})

	assert.Equal(t, 1, base.Items[0].Quantity)
	assert.Equal(t, 5, grown.Items[0].Quantity)
}

func TestCartUpdateAndRemove(t *testing.T) {
	c := Cart{}.
		Add(CartItem{ProductID: "p1", Quantity: 1}).
		Add(CartItem{ProductID: "p2", Quantity: 1})

	c = c.UpdateQuantity("p1", "", 7)
	assert.Equal(t, 7, c.Items[0].Quantity)

	c = c.UpdateQuantity("p2", "", 0)
	require.Len(t, c.Items, 1)

	c = c.Remove("p1", "")
	assert.True(t, c.IsEmpty())
	assert.NotNil(t, c.Clear().Items)
}

func TestCartEncodeDecode(t *testing.T) {
	c := Cart{}.Add(CartItem{ProductID: "p1", Name: "Hat", Price: decimal.RequireFromString("12.50"), Quantity: 2})
	raw, err := c.Encode()
	require.NoError(t, err)

	back, err := DecodeCart(raw)
	require.NoError(t, err)
	require.Len(t, back.Items, 1)
	assert.Equal(t, "Hat", back.Items[0].Name)
	assert.True(t, back.Items[0].Price.Equal(decimal.RequireFromString("12.5")))

	empty, err := DecodeCart("")
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)

	_, err = DecodeCart("{not json")
	assert.Error(t, err)

	raw, err = Cart{}.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, raw)
}

func TestCouponExpiredAndExhausted(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Second), now.Add(time.Hour)
	limit := 2

	assert.False(t, Coupon{}.Expired(now))
	assert.True(t, Coupon{Expiry: &past}.Expired(now))
	assert.False(t, Coupon{Expiry: &future}.Expired(now))

	assert.False(t, Coupon{}.Exhausted())
	assert.False(t, Coupon{UsageLimit: &limit, UsedCount: 1}.Exhausted())
	assert.True(t, Coupon{UsageLimit: &limit, UsedCount: 2}.Exhausted())
}
