package services

import (
	"context"
	"testing"
	"time"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapListsStaticPagesThenProducts(t *testing.T) {
	repos := testutil.NewRepos(t)
	p := testutil.Product(t, repos, "Console", "3000")
	svc := NewSEOService(repos, "https://shop.example.com/")
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	entries, err := svc.Sitemap(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, "https://shop.example.com", entries[0].Loc)
	assert.Equal(t, 1.0, entries[0].Priority)
	assert.Equal(t, fixed, entries[0].LastMod)
	assert.Equal(t, "https://shop.example.com/shop", entries[1].Loc)
	assert.Equal(t, "https://shop.example.com/shop/"+p.ID, entries[4].Loc)
	assert.Equal(t, "weekly", entries[4].ChangeFreq)
	assert.Equal(t, 0.6, entries[4].Priority)
}

func TestRobots(t *testing.T) {
	svc := NewSEOService(nil, "")
	body := svc.Robots()
	assert.Contains(t, body, "User-Agent: *\nAllow: /\n")
	for _, path := range DisallowedPaths {
		assert.Contains(t, body, "Disallow: "+path+"\n")
	}
	assert.Contains(t, body, "Sitemap: https://233plug.com/sitemap.xml")
}

func TestDashboardStats(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	user := testutil.Profile(t, repos, "ama", "0")
	testutil.Product(t, repos, "Thing", "10")

	paidOrder(t, repos, user.ID)
	paidOrder(t, repos, user.ID)
	pendingOrder(t, repos, user.ID, "500", nil)
	orderedRequest(t, repos, user.ID, "Gadget")
	require.NoError(t, repos.Content.CreateContactSubmission(ctx, &models.ContactSubmission{Name: "A", Email: "a@example.com", Message: "hi"}))

	stats, err := NewDashboardService(repos).Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Orders)
	assert.EqualValues(t, 1, stats.Requests)
	assert.EqualValues(t, 1, stats.Products)
	assert.EqualValues(t, 1, stats.Contacts)
	assert.Zero(t, stats.HeroSlides)
	assert.True(t, stats.Revenue.Equal(money("40")), "revenue %s", stats.Revenue)
	assert.Len(t, stats.LatestOrders, 3)
	assert.Len(t, stats.LatestRequests, 1)
}

func TestDashboardRevenueEmpty(t *testing.T) {
	stats, err := NewDashboardService(testutil.NewRepos(t)).Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.Revenue.IsZero())
}
