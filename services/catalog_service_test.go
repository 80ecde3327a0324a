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

type fakeIndex struct {
	indexed map[string]string
	deleted []string
	hits    []string
	err     error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{indexed: map[string]string{}}
}

func (f *fakeIndex) Index(_ context.Context, p *models.Product) error {
	f.indexed[p.ID] = p.Name
	return nil
}

func (f *fakeIndex) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, _ string, _, _ int) (int64, []string, error) {
	if f.err != nil {
		return 0, nil, f.err
	}
	return int64(len(f.hits)), f.hits, nil
}

func TestCatalogCreateIndexesProduct(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	index := newFakeIndex()
	svc := NewCatalogService(repos, index, "GHS")

	p, err := svc.Create(ctx, ProductInput{
		Name:     "  Air Max  ",
		Price:    money("499.999"),
		Images:   []string{" ", "https://cdn.example.com/a.jpg"},
		Variants: []VariantInput{{Size: "42", PriceAdjustment: money("10"), Stock: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Air Max", p.Name)
	assert.Equal(t, "500.00", p.Price.StringFixed(2))
	assert.Equal(t, "GHS", p.Currency)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, p.Images)
	assert.Equal(t, "Air Max", index.indexed[p.ID])

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Variants, 1)
	assert.True(t, got.Variants[0].UnitPrice(*got).Equal(money("510")))

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.Equal(t, []string{p.ID}, index.deleted)
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogValidation(t *testing.T) {
	svc := NewCatalogService(testutil.NewRepos(t), nil, "GHS")
	ctx := context.Background()

	_, err := svc.Create(ctx, ProductInput{Name: " "})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Create(ctx, ProductInput{Name: "X", Price: money("-1")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Create(ctx, ProductInput{Name: "X", Stock: -1})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.AddVariant(ctx, "missing", VariantInput{Size: "M"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogSearchFallsBackToDatabase(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	phone := testutil.Product(t, repos, "Galaxy Phone", "900")
	testutil.Product(t, repos, "Phone Case", "20")
	testutil.Product(t, repos, "Desk Lamp", "45")

	index := newFakeIndex()
	index.hits = []string{phone.ID, "stale-id"}
	svc := NewCatalogService(repos, index, "GHS")

	total, found, err := svc.Search(ctx, "galaxy", repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, found, 1)
	assert.Equal(t, phone.ID, found[0].ID)

	index.err = errors.New("cluster red")
	total, found, err = svc.Search(ctx, "phone", repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, found, 2)

	plain := NewCatalogService(repos, nil, "GHS")
	total, _, err = plain.Search(ctx, "LAMP", repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCatalogReindexAll(t *testing.T) {
	repos := testutil.NewRepos(t)
	testutil.Product(t, repos, "A", "1")
	testutil.Product(t, repos, "B", "2")

	index := newFakeIndex()
	n, err := NewCatalogService(repos, index, "GHS").ReindexAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, index.indexed, 2)

	n, err = NewCatalogService(repos, nil, "GHS").ReindexAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCatalogCartLine(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	svc := NewCatalogService(repos, nil, "GHS")
	p := testutil.Product(t, repos, "Tee", "25")
	v, err := svc.AddVariant(ctx, p.ID, VariantInput{Size: "L", Color: "Black", PriceAdjustment: money("2.50")})
	require.NoError(t, err)

	line, err := svc.CartLine(ctx, p.ID, "", 2)
	require.NoError(t, err)
	assert.Equal(t, "Tee", line.Name)
	assert.True(t, line.Price.Equal(money("25")))

	line, err = svc.CartLine(ctx, p.ID, v.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tee (L, Black)", line.Name)
	assert.True(t, line.Price.Equal(money("27.5")))
	assert.Equal(t, v.ID, line.VariantID)

	_, err = svc.CartLine(ctx, p.ID, "nope", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogCategories(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	svc := NewCatalogService(repos, nil, "GHS")

	c, err := svc.CreateCategory(ctx, CategoryInput{Name: "Home & Kitchen"})
	require.NoError(t, err)
	assert.Equal(t, "home-and-kitchen", c.Slug)

	_, err = svc.CreateCategory(ctx, CategoryInput{Name: "Home & Kitchen"})
	assert.ErrorIs(t, err, ErrConflict)

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	require.NoError(t, svc.DeleteCategory(ctx, c.ID))
}
