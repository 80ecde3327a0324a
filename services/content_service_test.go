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

func TestHeroSlidesSaveAndOrder(t *testing.T) {
	repos := testutil.NewRepos(t)
	ctx := context.Background()
	svc := NewContentService(repos)

	_, err := svc.SaveHeroSlide(ctx, "", models.HeroSlide{Title: "No image"})
	assert.ErrorIs(t, err, ErrValidation)

	second, err := svc.SaveHeroSlide(ctx, "", models.HeroSlide{ImageURL: "https://cdn.example.com/2.jpg", SortOrder: 2})
	require.NoError(t, err)
	first, err := svc.SaveHeroSlide(ctx, "", models.HeroSlide{ImageURL: "https://cdn.example.com/1.jpg", SortOrder: 1})
	require.NoError(t, err)

	slides, err := svc.HeroSlides(ctx)
	require.NoError(t, err)
	require.Len(t, slides, 2)
	assert.Equal(t, first.ID, slides[0].ID)

	updated, err := svc.SaveHeroSlide(ctx, second.ID, models.HeroSlide{ImageURL: "https://cdn.example.com/2b.jpg", Title: "Sale"})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.ID)
	assert.Equal(t, "Sale", updated.Title)

	_, err = svc.SaveHeroSlide(ctx, "missing", models.HeroSlide{ImageURL: "https://x.example.com"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteHeroSlide(ctx, first.ID))
}

func TestFAQs(t *testing.T) {
	svc := NewContentService(testutil.NewRepos(t))
	ctx := context.Background()

	_, err := svc.SaveFAQ(ctx, "", models.FAQ{Question: "How long is shipping?"})
	assert.ErrorIs(t, err, ErrValidation)

	faq, err := svc.SaveFAQ(ctx, "", models.FAQ{Question: "How long is shipping?", Answer: "Two weeks by air."})
	require.NoError(t, err)

	faqs, err := svc.FAQs(ctx)
	require.NoError(t, err)
	require.Len(t, faqs, 1)
	assert.Equal(t, faq.ID, faqs[0].ID)
	require.NoError(t, svc.DeleteFAQ(ctx, faq.ID))
}

func TestSitePagesUpsert(t *testing.T) {
	svc := NewContentService(testutil.NewRepos(t))
	ctx := context.Background()

	_, err := svc.SitePage(ctx, "about")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.SitePage(ctx, "secret")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SaveSitePage(ctx, "about", models.SitePage{Title: "About us", Content: "v1"})
	require.NoError(t, err)
	page, err := svc.SaveSitePage(ctx, "about", models.SitePage{Title: "About 233Plug", Content: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "About 233Plug", page.Title)
	assert.Equal(t, "v2", page.Content)

	pages, err := svc.SitePages(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 1)

	_, err = svc.SaveSitePage(ctx, "blog", models.SitePage{Title: "Blog"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitContact(t *testing.T) {
	svc := NewContentService(testutil.NewRepos(t))
	ctx := context.Background()

	sub, err := svc.SubmitContact(ctx, models.ContactSubmission{Name: " Ama ", Email: "ama@example.com", Message: " Where is my order? "})
	require.NoError(t, err)
	assert.Equal(t, "Ama", sub.Name)
	assert.Equal(t, "Where is my order?", sub.Message)

	_, err = svc.SubmitContact(ctx, models.ContactSubmission{Name: "Ama", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.SubmitContact(ctx, models.ContactSubmission{Name: "", Email: "ama@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrValidation)

	total, subs, err := svc.ContactSubmissions(ctx, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, subs, 1)
}
