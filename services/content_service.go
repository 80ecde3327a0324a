package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/utils"
)

// ContentService manages the marketing content: hero slides, FAQs, static
// pages and the contact form inbox.
type ContentService struct {
	repos *repository.Repositories
}

func NewContentService(repos *repository.Repositories) *ContentService {
	return &ContentService{repos: repos}
}

func (s *ContentService) HeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	return s.repos.Content.HeroSlides(ctx)
}

func (s *ContentService) SaveHeroSlide(ctx context.Context, id string, in models.HeroSlide) (*models.HeroSlide, error) {
	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, fmt.Errorf("%w: image_url is required", ErrValidation)
	}
	slide := &models.HeroSlide{}
	if id != "" {
		existing, err := s.repos.Content.GetHeroSlide(ctx, id)
		if err != nil {
			return nil, err
		}
		slide = existing
	}
	slide.ImageURL = strings.TrimSpace(in.ImageURL)
	slide.Title = in.Title
	slide.Subtitle = in.Subtitle
	slide.Link = in.Link
	slide.SortOrder = in.SortOrder
	if err := s.repos.Content.SaveHeroSlide(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *ContentService) DeleteHeroSlide(ctx context.Context, id string) error {
	return s.repos.Content.DeleteHeroSlide(ctx, id)
}

func (s *ContentService) FAQs(ctx context.Context) ([]models.FAQ, error) {
	return s.repos.Content.FAQs(ctx)
}

func (s *ContentService) SaveFAQ(ctx context.Context, id string, in models.FAQ) (*models.FAQ, error) {
	if strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Answer) == "" {
		return nil, fmt.Errorf("%w: question and answer are required", ErrValidation)
	}
	faq := &models.FAQ{}
	if id != "" {
		existing, err := s.repos.Content.GetFAQ(ctx, id)
		if err != nil {
			return nil, err
		}
		faq = existing
	}
	faq.Question = strings.TrimSpace(in.Question)
	faq.Answer = strings.TrimSpace(in.Answer)
	faq.SortOrder = in.SortOrder
	if err := s.repos.Content.SaveFAQ(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *ContentService) DeleteFAQ(ctx context.Context, id string) error {
	return s.repos.Content.DeleteFAQ(ctx, id)
}

func (s *ContentService) SitePages(ctx context.Context) ([]models.SitePage, error) {
	return s.repos.Content.SitePages(ctx)
}

func (s *ContentService) SitePage(ctx context.Context, slug string) (*models.SitePage, error) {
	if !models.ValidSitePageSlug(slug) {
		return nil, ErrNotFound
	}
	return s.repos.Content.SitePage(ctx, slug)
}

// SaveSitePage creates or replaces the page for slug.
func (s *ContentService) SaveSitePage(ctx context.Context, slug string, in models.SitePage) (*models.SitePage, error) {
	if !models.ValidSitePageSlug(slug) {
		return nil, fmt.Errorf("%w: unknown page %q", ErrValidation, slug)
	}
	page := &models.SitePage{
		Slug:         slug,
		Title:        strings.TrimSpace(in.Title),
		Content:      in.Content,
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		Whatsapp:     strings.TrimSpace(in.Whatsapp),
	}
	if err := s.repos.Content.UpsertSitePage(ctx, page); err != nil {
		return nil, err
	}
	return s.repos.Content.SitePage(ctx, slug)
}

// SubmitContact stores a message from the public contact form.
func (s *ContentService) SubmitContact(ctx context.Context, in models.ContactSubmission) (*models.ContactSubmission, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" || in.Message == "" {
		return nil, fmt.Errorf("%w: name and message are required", ErrValidation)
	}
	if ok, msg := utils.ValidateEmail(in.Email); !ok {
		return nil, fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	sub := &models.ContactSubmission{Name: in.Name, Email: in.Email, Subject: strings.TrimSpace(in.Subject), Message: in.Message}
	if err := s.repos.Content.CreateContactSubmission(ctx, sub); err != nil {
		return nil, err
	}
	utils.LogInfo("Contact submission %s from %s", sub.ID, sub.Email)
	return sub, nil
}

func (s *ContentService) ContactSubmissions(ctx context.Context, page repository.Page) (int64, []models.ContactSubmission, error) {
	return s.repos.Content.ContactSubmissions(ctx, page)
}
