package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/Plug233/repository"
)

// SitemapEntry is one <url> of the sitemap.
type SitemapEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// DisallowedPaths are kept out of search engines.
var DisallowedPaths = []string{"/admin", "/dashboard", "/checkout"}

type SEOService struct {
	repos   *repository.Repositories
	baseURL string
	now     func() time.Time
}

func NewSEOService(repos *repository.Repositories, baseURL string) *SEOService {
	if baseURL == "" {
		baseURL = "https://233plug.com"
	}
	return &SEOService{repos: repos, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// Sitemap lists the static pages followed by every product page.
func (s *SEOService) Sitemap(ctx context.Context) ([]SitemapEntry, error) {
	now := s.now()
	entries := []SitemapEntry{
		{Loc: s.baseURL, LastMod: now, ChangeFreq: "daily", Priority: 1},
		{Loc: s.baseURL + "/shop", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
		{Loc: s.baseURL + "/request", LastMod: now, ChangeFreq: "weekly", Priority: 0.8},
		{Loc: s.baseURL + "/cart", LastMod: now, ChangeFreq: "weekly", Priority: 0.7},
	}
	stamps, err := s.repos.Products.Stamps(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range stamps {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/shop/%s", s.baseURL, p.ID),
			LastMod:    p.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.6,
		})
	}
	return entries, nil
}

// Robots renders robots.txt.
func (s *SEOService) Robots() string {
	var b strings.Builder
	b.WriteString("User-Agent: *\nAllow: /\n")
	for _, p := range DisallowedPaths {
		b.WriteString("Disallow: " + p + "\n")
	}
	b.WriteString("\nSitemap: " + s.baseURL + "/sitemap.xml\n")
	return b.String()
}
