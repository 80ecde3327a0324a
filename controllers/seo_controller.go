package controllers

import (
	"encoding/xml"
	"net/http"
	"strconv"

	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	XMLNS   string    `xml:"xmlns,attr"`
	URLs    []siteURL `xml:"url"`
}

type siteURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

func sitemapXML(entries []services.SitemapEntry) ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		set.URLs = append(set.URLs, siteURL{
			Loc:        e.Loc,
			LastMod:    e.LastMod.UTC().Format("2006-01-02"),
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// Sitemap handles GET /sitemap.xml
func (h *Controller) Sitemap(c *gin.Context) {
	entries, err := h.SEO.Sitemap(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to build sitemap: %v", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	body, err := sitemapXML(entries)
	if err != nil {
		utils.LogError("Failed to encode sitemap: %v", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots handles GET /robots.txt
func (h *Controller) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.SEO.Robots())
}
