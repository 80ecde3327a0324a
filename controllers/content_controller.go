package controllers

import (
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

// ListHeroSlides handles GET /v1/content/hero
func (h *Controller) ListHeroSlides(c *gin.Context) {
	slides, err := h.Content.HeroSlides(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch hero slides")
		return
	}
	utils.Success(c, "Hero slides retrieved successfully", slides)
}

// SaveHeroSlide handles POST /v1/admin/hero and PUT /v1/admin/hero/:id
func (h *Controller) SaveHeroSlide(c *gin.Context) {
	var in models.HeroSlide
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	slide, err := h.Content.SaveHeroSlide(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to save hero slide")
		return
	}
	utils.Success(c, "Hero slide saved", slide)
}

func (h *Controller) DeleteHeroSlide(c *gin.Context) {
	if err := h.Content.DeleteHeroSlide(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete hero slide")
		return
	}
	utils.Success(c, "Hero slide deleted", nil)
}

// ListFAQs handles GET /v1/content/faqs
func (h *Controller) ListFAQs(c *gin.Context) {
	faqs, err := h.Content.FAQs(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch FAQs")
		return
	}
	utils.Success(c, "FAQs retrieved successfully", faqs)
}

// SaveFAQ handles POST /v1/admin/faqs and PUT /v1/admin/faqs/:id
func (h *Controller) SaveFAQ(c *gin.Context) {
	var in models.FAQ
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	faq, err := h.Content.SaveFAQ(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to save FAQ")
		return
	}
	utils.Success(c, "FAQ saved", faq)
}

func (h *Controller) DeleteFAQ(c *gin.Context) {
	if err := h.Content.DeleteFAQ(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete FAQ")
		return
	}
	utils.Success(c, "FAQ deleted", nil)
}

// GetSitePage handles GET /v1/content/pages/:slug
func (h *Controller) GetSitePage(c *gin.Context) {
	page, err := h.Content.SitePage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to fetch page")
		return
	}
	utils.Success(c, "Page retrieved successfully", page)
}

// ListSitePages handles GET /v1/admin/pages
func (h *Controller) ListSitePages(c *gin.Context) {
	pages, err := h.Content.SitePages(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch pages")
		return
	}
	utils.Success(c, "Pages retrieved successfully", gin.H{
		"pages": pages,
		"slugs": models.SitePageSlugs,
	})
}

// SaveSitePage handles PUT /v1/admin/pages/:slug
func (h *Controller) SaveSitePage(c *gin.Context) {
	var in models.SitePage
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	page, err := h.Content.SaveSitePage(c.Request.Context(), c.Param("slug"), in)
	if err != nil {
		respondError(c, err, "Failed to save page")
		return
	}
	utils.Success(c, "Page saved", page)
}

// SubmitContact handles POST /v1/contact
func (h *Controller) SubmitContact(c *gin.Context) {
	var in models.ContactSubmission
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	sub, err := h.Content.SubmitContact(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	utils.Created(c, "Message received", gin.H{"id": sub.ID})
}

// ListContactSubmissions handles GET /v1/admin/contacts
func (h *Controller) ListContactSubmissions(c *gin.Context) {
	pagination := utils.NewPagination(c)
	total, subs, err := h.Content.ContactSubmissions(c.Request.Context(), pageOf(pagination))
	if err != nil {
		respondError(c, err, "Failed to fetch contact submissions")
		return
	}
	pagination.SetTotal(total)
	utils.SendPaginatedResponse(c, "Contact submissions retrieved successfully", subs, pagination)
}
