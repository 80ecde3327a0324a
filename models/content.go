package models

type HeroSlide struct {
	Model
	ImageURL  string `json:"image_url" gorm:"not null"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Link      string `json:"link"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

type FAQ struct {
	Model
	Question  string `json:"question" gorm:"not null"`
	Answer    string `json:"answer" gorm:"not null"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

// SitePageSlugs are the editable static pages.
var SitePageSlugs = []string{"about", "terms", "contact", "faq"}

// ValidSitePageSlug reports whether slug is one of SitePageSlugs.
func ValidSitePageSlug(slug string) bool {
	for _, s := range SitePageSlugs {
		if s == slug {
			return true
		}
	}
	return false
}

type SitePage struct {
	Model
	Slug         string `json:"slug" gorm:"uniqueIndex;size:32;not null"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Whatsapp     string `json:"whatsapp"`
}

type ContactSubmission struct {
	Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"not null"`
}
