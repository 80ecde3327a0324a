package models

import (
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Category struct {
	Model
	Name     string  `json:"name" gorm:"not null"`
	Slug     string  `json:"slug" gorm:"uniqueIndex;size:120"`
	ParentID *string `json:"parent_id" gorm:"size:36"`
	ImageURL string  `json:"image_url"`
}

// BeforeSave trims the name and derives the slug when none was given.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return nil
}
