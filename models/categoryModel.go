package models

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;size:191"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Slug        string `json:"slug" gorm:"index;size:191"`
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a category name into its URL slug, e.g. "Sofas & Couches" -> "sofas-couches".
func Slugify(name string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
