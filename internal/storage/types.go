package storage

import (
	"errors"
	"time"
)

// AdminCredential is the single administrative credential record.
type AdminCredential struct {
	ID           int64
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Article is a blog/news entry shown on the public site.
type Article struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	ReadTime    string `json:"readTime"`
	FullContent string `json:"full_content"`
}

// Service is one entry of the services section.
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
	Color       string `json:"color"`
}

// GalleryItem is a before/after image pair.
type GalleryItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	BeforeImageURL string `json:"before_image_url"`
	AfterImageURL  string `json:"after_image_url"`
	SortOrder      int    `json:"sort_order"`
	IsActive       bool   `json:"is_active"`
}

// SlideText is one overlay line of an animated slide: a highlighted lead
// followed by detail text.
type SlideText struct {
	Highlight string `json:"highlight"`
	Detail    string `json:"detail"`
}

// Slide is one entry of the animated hero slider.
type Slide struct {
	ID        int64       `json:"id"`
	ImgURL    string      `json:"img_url"`
	Texts     []SlideText `json:"texts"`
	SortOrder int         `json:"sort_order"`
	IsActive  bool        `json:"is_active"`
}

// StickyItem is one entry of a sticky-scroll section. Description is an
// ordered list of paragraphs.
type StickyItem struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description []string `json:"description"`
	ImageURL    string   `json:"image_url"`
	SortOrder   int      `json:"sort_order"`
	IsActive    bool     `json:"is_active"`
}

// ValidateSlideTexts checks the structured texts of a slide before write.
// Each entry must carry a non-empty highlight; detail may be empty.
func ValidateSlideTexts(texts []SlideText) error {
	for _, t := range texts {
		if t.Highlight == "" {
			return errors.New("slide text entry is missing a highlight")
		}
	}
	return nil
}

// ValidateStickyDescription checks the paragraph list of a sticky item
// before write. The list must be non-empty and contain no empty paragraphs.
func ValidateStickyDescription(paragraphs []string) error {
	if len(paragraphs) == 0 {
		return errors.New("description must contain at least one paragraph")
	}
	for _, p := range paragraphs {
		if p == "" {
			return errors.New("description contains an empty paragraph")
		}
	}
	return nil
}
