package models

import "time"

type ContentType string

const (
	ContentTypeHero        ContentType = "hero"
	ContentTypeFeature     ContentType = "feature"
	ContentTypeTestimonial ContentType = "testimonial"
)

// Content is a storefront content block (hero banner, feature card,
// testimonial). Blocks of the same type are ranked by Order, and
// (type, order) is unique.
type Content struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Type        ContentType `gorm:"type:VARCHAR(20);index:idx_content_type_order,unique" json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Link        string      `json:"link"`
	Order       int         `gorm:"column:sort_order;index:idx_content_type_order,unique" json:"order"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ValidContentType reports whether t is one of the known content types.
func ValidContentType(t ContentType) bool {
	switch t {
	case ContentTypeHero, ContentTypeFeature, ContentTypeTestimonial:
		return true
	default:
		return false
	}
}
