package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents one entry in the portfolio gallery.
// ImageURL and ImageKey always travel together: the URL is where the
// image is served from, the key is what the asset store needs to
// delete the underlying object. A project is never persisted with one
// and not the other.
type Project struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	ImageKey  string    `json:"image_key" db:"image_key"`
	Date      time.Time `json:"date" db:"date"`
	Link      *string   `json:"link,omitempty" db:"link"`
	Category  *string   `json:"category,omitempty" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Categories is the closed set of allowed project categories.
var Categories = []string{"websites", "video-editing", "graphic-design", "branding"}

// ValidCategory reports whether c is one of the allowed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NewProject carries the fields for an insert. Image fields are
// required; Date should already be resolved by the caller.
type NewProject struct {
	Title    string
	ImageURL string
	ImageKey string
	Date     time.Time
	Link     *string
	Category *string
}

// ProjectUpdate carries a partial update. Nil means "leave unchanged".
// UnsetLink removes the link entirely: an empty string submitted by
// the client means unset, never a stored empty value.
type ProjectUpdate struct {
	Title     *string
	ImageURL  *string
	ImageKey  *string
	Date      *time.Time
	Link      *string
	UnsetLink bool
	Category  *string
}
