package model

import "time"

// Setup represents a published workstation loadout: the single record type
// managed by this API.
type Setup struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Setup field constraints.
const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 2000
	MaxCategoryLength    = 60
	MaxTagsPerSetup      = 12
)

// CreateSetupRequest is the "setup" object of a POST /setups body.
// Owner is accepted so that permissive clients don't trip strict decoding,
// but it is always discarded: ownership is bound server-side from the
// authenticated identity.
type CreateSetupRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Owner       string   `json:"owner,omitempty"`
}
