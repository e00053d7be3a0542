package models

import "time"

// ResourceType discriminates documents from videos.
type ResourceType string

const (
	ResourceDocument ResourceType = "DOCUMENT"
	ResourceVideo    ResourceType = "VIDEO"
)

// Resource is owned and mutated exclusively by the upstream API; the gateway
// reads and displays it, or submits new instances via the upload proxy.
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url"`
	Downloads   int          `json:"downloads"`
	Category    string       `json:"category,omitempty"`
	Department  string       `json:"department,omitempty"`
	Level       string       `json:"level,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	UploaderID  string       `json:"uploaderId,omitempty"`
	Uploader    *User        `json:"uploader,omitempty"`
}

// ResourceSort values accepted by the upstream list endpoint.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
)
