package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is a plain label on a project, not an enforced workflow. Any
// transition between the three values is allowed; new projects start
// as draft.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ParseStatus validates a user supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusDraft:
		return StatusDraft, nil
	case StatusPublished:
		return StatusPublished, nil
	case StatusArchived:
		return StatusArchived, nil
	}
	return "", fmt.Errorf("invalid status %q (want draft, published or archived)", s)
}

// Project is a single portfolio entry. Field names are an external
// contract: the web layer consumes them verbatim.
type Project struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Category         string       `json:"category"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"short_description"`
	Tags             []string     `json:"tags"`
	Images           []MediaAsset `json:"images"`
	Videos           []MediaAsset `json:"videos"`
	Featured         bool         `json:"featured"`
	Status           Status       `json:"status"`
	Order            int          `json:"order"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	out.Images = append([]MediaAsset(nil), p.Images...)
	out.Videos = append([]MediaAsset(nil), p.Videos...)
	return out
}

// NewProjectID builds an opaque project id from the current project
// count and a timestamp, matching the historical on-disk format.
func NewProjectID(count int, now time.Time) string {
	return fmt.Sprintf("project_%d_%d", count+1, now.Unix())
}

// ValidateTitle checks if a project title is usable.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 200 {
		return fmt.Errorf("title too long (max 200 characters)")
	}
	return nil
}
