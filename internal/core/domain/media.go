package domain

import (
	"fmt"
	"strings"
	"time"
)

// MediaKind is the closed set of media variants the store manages.
type MediaKind int

const (
	KindImage MediaKind = iota
	KindVideo
)

func (k MediaKind) String() string {
	if k == KindVideo {
		return "video"
	}
	return "image"
}

// ParseMediaKind converts a user supplied kind string.
func ParseMediaKind(s string) (MediaKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image", "img":
		return KindImage, nil
	case "video", "vid":
		return KindVideo, nil
	}
	return KindImage, fmt.Errorf("invalid media kind %q (want image or video)", s)
}

// MediaAsset describes one file under managed storage. An asset is
// owned by exactly one project and never shared. Path and
// ThumbnailPath are relative to the vault root.
type MediaAsset struct {
	Filename      string    `json:"filename"`
	Path          string    `json:"path"`
	ThumbnailPath string    `json:"thumbnail_path,omitempty"`
	SizeMB        float64   `json:"size_mb"`
	UploadedAt    time.Time `json:"uploaded_at"`
}
