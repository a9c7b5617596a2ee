package services

import (
	"path/filepath"
	"strings"

	"folio/internal/core/domain"
)

const bytesPerMB = 1024 * 1024

// ValidateAsset checks a candidate file's extension and size against
// the document settings for its declared kind. Pure function of its
// inputs; no filesystem access.
func ValidateAsset(filename string, sizeBytes int64, kind domain.MediaKind, settings domain.Settings) error {
	allowed := settings.AllowedImageFormats
	if kind == domain.KindVideo {
		allowed = settings.AllowedVideoFormats
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !containsFold(allowed, ext) {
		return &domain.UnsupportedFormatError{
			Kind:      kind,
			Extension: ext,
			Allowed:   allowed,
		}
	}

	sizeMB := float64(sizeBytes) / bytesPerMB
	if sizeMB > settings.MaxFileSizeMB {
		return &domain.FileTooLargeError{
			SizeMB:  sizeMB,
			LimitMB: settings.MaxFileSizeMB,
		}
	}

	return nil
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
