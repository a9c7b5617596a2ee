package services

import (
	"errors"
	"testing"

	"folio/internal/core/domain"
)

func TestValidateAsset(t *testing.T) {
	settings := domain.Settings{
		AutoGenerateThumbnails: true,
		MaxFileSizeMB:          1,
		AllowedImageFormats:    []string{"png"},
		AllowedVideoFormats:    []string{"mp4"},
	}

	tests := []struct {
		name      string
		filename  string
		sizeBytes int64
		kind      domain.MediaKind
		wantErr   string // "", "format", "size"
	}{
		{
			name:      "valid image under the limit",
			filename:  "photo.png",
			sizeBytes: 512 * 1024,
			kind:      domain.KindImage,
			wantErr:   "",
		},
		{
			name:      "image over the size limit",
			filename:  "photo.png",
			sizeBytes: 2 * 1024 * 1024,
			kind:      domain.KindImage,
			wantErr:   "size",
		},
		{
			name:      "image with disallowed extension",
			filename:  "photo.jpg",
			sizeBytes: 512 * 1024,
			kind:      domain.KindImage,
			wantErr:   "format",
		},
		{
			name:      "extension check is case insensitive",
			filename:  "photo.PNG",
			sizeBytes: 512 * 1024,
			kind:      domain.KindImage,
			wantErr:   "",
		},
		{
			name:      "exactly at the limit passes",
			filename:  "photo.png",
			sizeBytes: 1024 * 1024,
			kind:      domain.KindImage,
			wantErr:   "",
		},
		{
			name:      "valid video",
			filename:  "clip.mp4",
			sizeBytes: 512 * 1024,
			kind:      domain.KindVideo,
			wantErr:   "",
		},
		{
			name:      "image extension checked against video list for video kind",
			filename:  "clip.png",
			sizeBytes: 512 * 1024,
			kind:      domain.KindVideo,
			wantErr:   "format",
		},
		{
			name:      "no extension at all",
			filename:  "photo",
			sizeBytes: 512 * 1024,
			kind:      domain.KindImage,
			wantErr:   "format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAsset(tt.filename, tt.sizeBytes, tt.kind, settings)

			switch tt.wantErr {
			case "":
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
			case "format":
				var formatErr *domain.UnsupportedFormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("expected UnsupportedFormatError, got %v", err)
				}
				if formatErr.Kind != tt.kind {
					t.Errorf("error kind = %v, want %v", formatErr.Kind, tt.kind)
				}
			case "size":
				var sizeErr *domain.FileTooLargeError
				if !errors.As(err, &sizeErr) {
					t.Fatalf("expected FileTooLargeError, got %v", err)
				}
				if sizeErr.LimitMB != settings.MaxFileSizeMB {
					t.Errorf("error limit = %g, want %g", sizeErr.LimitMB, settings.MaxFileSizeMB)
				}
			}
		})
	}
}

func TestValidateAssetFormatBeforeSize(t *testing.T) {
	// A file that is both too large and the wrong format reports the
	// format problem.
	settings := domain.Settings{
		MaxFileSizeMB:       1,
		AllowedImageFormats: []string{"png"},
	}

	err := ValidateAsset("huge.bmp", 10*1024*1024, domain.KindImage, settings)

	var formatErr *domain.UnsupportedFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
}
