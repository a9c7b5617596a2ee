package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProjectNotFound is returned when an id does not match any
	// project in the document.
	ErrProjectNotFound = errors.New("project not found")

	// ErrAssetNotFound is returned when a path does not match any
	// media asset owned by the addressed project.
	ErrAssetNotFound = errors.New("media asset not found")
)

// UnsupportedFormatError reports a file extension outside the allowed
// list for its declared kind.
type UnsupportedFormatError struct {
	Kind      MediaKind
	Extension string
	Allowed   []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported %s format %q (allowed: %s)",
		e.Kind, e.Extension, strings.Join(e.Allowed, ", "))
}

// FileTooLargeError reports a candidate exceeding the configured size
// limit. Both values are carried for user-facing messages.
type FileTooLargeError struct {
	SizeMB  float64
	LimitMB float64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %.2f MB (max %g MB)", e.SizeMB, e.LimitMB)
}

// CorruptStoreError marks an unreadable document file. It is fatal to
// the load: the store never papers over it with a fresh document.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt document store at %s: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }
