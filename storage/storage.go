package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/multiform"
)

// Object describes a stored upload.
type Object struct {
	// Filename is the sanitized client-reported filename, "unnamed" when the
	// client sent none.
	Filename string

	// Size is the stored payload size in bytes.
	Size int64

	// MIMEType is the media type declared on the original part.
	MIMEType string

	// Path is the backend-relative location of the object.
	Path string
}

// Storage is a backend for extracted uploads.
type Storage interface {
	// Save streams the upload into the backend at the given path. On
	// success the upload's temp file is closed and removed; the upload must
	// not be used afterwards.
	Save(ctx context.Context, f *multiform.File, path string) (*Object, error)

	// Delete removes a single stored object.
	Delete(ctx context.Context, path string) error

	// Exists reports whether an object exists at the path.
	Exists(ctx context.Context, path string) bool

	// URL returns the public URL for a stored object.
	URL(path string) string
}

// SanitizeFilename removes any path components and dangerous characters from
// a filename to prevent path traversal and related issues. Returns "unnamed"
// for empty or special directory references.
//
//	safe := storage.SanitizeFilename("../../../etc/passwd") // "passwd"
//	safe = storage.SanitizeFilename("C:\\Windows\\file.txt") // "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// GenerateKey builds a collision-free object path from an optional prefix
// and the client filename, keeping the original extension:
// "<prefix>/<uuid><ext>".
func GenerateKey(prefix, filename string) string {
	ext := filepath.Ext(SanitizeFilename(filename))
	name := uuid.NewString() + ext
	if prefix == "" {
		return name
	}
	return strings.TrimSuffix(prefix, "/") + "/" + name
}
