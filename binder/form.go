package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// Form creates a binder for application/x-www-form-urlencoded bodies. It is
// a thin pass-through over the standard library's form parsing plus the
// shared tag-driven field setter; the streaming multipart path lives in
// Bind.
//
// It supports struct tags for custom field names:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"` - skips the field
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value fields
//   - Pointers for optional fields
//
// Example:
//
//	type LoginRequest struct {
//		Username string   `form:"username"`
//		Password string   `form:"password"`
//		Remember bool     `form:"remember"`
//		Roles    []string `form:"roles"`
//	}
//
//	var req LoginRequest
//	if err := binder.Form()(r, &req); err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//		return
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", r.Form, ErrInvalidForm)
	}
}
