package binder

import (
	"net/http"
)

// Query creates a binder for URL query parameters, a pass-through over
// net/url parsing plus the shared tag-driven field setter.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value parameters (?tags=a&tags=b or ?tags=a,b)
//   - Pointers for optional fields
//
// Example:
//
//	type SearchRequest struct {
//		Query    string   `query:"q"`
//		Page     int      `query:"page"`
//		Tags     []string `query:"tags"`
//		Active   *bool    `query:"active"`
//	}
//
//	var req SearchRequest
//	if err := binder.Query()(r, &req); err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//		return
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
