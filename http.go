package multiform

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
)

// DecodeRequest decodes an incoming multipart/form-data request body.
// It verifies the media type and boundary, then streams the body through
// Decode without ever buffering the whole request in memory.
//
//	form, err := multiform.DecodeRequest(r.Context(), r, multiform.Config{})
//	if err != nil {
//	    http.Error(w, err.Error(), multiform.StatusCode(err))
//	    return
//	}
//	defer form.Close()
func DecodeRequest(ctx context.Context, r *http.Request, cfg Config) (*Form, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: missing Content-Type", ErrNotMultipart)
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMultipart, err)
	}
	if mediaType != "multipart/form-data" {
		return nil, fmt.Errorf("%w: got %s", ErrNotMultipart, mediaType)
	}
	boundary, ok := params["boundary"]
	if !ok || boundary == "" {
		return nil, ErrMissingBoundary
	}

	return Decode(ctx, NewSource(multipart.NewReader(r.Body, boundary)), cfg)
}
