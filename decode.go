package multiform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/textproto"

	"github.com/dmitrymomot/multiform/async"
)

// classification is the classifier's verdict on one part.
type classification struct {
	name     string
	filename string
	mimeType string
	isFile   bool
}

// classify inspects a part's headers and decides whether the part is a text
// field or a file upload.
//
// Per RFC 7578 section 4.4 an absent Content-Type means text/plain; only an
// explicit non-text/plain type or the presence of a filename makes the part
// a file. Relying on the transport's octet-stream fallback would silently
// turn ordinary text fields into uploads.
func classify(h textproto.MIMEHeader) (classification, error) {
	cd := h.Get("Content-Disposition")
	if cd == "" {
		return classification{}, fmt.Errorf("%w: missing Content-Disposition", ErrHeader)
	}
	disposition, params, err := mime.ParseMediaType(cd)
	if err != nil {
		return classification{}, fmt.Errorf("%w: %v", ErrHeader, err)
	}
	if disposition != "form-data" {
		return classification{}, fmt.Errorf("%w: disposition %q is not form-data", ErrHeader, disposition)
	}
	name, ok := params["name"]
	if !ok || name == "" {
		return classification{}, fmt.Errorf("%w: part has no field name", ErrHeader)
	}
	filename, hasFilename := params["filename"]

	mimeType := "text/plain"
	if ct := h.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return classification{}, fmt.Errorf("%w: %v", ErrHeader, err)
		}
		mimeType = mediaType
	}

	return classification{
		name:     name,
		filename: filename,
		mimeType: mimeType,
		isFile:   mimeType != "text/plain" || hasFilename,
	}, nil
}

// Decode consumes the part source and returns the fully materialized form.
//
// Parts are processed strictly in wire order, one at a time: each part is
// classified, then either accumulated in memory (text) or written to a temp
// file (file), with the configured budgets checked before every chunk is
// accepted. The first structural, budget, or transport error aborts the
// whole decode; temp files created so far are removed and no partial form is
// returned. Cancellation of ctx (for example a client disconnect observed by
// the transport) aborts the same way with ErrIncomplete.
//
// On success the caller owns the form and must Close it once finished; Close
// removes any file fields that were never extracted.
func Decode(ctx context.Context, src Source, cfg Config) (*Form, error) {
	cfg = cfg.withDefaults()
	bdg := newBudget(cfg)
	pool := async.NewPool(cfg.WriteWorkers)
	form := &Form{}

	fail := func(err error) (*Form, error) {
		_ = form.Close()
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrIncomplete, err))
		}
		part, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(fmt.Errorf("%w: %v", ErrIncomplete, err))
		}

		if err := bdg.admitPart(); err != nil {
			return fail(err)
		}
		cls, err := classify(part.Header())
		if err != nil {
			return fail(err)
		}

		var field Field
		if cls.isFile {
			file, err := materializeFile(ctx, pool, part, cls, bdg, cfg.TempDir)
			if err != nil {
				return fail(err)
			}
			cfg.Logger.DebugContext(ctx, "materialized file part",
				"field", cls.name, "filename", cls.filename, "mime_type", cls.mimeType, "size", file.Size)
			field = file
		} else {
			text, err := accumulateText(ctx, part, cls.name, bdg)
			if err != nil {
				return fail(err)
			}
			cfg.Logger.DebugContext(ctx, "accumulated text part",
				"field", cls.name, "size", len(text.Value))
			field = text
		}
		form.fields = append(form.fields, field)
	}

	return form, nil
}
