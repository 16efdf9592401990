package multiform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/multiform/async"
)

// chunkSize is how much of a part is read from the transport at a time.
const chunkSize = 32 << 10

// materializeFile streams one file part into a freshly created temp file.
//
// Each chunk is reserved against the file budget before it is durably
// stored. The disk write is dispatched to the pool so the next chunk can be
// read from the transport while the previous write is in flight; at most one
// write per file is outstanding, so the temp file has a single logical
// writer. Any failure closes and removes the temp file.
func materializeFile(ctx context.Context, pool *async.Pool, r io.Reader, cls classification, bdg *budget, dir string) (*File, error) {
	tmp, err := os.CreateTemp(dir, "multiform-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp file: %v", ErrIO, err)
	}

	discard := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}

	var (
		written int64
		pending *async.Future[int]
	)
	awaitWrite := func() error {
		if pending == nil {
			return nil
		}
		_, err := pending.Await()
		pending = nil
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%w: %v", ErrIncomplete, err)
			}
			return fmt.Errorf("%w: write temp file: %v", ErrIO, err)
		}
		return nil
	}

	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			_ = awaitWrite()
			discard()
			return nil, fmt.Errorf("%w: %v", ErrIncomplete, err)
		}

		n, readErr := r.Read(buf)
		if n > 0 {
			if err := bdg.reserveFile(int64(n)); err != nil {
				_ = awaitWrite()
				discard()
				return nil, err
			}
			if err := awaitWrite(); err != nil {
				discard()
				return nil, err
			}
			// The read buffer is reused while the write is in flight.
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			pending = async.Run(ctx, pool, chunk, func(_ context.Context, p []byte) (int, error) {
				return tmp.Write(p)
			})
			written += int64(n)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = awaitWrite()
			discard()
			return nil, fmt.Errorf("%w: %v", ErrIncomplete, readErr)
		}
	}

	if err := awaitWrite(); err != nil {
		discard()
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		discard()
		return nil, fmt.Errorf("%w: rewind temp file: %v", ErrIO, err)
	}

	return &File{
		Name:     cls.name,
		Filename: cls.filename,
		MIMEType: cls.mimeType,
		Size:     written,
		tmp:      tmp,
	}, nil
}
