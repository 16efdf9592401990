package multiform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode/utf8"
)

// accumulateText streams one text part into memory under the text budget and
// decodes it as UTF-8 once the part ends. Invalid bytes fail the whole field;
// nothing is ever replaced or dropped.
func accumulateText(ctx context.Context, r io.Reader, name string, bdg *budget) (Text, error) {
	var acc bytes.Buffer
	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return Text{}, fmt.Errorf("%w: %v", ErrIncomplete, err)
		}
		n, readErr := r.Read(buf)
		if n > 0 {
			if err := bdg.reserveText(int64(n)); err != nil {
				return Text{}, err
			}
			acc.Write(buf[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return Text{}, fmt.Errorf("%w: %v", ErrIncomplete, readErr)
		}
	}

	data := acc.Bytes()
	if off, ok := invalidUTF8Offset(data); ok {
		return Text{}, &UTF8Error{Field: name, Offset: off}
	}
	return Text{Name: name, Value: string(data)}, nil
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence, if any.
func invalidUTF8Offset(b []byte) (int, bool) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i, true
		}
		i += size
	}
	return 0, false
}
