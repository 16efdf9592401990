package multiform_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/multiform"
)

// buildBody writes a multipart body and returns it with its boundary.
func buildBody(t *testing.T, build func(w *multipart.Writer)) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	build(w)
	require.NoError(t, w.Close())
	return &buf, w.Boundary()
}

func decodeBody(t *testing.T, cfg multiform.Config, build func(w *multipart.Writer)) (*multiform.Form, error) {
	t.Helper()
	buf, boundary := buildBody(t, build)
	src := multiform.NewSource(multipart.NewReader(buf, boundary))
	return multiform.Decode(context.Background(), src, cfg)
}

func writeFilePart(t *testing.T, w *multipart.Writer, field, filename, content string) {
	t.Helper()
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.Copy(fw, strings.NewReader(content))
	require.NoError(t, err)
}

func TestDecode(t *testing.T) {
	t.Run("decodes text and file parts", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("string", "Hello World"))
			require.NoError(t, w.WriteField("int", "69"))
			writeFilePart(t, w, "file", "a.txt", "File contents")
		})
		require.NoError(t, err)
		defer form.Close()

		assert.Equal(t, 3, form.Len())

		str, err := multiform.Get[string](form, "string")
		require.NoError(t, err)
		assert.Equal(t, "Hello World", str)

		n, err := multiform.Get[int64](form, "int")
		require.NoError(t, err)
		assert.Equal(t, int64(69), n)

		file, err := multiform.GetFile(form, "file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "a.txt", file.Filename)
		assert.Equal(t, int64(13), file.Size)
		assert.Equal(t, "application/octet-stream", file.MIMEType)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "File contents", string(content))
	})

	t.Run("preserves wire order", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("b", "2"))
			require.NoError(t, w.WriteField("a", "1"))
			writeFilePart(t, w, "c", "c.bin", "x")
			require.NoError(t, w.WriteField("a", "3"))
		})
		require.NoError(t, err)
		defer form.Close()

		var names []string
		for _, fd := range form.Fields() {
			names = append(names, fd.FieldName())
		}
		assert.Equal(t, []string{"b", "a", "c", "a"}, names)
	})

	t.Run("part without content type is text", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			// CreateFormField writes no Content-Type header at all.
			fw, err := w.CreateFormField("plain")
			require.NoError(t, err)
			_, err = fw.Write([]byte("value"))
			require.NoError(t, err)
		})
		require.NoError(t, err)
		defer form.Close()

		v, err := multiform.Get[string](form, "plain")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("octet-stream without filename is a file", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			h := textproto.MIMEHeader{}
			h.Set("Content-Disposition", `form-data; name="blob"`)
			h.Set("Content-Type", "application/octet-stream")
			fw, err := w.CreatePart(h)
			require.NoError(t, err)
			_, err = fw.Write([]byte("binary"))
			require.NoError(t, err)
		})
		require.NoError(t, err)
		defer form.Close()

		file, err := multiform.GetFile(form, "blob")
		require.NoError(t, err)
		defer file.Close()

		assert.Empty(t, file.Filename)
		assert.Equal(t, "application/octet-stream", file.MIMEType)
		assert.Equal(t, int64(6), file.Size)
	})

	t.Run("empty file part", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			writeFilePart(t, w, "empty", "empty.bin", "")
		})
		require.NoError(t, err)
		defer form.Close()

		file, err := multiform.GetFile(form, "empty")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, int64(0), file.Size)
	})

	t.Run("large file part spans multiple chunks", func(t *testing.T) {
		payload := strings.Repeat("q", 64<<10)
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			writeFilePart(t, w, "big", "big.bin", payload)
		})
		require.NoError(t, err)
		defer form.Close()

		file, err := multiform.GetFile(form, "big")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, int64(64<<10), file.Size)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, payload, string(content))
	})
}

func TestDecodeBudgets(t *testing.T) {
	t.Run("file budget exceeded", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{FileLimit: 2}, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("string", "Hello World"))
			writeFilePart(t, w, "file", "a.txt", "File contents")
		})
		require.Error(t, err)
		assert.Nil(t, form)

		var budgetErr *multiform.BudgetError
		require.ErrorAs(t, err, &budgetErr)
		assert.Equal(t, multiform.BudgetFile, budgetErr.Kind)
		assert.Equal(t, int64(2), budgetErr.Limit)
		assert.Equal(t, 413, multiform.StatusCode(err))
	})

	t.Run("file budget crossed mid part", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{FileLimit: 40 << 10}, func(w *multipart.Writer) {
			writeFilePart(t, w, "big", "big.bin", strings.Repeat("q", 64<<10))
		})
		require.Error(t, err)
		assert.Nil(t, form)

		var budgetErr *multiform.BudgetError
		require.ErrorAs(t, err, &budgetErr)
		assert.Equal(t, multiform.BudgetFile, budgetErr.Kind)
	})

	t.Run("text budget exceeded", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{TextLimit: 4}, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("long", "way past four bytes"))
		})
		require.Error(t, err)
		assert.Nil(t, form)

		var budgetErr *multiform.BudgetError
		require.ErrorAs(t, err, &budgetErr)
		assert.Equal(t, multiform.BudgetText, budgetErr.Kind)
	})

	t.Run("text budget is cumulative across parts", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{TextLimit: 10}, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("a", "123456"))
			require.NoError(t, w.WriteField("b", "123456"))
		})
		require.Error(t, err)
		assert.Nil(t, form)

		var budgetErr *multiform.BudgetError
		require.ErrorAs(t, err, &budgetErr)
		assert.Equal(t, multiform.BudgetText, budgetErr.Kind)
	})

	t.Run("exactly max parts succeeds", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{MaxParts: 3}, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("a", "1"))
			require.NoError(t, w.WriteField("b", "2"))
			require.NoError(t, w.WriteField("c", "3"))
		})
		require.NoError(t, err)
		defer form.Close()
		assert.Equal(t, 3, form.Len())
	})

	t.Run("one part over the maximum fails", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{MaxParts: 3}, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("a", "1"))
			require.NoError(t, w.WriteField("b", "2"))
			require.NoError(t, w.WriteField("c", "3"))
			require.NoError(t, w.WriteField("d", "4"))
		})
		require.ErrorIs(t, err, multiform.ErrTooManyParts)
		assert.Nil(t, form)
		assert.Equal(t, 413, multiform.StatusCode(err))
	})
}

func TestDecodeErrors(t *testing.T) {
	t.Run("invalid utf8 in text part", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			h := textproto.MIMEHeader{}
			h.Set("Content-Disposition", `form-data; name="t"`)
			fw, err := w.CreatePart(h)
			require.NoError(t, err)
			_, err = fw.Write([]byte{'H', 0xff, 'i'})
			require.NoError(t, err)
		})
		require.Error(t, err)
		assert.Nil(t, form)

		var utf8Err *multiform.UTF8Error
		require.ErrorAs(t, err, &utf8Err)
		assert.Equal(t, "t", utf8Err.Field)
		assert.Equal(t, 1, utf8Err.Offset)
		assert.Equal(t, 400, multiform.StatusCode(err))
	})

	t.Run("part without field name", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			h := textproto.MIMEHeader{}
			h.Set("Content-Disposition", "form-data")
			fw, err := w.CreatePart(h)
			require.NoError(t, err)
			_, err = fw.Write([]byte("x"))
			require.NoError(t, err)
		})
		require.ErrorIs(t, err, multiform.ErrHeader)
		assert.Nil(t, form)
	})

	t.Run("non form-data disposition", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			h := textproto.MIMEHeader{}
			h.Set("Content-Disposition", `attachment; name="x"`)
			fw, err := w.CreatePart(h)
			require.NoError(t, err)
			_, err = fw.Write([]byte("x"))
			require.NoError(t, err)
		})
		require.ErrorIs(t, err, multiform.ErrHeader)
		assert.Nil(t, form)
		assert.Equal(t, 400, multiform.StatusCode(err))
	})

	t.Run("truncated body", func(t *testing.T) {
		buf, boundary := buildBody(t, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("a", "1"))
			writeFilePart(t, w, "file", "a.txt", strings.Repeat("z", 1024))
		})
		truncated := bytes.NewReader(buf.Bytes()[:buf.Len()/2])

		src := multiform.NewSource(multipart.NewReader(truncated, boundary))
		form, err := multiform.Decode(context.Background(), src, multiform.Config{})
		require.ErrorIs(t, err, multiform.ErrIncomplete)
		assert.Nil(t, form)
		assert.Equal(t, 400, multiform.StatusCode(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		buf, boundary := buildBody(t, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("a", "1"))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := multiform.NewSource(multipart.NewReader(buf, boundary))
		form, err := multiform.Decode(ctx, src, multiform.Config{})
		require.ErrorIs(t, err, multiform.ErrIncomplete)
		assert.Nil(t, form)
	})
}

func TestFormClose(t *testing.T) {
	t.Run("removes unconsumed temp files", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			writeFilePart(t, w, "file", "a.txt", "File contents")
		})
		require.NoError(t, err)

		var path string
		for _, fd := range form.Fields() {
			if file, ok := fd.(*multiform.File); ok {
				path = file.Path()
			}
		}
		require.NotEmpty(t, path)
		require.FileExists(t, path)

		require.NoError(t, form.Close())
		assert.NoFileExists(t, path)
	})

	t.Run("leaves extracted files alone", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			writeFilePart(t, w, "file", "a.txt", "File contents")
		})
		require.NoError(t, err)

		file, err := multiform.GetFile(form, "file")
		require.NoError(t, err)

		require.NoError(t, form.Close())
		require.FileExists(t, file.Path())

		require.NoError(t, file.Close())
		assert.NoFileExists(t, file.Path())
	})

	t.Run("is idempotent", func(t *testing.T) {
		form, err := decodeBody(t, multiform.Config{}, func(w *multipart.Writer) {
			writeFilePart(t, w, "file", "a.txt", "x")
		})
		require.NoError(t, err)
		require.NoError(t, form.Close())
		require.NoError(t, form.Close())
	})
}

func TestDecodeFailureCleansUp(t *testing.T) {
	// The first file part materializes fine, the second one busts the
	// budget. Nothing must be left on disk afterwards.
	dir := t.TempDir()
	form, err := decodeBody(t, multiform.Config{FileLimit: 10, TempDir: dir}, func(w *multipart.Writer) {
		writeFilePart(t, w, "ok", "ok.bin", "12345")
		writeFilePart(t, w, "over", "over.bin", "123456789")
	})
	require.Error(t, err)
	assert.Nil(t, form)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
