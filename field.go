package multiform

import (
	"errors"
	"io"
	"os"
)

// Field is one decoded part: either a Text or a *File.
// Fields are not unique by name; a form may carry several parts under the
// same field name.
type Field interface {
	// FieldName returns the form field name from the part's
	// Content-Disposition header.
	FieldName() string
}

// Text is a decoded text field. Its value is always valid UTF-8.
type Text struct {
	Name  string
	Value string
}

func (t Text) FieldName() string { return t.Name }

// File is a decoded file field backed by a temp file on local disk.
//
// The Form owns the temp file until the field is taken out through one of
// the file extraction calls; from then on the caller owns it and must Close
// it when done. Close removes the backing file.
type File struct {
	// Name is the form field name.
	Name string

	// Filename is the client-reported original filename. Optional per
	// RFC 7578; empty when the client sent none.
	Filename string

	// MIMEType is the media type declared on the part.
	MIMEType string

	// Size is the exact number of bytes written to the backing temp file.
	Size int64

	tmp *os.File
}

func (f *File) FieldName() string { return f.Name }

// Path returns the location of the backing temp file.
func (f *File) Path() string { return f.tmp.Name() }

// Read reads from the backing temp file. The handle is positioned at the
// start of the file when the decode completes.
func (f *File) Read(p []byte) (int, error) { return f.tmp.Read(p) }

// Seek repositions the read offset within the backing temp file.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.tmp.Seek(offset, whence)
}

// Close closes the handle and removes the backing temp file.
func (f *File) Close() error {
	name := f.tmp.Name()
	err := f.tmp.Close()
	if rmErr := os.Remove(name); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}
	return err
}

// Form is the ordered list of decoded fields. Order is the wire order of
// parts; extraction matches by name, the order exists for determinism and
// debugging.
//
// A Form is owned by a single goroutine; it is not safe for concurrent use.
type Form struct {
	fields []Field
}

// Len returns the number of fields currently held by the form.
func (f *Form) Len() int { return len(f.fields) }

// Fields returns the fields in wire order. The returned slice is a copy;
// mutating it does not affect the form.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Close removes every file field still held by the form. Files already
// extracted belong to their callers and are untouched. Close is safe to call
// multiple times.
func (f *Form) Close() error {
	var errs []error
	for _, fd := range f.fields {
		if file, ok := fd.(*File); ok {
			if err := file.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	f.fields = nil
	return errors.Join(errs...)
}

var _ io.ReadSeekCloser = (*File)(nil)
