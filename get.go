package multiform

import (
	"fmt"
	"strconv"
)

// Scalar enumerates the types a text field can be parsed into.
type Scalar interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Get returns the value of exactly one text field with the given name.
// Zero matches fail with ErrNotFound, more than one with ErrDuplicateField,
// an unparseable value with a *TypeError. The form is never mutated by text
// extraction, so repeated reads of the same field are idempotent.
func Get[T Scalar](form *Form, name string) (T, error) {
	vals, err := GetAll[T](form, name)
	if err != nil {
		var zero T
		return zero, err
	}
	switch len(vals) {
	case 0:
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNotFound, name)
	case 1:
		return vals[0], nil
	default:
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
}

// GetOptional returns the value of at most one text field with the given
// name, or nil when the field is absent. More than one match fails with
// ErrDuplicateField.
func GetOptional[T Scalar](form *Form, name string) (*T, error) {
	vals, err := GetAll[T](form, name)
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 0:
		return nil, nil
	case 1:
		return &vals[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
}

// GetAll returns the values of every text field with the given name, in wire
// order. Zero matches yield an empty slice, never an error; a single
// unparseable value fails the whole call with a *TypeError.
func GetAll[T Scalar](form *Form, name string) ([]T, error) {
	out := []T{}
	for _, fd := range form.fields {
		text, ok := fd.(Text)
		if !ok || text.Name != name {
			continue
		}
		v, err := parseScalar[T](text.Value)
		if err != nil {
			return nil, &TypeError{Field: name, Type: scalarTypeName[T](), Value: text.Value}
		}
		out = append(out, v)
	}
	return out, nil
}

// GetFile returns exactly one file field with the given name and removes it
// from the form: ownership of the temp file transfers to the caller, who
// must Close it. When the name matches several file fields they are all
// removed and discarded before ErrDuplicateField is returned, so a failed
// extraction cannot be retried into the same files.
func GetFile(form *Form, name string) (*File, error) {
	files := takeFiles(form, name)
	switch len(files) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	case 1:
		return files[0], nil
	default:
		closeAll(files)
		return nil, fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
}

// GetOptionalFile is like GetFile but returns nil when the field is absent.
func GetOptionalFile(form *Form, name string) (*File, error) {
	files := takeFiles(form, name)
	switch len(files) {
	case 0:
		return nil, nil
	case 1:
		return files[0], nil
	default:
		closeAll(files)
		return nil, fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
}

// GetFiles returns every file field with the given name in wire order,
// removing them from the form. The remaining fields keep their relative
// order. Zero matches yield an empty slice.
func GetFiles(form *Form, name string) ([]*File, error) {
	return takeFiles(form, name), nil
}

// takeFiles partitions the field list into matching files (returned) and
// everything else (kept), instead of deleting by index from the slice being
// scanned.
func takeFiles(form *Form, name string) []*File {
	taken := []*File{}
	kept := make([]Field, 0, len(form.fields))
	for _, fd := range form.fields {
		if file, ok := fd.(*File); ok && file.Name == name {
			taken = append(taken, file)
			continue
		}
		kept = append(kept, fd)
	}
	form.fields = kept
	return taken
}

func closeAll(files []*File) {
	for _, f := range files {
		_ = f.Close()
	}
}

func parseScalar[T Scalar](s string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *int:
		var n int64
		n, err = strconv.ParseInt(s, 10, 0)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(s, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(s, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 0)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}
	return v, err
}

func scalarTypeName[T Scalar]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
