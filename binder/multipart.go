package binder

import (
	"reflect"

	"github.com/dmitrymomot/multiform"
)

var fileType = reflect.TypeOf(multiform.File{})

// Bind maps a decoded multipart form onto the fields of a target struct,
// one extraction per declared field. The extraction cardinality is implied
// by the field's Go type:
//
//   - value types require exactly one match
//   - pointer types are optional (nil when absent)
//   - slice types collect every match in wire order
//
// Text fields use the `multipart:"name"` tag; fields of type
// multiform.File (by value, pointer, or slice) are file uploads and use the
// `file:"name"` tag. A missing tag falls back to the lowercased field name
// and `-` skips the field.
//
//	type UploadRequest struct {
//	    Title    string            `multipart:"title"`
//	    Retries  *int              `multipart:"retries"`
//	    Tags     []string          `multipart:"tags"`
//	    Document multiform.File    `file:"document"`
//	    Gallery  []*multiform.File `file:"gallery"`
//	}
//
// Binding is all-or-nothing: the first failing extraction aborts and
// returns a *FieldError naming the field and the cause. The target struct
// may have been partially written at that point and must be discarded by
// the caller, as must any file uploads already transferred into it (their
// temp files are the caller's to close).
func Bind(form *multiform.Form, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		if isFileBinding(sf.Type) {
			name, skip := parseFieldTag(sf, "file")
			if skip {
				continue
			}
			if err := bindFileField(form, field, sf.Type, name); err != nil {
				return err
			}
			continue
		}

		name, skip := parseFieldTag(sf, "multipart")
		if skip {
			continue
		}
		if err := bindTextField(form, field, sf.Type, name); err != nil {
			return err
		}
	}

	return nil
}

// isFileBinding reports whether the field type selects the file extraction
// variants.
func isFileBinding(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice:
		elem := t.Elem()
		return elem == fileType || (elem.Kind() == reflect.Ptr && elem.Elem() == fileType)
	default:
		return t == fileType
	}
}

func bindFileField(form *multiform.Form, field reflect.Value, t reflect.Type, name string) error {
	switch t.Kind() {
	case reflect.Slice:
		files, err := multiform.GetFiles(form, name)
		if err != nil {
			return &FieldError{Field: name, Err: err}
		}
		out := reflect.MakeSlice(t, len(files), len(files))
		for i, f := range files {
			if t.Elem().Kind() == reflect.Ptr {
				out.Index(i).Set(reflect.ValueOf(f))
			} else {
				out.Index(i).Set(reflect.ValueOf(*f))
			}
		}
		field.Set(out)

	case reflect.Ptr:
		f, err := multiform.GetOptionalFile(form, name)
		if err != nil {
			return &FieldError{Field: name, Err: err}
		}
		if f != nil {
			field.Set(reflect.ValueOf(f))
		}

	default:
		f, err := multiform.GetFile(form, name)
		if err != nil {
			return &FieldError{Field: name, Err: err}
		}
		field.Set(reflect.ValueOf(*f))
	}
	return nil
}

func bindTextField(form *multiform.Form, field reflect.Value, t reflect.Type, name string) error {
	// Raw string extraction cannot fail; parsing happens per target type.
	vals, err := multiform.GetAll[string](form, name)
	if err != nil {
		return &FieldError{Field: name, Err: err}
	}

	switch t.Kind() {
	case reflect.Slice:
		elemType := t.Elem()
		out := reflect.MakeSlice(t, len(vals), len(vals))
		for i, s := range vals {
			if err := setFieldValue(out.Index(i), elemType, []string{s}); err != nil {
				return &FieldError{Field: name, Err: &multiform.TypeError{Field: name, Type: elemType.String(), Value: s}}
			}
		}
		field.Set(out)

	case reflect.Ptr:
		switch len(vals) {
		case 0:
			// Optional and absent, leave nil.
		case 1:
			ptr := reflect.New(t.Elem())
			if err := setFieldValue(ptr.Elem(), t.Elem(), vals[:1]); err != nil {
				return &FieldError{Field: name, Err: &multiform.TypeError{Field: name, Type: t.Elem().String(), Value: vals[0]}}
			}
			field.Set(ptr)
		default:
			return &FieldError{Field: name, Err: multiform.ErrDuplicateField}
		}

	default:
		switch len(vals) {
		case 0:
			return &FieldError{Field: name, Err: multiform.ErrNotFound}
		case 1:
			if err := setFieldValue(field, t, vals[:1]); err != nil {
				return &FieldError{Field: name, Err: &multiform.TypeError{Field: name, Type: t.String(), Value: vals[0]}}
			}
		default:
			return &FieldError{Field: name, Err: multiform.ErrDuplicateField}
		}
	}
	return nil
}
