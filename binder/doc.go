// Package binder maps decoded request data onto typed structs.
//
// Bind and BindValidated work over a *multiform.Form produced by the
// streaming multipart decoder: each struct field becomes one typed
// extraction whose cardinality follows the Go type (value, pointer, slice)
// and whose kind (text or file upload) follows the field's type and tag.
// Form and Query are thin pass-through binders for urlencoded bodies and
// query strings built on the standard library's parsers.
//
//	type UploadRequest struct {
//	    Title    string         `multipart:"title"`
//	    Document multiform.File `file:"document"`
//	}
//
//	form, err := multiform.DecodeRequest(ctx, r, multiform.Config{})
//	if err != nil { ... }
//	defer form.Close()
//
//	var req UploadRequest
//	if err := binder.BindValidated(form, &req); err != nil { ... }
//	defer req.Document.Close()
package binder
