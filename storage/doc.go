// Package storage persists extracted multipart file uploads to a backend.
//
// A decoded upload lives in a temp file owned by whoever extracted it from
// the form. Storage backends move that payload to its durable home: Save
// streams the temp file into the backend, then closes and removes it, so a
// successful Save fully consumes the upload.
//
// Two backends are provided: LocalStorage writes under a base directory on
// the local filesystem and refuses any path that escapes it, S3Storage
// targets Amazon S3 or any S3-compatible service via aws-sdk-go-v2.
//
//	st, _ := storage.NewLocalStorage("./uploads", "/files")
//
//	upload, err := multiform.GetFile(form, "document")
//	if err != nil { ... }
//	obj, err := st.Save(ctx, upload, storage.GenerateKey("docs", upload.Filename))
package storage
