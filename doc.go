// Package multiform decodes multipart/form-data request bodies as they
// arrive, producing a typed, validated in-memory representation without ever
// buffering the whole body.
//
// The decoder walks the part stream once: text parts are accumulated in
// memory and validated as UTF-8, file parts are streamed into temp files
// with disk writes dispatched to a bounded worker pool. Byte and part-count
// budgets are enforced chunk by chunk as data arrives, so an oversized body
// is rejected the moment it crosses a limit rather than after it has been
// stored. The first error of any kind aborts the decode, removes the temp
// files created so far, and returns nothing else.
//
// Key Features:
//
//   - Streaming decode under strict text/file/part budgets
//   - Typed extraction with generics: exactly-one, optional, and repeated
//     cardinalities for both text values and file uploads
//   - Tag-driven struct binding in the binder subpackage
//   - Router-agnostic: works with any source of parts, with a ready-made
//     net/http adapter
//
// Basic Usage:
//
//	form, err := multiform.DecodeRequest(r.Context(), r, multiform.Config{})
//	if err != nil {
//	    http.Error(w, err.Error(), multiform.StatusCode(err))
//	    return
//	}
//	defer form.Close()
//
//	title, err := multiform.Get[string](form, "title")
//	attempts, err := multiform.GetOptional[int](form, "attempts")
//	upload, err := multiform.GetFile(form, "document")
//
// Text extraction never mutates the form and can be repeated. File
// extraction removes the matched fields and hands their temp files to the
// caller, so the same upload can never be claimed twice; the caller closes
// the file when done, which removes it from disk.
package multiform
