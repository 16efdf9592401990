package multiform

import (
	"io"
	"mime/multipart"
	"net/textproto"
)

// Part is one section of a multipart body: a MIME header set and a chunked
// byte payload read until io.EOF.
type Part interface {
	io.Reader

	// Header returns the part's MIME headers.
	Header() textproto.MIMEHeader
}

// Source yields the parts of one body in wire order. Next returns io.EOF
// after the final part; any other error means the stream failed and the
// remainder must not be consumed.
type Source interface {
	Next() (Part, error)
}

// NewSource adapts a *mime/multipart.Reader into a Source.
func NewSource(mr *multipart.Reader) Source {
	return &readerSource{mr: mr}
}

type readerSource struct {
	mr *multipart.Reader
}

func (s *readerSource) Next() (Part, error) {
	p, err := s.mr.NextPart()
	if err != nil {
		return nil, err
	}
	return mimePart{p}, nil
}

type mimePart struct {
	*multipart.Part
}

func (p mimePart) Header() textproto.MIMEHeader { return p.Part.Header }
