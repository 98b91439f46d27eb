package apiclient

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

var errFormClosed = errors.New("form already sent")

// Form is a multipart/form-data request body, used for endpoints that take
// file uploads. The client leaves its Content-Type (with boundary) to the
// form itself.
type Form struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	closed bool
	err    error
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	f := &Form{}
	f.writer = multipart.NewWriter(&f.buf)
	return f
}

// Field adds a plain text field.
func (f *Form) Field(name, value string) *Form {
	if f.err != nil {
		return f
	}
	if f.closed {
		f.err = errFormClosed
		return f
	}
	f.err = f.writer.WriteField(name, value)
	return f
}

// File adds a file part read from r.
func (f *Form) File(field, filename string, r io.Reader) *Form {
	if f.err != nil {
		return f
	}
	if f.closed {
		f.err = errFormClosed
		return f
	}
	part, err := f.writer.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = io.Copy(part, r)
	return f
}

// ContentType returns the multipart content type including the boundary.
func (f *Form) ContentType() string {
	return f.writer.FormDataContentType()
}

// encode closes the form on first use and returns its body. Encoding again,
// e.g. for a retry, yields the same bytes.
func (f *Form) encode() (io.Reader, error) {
	if f.err != nil {
		return nil, fmt.Errorf("failed to build form: %w", f.err)
	}
	if !f.closed {
		if err := f.writer.Close(); err != nil {
			return nil, fmt.Errorf("failed to close form: %w", err)
		}
		f.closed = true
	}
	return bytes.NewReader(f.buf.Bytes()), nil
}
