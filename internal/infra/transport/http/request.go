package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// ErrUnsupportedMethod is returned for request methods outside Method's set.
var ErrUnsupportedMethod = errors.New("unsupported request method")

// Method is an HTTP method accepted by Client.Do. The zero value is GET.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

func (m Method) resolve() (string, error) {
	switch m {
	case "":
		return http.MethodGet, nil
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return string(m), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, string(m))
	}
}

// Request describes one backend call.
//
// Payload is sent as a multipart form when it is a *MultipartForm and as JSON
// otherwise. A nil Payload sends no body.
type Request struct {
	Endpoint string
	Method   Method
	Payload  any
}

// MultipartForm is a binary form payload. The boundary and content type are
// chosen by the multipart writer.
type MultipartForm struct {
	Fields []FormField
	Files  []FormFile
}

// FormField is a plain string form field.
type FormField struct {
	Name  string
	Value string
}

// FormFile is a file part of a multipart form.
type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     io.Reader
}

// AddField appends a string field.
func (f *MultipartForm) AddField(name, value string) *MultipartForm {
	f.Fields = append(f.Fields, FormField{Name: name, Value: value})

	return f
}

// AddFile appends a file part.
func (f *MultipartForm) AddFile(field, filename, contentType string, content io.Reader) *MultipartForm {
	f.Files = append(f.Files, FormFile{
		Field:       field,
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	})

	return f
}

func (f *MultipartForm) encode() (*bytes.Buffer, string, error) {
	var (
		buf = new(bytes.Buffer)
		w   = multipart.NewWriter(buf)
	)

	for _, file := range f.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(file.Field), escapeQuotes(file.Filename)))

		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", file.Field, err)
		}

		if file.Content != nil {
			if _, err := io.Copy(part, file.Content); err != nil {
				return nil, "", fmt.Errorf("copy part %s: %w", file.Field, err)
			}
		}
	}

	for _, field := range f.Fields {
		if err := w.WriteField(field.Name, field.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}

// body returns the encoded payload and the content type to send with it.
func (r Request) body() (io.Reader, string, error) {
	switch payload := r.Payload.(type) {
	case nil:
		return nil, "", nil
	case *MultipartForm:
		if payload == nil {
			return nil, "", nil
		}

		buf, contentType, err := payload.encode()
		if err != nil {
			return nil, "", err
		}

		return buf, contentType, nil
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("encode json payload: %w", err)
		}

		return bytes.NewReader(data), "application/json", nil
	}
}

//nolint:gochecknoglobals
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
