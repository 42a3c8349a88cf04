package tms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/alphacargo/tms-go/signature"
)

// RawRequest describes a call whose successful response is not a JSON envelope,
// such as a PDF label or a CSV report.
type RawRequest struct {
	// Query holds the query parameters. Null values are skipped.
	Query any
	// Body is sent as is with ContentType.
	Body        io.Reader
	ContentType string
	// FailureMessage is reported when an error response carries no error field.
	FailureMessage string
}

// RawResponse is the undecoded body of a successful response.
type RawResponse struct {
	ContentType string
	Body        []byte
}

// DoRaw sends an unsigned request and returns the response bytes on 2xx.
// Error responses are parsed as JSON and returned as [*Error] with the
// message taken from their error field.
func (c *Client) DoRaw(ctx context.Context, method, path string, req RawRequest) (*RawResponse, error) {
	query, err := toObject(req.Query)
	if err != nil {
		return nil, err
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	res, err := c.send(ctx, method, path+buildQuery(query), req.Body, contentType, false)
	if err != nil {
		return nil, err
	}
	if res.status >= http.StatusOK && res.status < http.StatusMultipleChoices {
		return &RawResponse{ContentType: res.header.Get("Content-Type"), Body: res.body}, nil
	}
	return nil, c.rawFailure(method, res, req.FailureMessage)
}

func (c *Client) rawFailure(method string, res *response, fallback string) error {
	fields, raw, err := decodeEnvelopeBody(res.body)
	if err != nil {
		return &RequestError{Method: method, URL: res.url, StatusCode: res.status, Err: err}
	}
	message := fallback
	if message == "" {
		message = DefaultErrorMessage
	}
	if m, ok := stringField(fields, "error"); ok {
		message = m
	}
	return newTransportError(res.status, res.status, message, withDetails(raw))
}

// jsonBody renders a small unsigned JSON body.
func jsonBody(body signature.Object) io.Reader {
	return bytes.NewReader(signature.Marshal(body))
}

// multipartPhotos encodes photos as a multipart form with one "photos[]" part
// per photo, named photo-0, photo-1 and so on.
func multipartPhotos(photos []PODPhoto) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i, photo := range photos {
		if photo.Data == nil {
			return nil, "", fmt.Errorf("%w: photos[%d] has no data", ErrInvalidRequest, i)
		}
		contentType := photo.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photos[]"; filename="photo-%d"`, i))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("tms: build multipart body: %w", err)
		}
		if _, err := io.Copy(part, photo.Data); err != nil {
			return nil, "", fmt.Errorf("tms: read photos[%d]: %w", i, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("tms: build multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
