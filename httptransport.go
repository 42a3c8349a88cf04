package tms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alphacargo/tms-go/signature"
)

// RequestOptions describes one API call made through [Client.Do].
type RequestOptions struct {
	// Body is a struct, map[string]any or [signature.Object]. It is sent for
	// POST, PUT, PATCH and DELETE and ignored for GET.
	Body any
	// Query holds the query parameters. Null values are skipped.
	Query any
	Sign  SignMode
}

// Do sends a request to path (relative to the base URL) and returns the
// success payload of the response. Failures are returned as [*Error] when
// the backend produced one and as [*RequestError] otherwise.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions) (json.RawMessage, error) {
	body, err := toObject(opts.Body)
	if err != nil {
		return nil, err
	}
	query, err := toObject(opts.Query)
	if err != nil {
		return nil, err
	}
	req := c.sign(method, opts.Sign, body, query)

	var payload io.Reader
	if req.body != nil {
		payload = bytes.NewReader(signature.Marshal(req.body))
	}
	res, err := c.send(ctx, method, path+buildQuery(req.query), payload, "application/json", req.signed)
	if err != nil {
		return nil, err
	}
	data, err := ParseEnvelope(res.status, res.body)
	if errors.Is(err, ErrInvalidResponse) {
		return nil, &RequestError{Method: method, URL: res.url, StatusCode: res.status, Err: err}
	}
	return data, err
}

type response struct {
	url    string
	status int
	header http.Header
	body   []byte
}

// send performs one HTTP exchange under the configured timeout and returns
// the fully read response.
func (c *Client) send(ctx context.Context, method, pathAndQuery string, body io.Reader, contentType string, signed bool) (*response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	url := c.baseURL + pathAndQuery
	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &RequestError{Method: method, URL: url, Err: err}
	}
	for k, values := range c.cfg.headers {
		req.Header[k] = append([]string(nil), values...)
	}
	// Multipart bodies need their own boundary parameter.
	if req.Header.Get("Content-Type") == "" || strings.HasPrefix(contentType, "multipart/") {
		req.Header.Set("Content-Type", contentType)
	}
	if c.cfg.userAgent != "" {
		req.Header.Set("User-Agent", c.cfg.userAgent)
	}
	requestID := applyRequestContext(ctx, req.Header)

	log := c.cfg.logger.WithFields(logrus.Fields{
		"method":     method,
		"path":       pathAndQuery,
		"request_id": requestID,
		"signed":     signed,
	})
	started := c.cfg.clock()

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, c.requestFailure(ctx, log, method, url, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.requestFailure(ctx, log, method, url, resp.StatusCode, err)
	}

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": c.cfg.clock().Sub(started).String(),
	}).Debug("tms: request completed")
	return &response{url: url, status: resp.StatusCode, header: resp.Header, body: raw}, nil
}

func (c *Client) requestFailure(ctx context.Context, log logrus.FieldLogger, method, url string, status int, err error) error {
	reqErr := &RequestError{Method: method, URL: url, StatusCode: status, Err: err}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		reqErr.timeout = true
		reqErr.Err = fmt.Errorf("%w after %s", ErrTimeout, c.cfg.timeout)
	}
	log.WithError(reqErr.Err).Debug("tms: request failed")
	return reqErr
}

// decodePayload unmarshals a success payload into v. A null or empty
// payload leaves v untouched. Unknown fields are ignored.
func decodePayload(payload json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

// call performs a request and decodes its payload into T.
func call[T any](ctx context.Context, c *Client, method, path string, opts RequestOptions) (T, error) {
	var out T
	payload, err := c.Do(ctx, method, path, opts)
	if err != nil {
		return out, err
	}
	if err := decodePayload(payload, &out); err != nil {
		return out, &RequestError{Method: method, URL: c.baseURL + path, Err: err}
	}
	return out, nil
}

// callData is call for endpoints that nest their result in a second data
// member. A payload without one is decoded as is.
func callData[T any](ctx context.Context, c *Client, method, path string, opts RequestOptions) (T, error) {
	var out T
	payload, err := c.Do(ctx, method, path, opts)
	if err != nil {
		return out, err
	}
	if inner, ok := nestedData(payload); ok {
		payload = inner
	}
	if err := decodePayload(payload, &out); err != nil {
		return out, &RequestError{Method: method, URL: c.baseURL + path, Err: err}
	}
	return out, nil
}

func nestedData(payload json.RawMessage) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, false
	}
	data, ok := fields["data"]
	return data, ok
}
