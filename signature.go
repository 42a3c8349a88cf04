package tms

import (
	"fmt"
	"net/http"

	"github.com/alphacargo/tms-go/signature"
)

// SignMode decides whether and where a request is signed.
type SignMode int

const (
	// SignBody signs the body of POST, PUT, PATCH and DELETE requests. A POST
	// without a body still sends a signed empty object. GET requests are
	// sent unsigned.
	SignBody SignMode = iota
	// Unsigned sends the request as is.
	Unsigned
	// SignQuery signs the query parameters of a GET and sends the signed map
	// as the query string. Used by the tracking lookups.
	SignQuery
)

// signedRequest is the output of the signing decision.
type signedRequest struct {
	body   signature.Object
	query  signature.Object
	signed bool
}

func carriesBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// sign applies mode to the request. body and query are never modified; the
// signer works on copies.
func (c *Client) sign(method string, mode SignMode, body, query signature.Object) signedRequest {
	out := signedRequest{body: body, query: query}
	if !carriesBody(method) {
		out.body = nil
	}
	switch mode {
	case SignQuery:
		if query == nil {
			query = signature.Object{}
		}
		out.query = c.signer.Sign(query)
		out.signed = true
	case SignBody:
		switch {
		case out.body != nil:
			out.body = c.signer.Sign(out.body)
			out.signed = true
		case method == http.MethodPost:
			out.body = c.signer.Sign(signature.Object{})
			out.signed = true
		}
	}
	return out
}

// toObject turns a request body or query parameter set into a [signature.Object].
// nil stays nil so that "no body" and "empty body" remain distinguishable.
func toObject(v any) (signature.Object, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case signature.Object:
		return t, nil
	case map[string]any:
		value, err := signature.FromAny(t)
		if err != nil {
			return nil, err
		}
		return value.(signature.Object), nil
	}
	obj, err := signature.FromStruct(v)
	if err != nil {
		return nil, fmt.Errorf("tms: encode request: %w", err)
	}
	return obj, nil
}
