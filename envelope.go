package tms

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// EnvelopeKind classifies a backend response.
type EnvelopeKind int

const (
	EnvelopeSuccess        EnvelopeKind = iota // 2xx without a legacy failure marker.
	EnvelopeLegacyError                        // 2xx with code != 0 and success == false.
	EnvelopeTransportError                     // Non-2xx HTTP status.
)

// String implements fmt.Stringer.
func (k EnvelopeKind) String() string {
	switch k {
	case EnvelopeSuccess:
		return "success"
	case EnvelopeLegacyError:
		return "legacy_error"
	case EnvelopeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Envelope is the classified form of a response. Payload is set for
// [EnvelopeSuccess]; Err is set for both error kinds.
type Envelope struct {
	Kind    EnvelopeKind
	Payload json.RawMessage
	Err     *Error
}

// ClassifyEnvelope applies the backend's response contract to a decoded body.
// fields is nil when the body is valid JSON but not an object; raw is the
// full body and becomes the payload or diagnostics as appropriate.
//
// The first matching rule wins:
//  1. status outside 2xx: transport error
//  2. code present and not 0, success exactly false: legacy error
//  3. otherwise success, with data unwrapped when present
func ClassifyEnvelope(status int, fields map[string]json.RawMessage, raw json.RawMessage) Envelope {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		opts := []errorOption{withDetails(raw)}
		code := status
		if c, ok := numericField(fields, "code"); ok {
			code = c
		} else if rawCode, ok := presentField(fields, "code"); ok {
			opts = append(opts, withRawCode(rawCode))
		}
		message := DefaultErrorMessage
		if m, ok := stringField(fields, "error"); ok {
			message = m
		} else if m, ok := stringField(fields, "message"); ok {
			message = m
		}
		return Envelope{
			Kind: EnvelopeTransportError,
			Err:  newTransportError(status, code, message, opts...),
		}
	}

	// A null code still marks a legacy failure; only a missing key does not.
	if rawCode, ok := fields["code"]; ok && !isZero(rawCode) && isFalse(fields["success"]) {
		opts := []errorOption{withDetails(fields["extra"])}
		code, ok := numericField(fields, "code")
		if !ok {
			code = status
			opts = append(opts, withRawCode(rawCode))
		}
		message := DefaultErrorMessage
		if m, ok := stringField(fields, "message"); ok {
			message = m
		}
		return Envelope{
			Kind: EnvelopeLegacyError,
			Err:  newLegacyError(status, code, message, opts...),
		}
	}

	if data, ok := fields["data"]; ok {
		return Envelope{Kind: EnvelopeSuccess, Payload: data}
	}
	return Envelope{Kind: EnvelopeSuccess, Payload: raw}
}

// ParseEnvelope decodes body and classifies it. It returns the success
// payload, an [*Error] for either error shape, or [ErrInvalidResponse] when
// body is not JSON. An empty body is treated as {}.
func ParseEnvelope(status int, body []byte) (json.RawMessage, error) {
	fields, raw, err := decodeEnvelopeBody(body)
	if err != nil {
		return nil, err
	}
	env := ClassifyEnvelope(status, fields, raw)
	if env.Err != nil {
		return nil, env.Err
	}
	return env.Payload, nil
}

func decodeEnvelopeBody(body []byte) (map[string]json.RawMessage, json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return map[string]json.RawMessage{}, json.RawMessage("{}"), nil
	}
	if !json.Valid(trimmed) {
		return nil, nil, ErrInvalidResponse
	}
	raw := json.RawMessage(trimmed)
	if trimmed[0] != '{' {
		return nil, raw, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, nil, ErrInvalidResponse
	}
	return fields, raw, nil
}

// presentField returns the field when it exists and is not null.
func presentField(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	v, ok := fields[name]
	if !ok || string(v) == "null" {
		return nil, false
	}
	return v, true
}

func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	v, ok := presentField(fields, name)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		// Non-string messages are rendered as their JSON text.
		return string(v), true
	}
	return s, true
}

// numericField reads an integer code. Numeric strings are accepted; fractions
// are truncated. Values outside the int range are rejected.
func numericField(fields map[string]json.RawMessage, name string) (int, bool) {
	v, ok := presentField(fields, name)
	if !ok {
		return 0, false
	}
	text := string(v)
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		text = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// isZero reports whether raw is the JSON number 0. The string "0" is not zero.
func isZero(raw json.RawMessage) bool {
	if len(raw) == 0 || raw[0] == '"' {
		return false
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	return err == nil && f == 0
}

func isFalse(raw json.RawMessage) bool {
	return string(raw) == "false"
}
