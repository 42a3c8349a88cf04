package tms

import (
	"slices"
	"strings"

	"github.com/alphacargo/tms-go/signature"
)

// buildQuery renders params as "?k=v&...", skipping null and absent values.
// Keys are emitted in sorted order. It returns "" when nothing remains.
func buildQuery(params signature.Object) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if isBlank(v) {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(encodeURIComponent(k))
		b.WriteByte('=')
		b.WriteString(encodeURIComponent(stringify(params[k])))
	}
	return b.String()
}

// stringify converts a query value the way the backend's String() does:
// booleans become true/false, numbers use their canonical form and arrays are
// comma-joined. Unlike String(), objects render as canonical JSON rather than
// [object Object] and NaN or infinities as null. Typed params never carry
// either.
func stringify(v signature.Value) string {
	switch t := v.(type) {
	case signature.String:
		return string(t)
	case signature.Array:
		parts := make([]string, len(t))
		for i, item := range t {
			if isBlank(item) {
				continue
			}
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	default:
		return signature.Canonicalize(v)
	}
}

func isBlank(v signature.Value) bool {
	if signature.IsAbsent(v) {
		return true
	}
	_, isNull := v.(signature.Null)
	return isNull
}

const uriUnreserved = "-_.!~*'()"

// encodeURIComponent escapes everything except A-Z a-z 0-9 and -_.!~*'(),
// operating on UTF-8 bytes.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || strings.IndexByte(uriUnreserved, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0xF])
	}
	return b.String()
}

// pathSegment escapes a single path parameter.
func pathSegment(s string) string {
	return encodeURIComponent(s)
}

// queryOf returns params as a query value, mapping a nil pointer to no query.
func queryOf[T any](params *T) any {
	if params == nil {
		return nil
	}
	return params
}
