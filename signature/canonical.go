package signature

import (
	"math"
	"slices"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Canonicalize renders v as the deterministic string the server hashes when
// verifying a request. The output is only ever used as digest input.
//
// Object keys are sorted at every depth, members holding [Undefined] are
// dropped, NaN and infinities render as null and no whitespace is emitted.
func Canonicalize(v Value) string {
	return string(AppendCanonical(nil, v))
}

// AppendCanonical appends the canonical form of v to dst.
func AppendCanonical(dst []byte, v Value) []byte {
	return appendValue(dst, v, false)
}

// Marshal renders v as a JSON document for the request body. It equals the
// canonical form except that [Undefined] outside an object renders as null,
// matching JSON.stringify.
func Marshal(v Value) []byte {
	return appendValue(nil, v, true)
}

func appendValue(dst []byte, v Value, wire bool) []byte {
	if v == nil {
		v = Undefined
	}
	return v.appendCanonical(dst, wire)
}

func (undefined) appendCanonical(dst []byte, wire bool) []byte {
	if wire {
		return append(dst, "null"...)
	}
	return append(dst, "undefined"...)
}

func (Null) appendCanonical(dst []byte, _ bool) []byte {
	return append(dst, "null"...)
}

func (b Bool) appendCanonical(dst []byte, _ bool) []byte {
	return strconv.AppendBool(dst, bool(b))
}

func (n Number) appendCanonical(dst []byte, _ bool) []byte {
	if !n.IsFinite() {
		return append(dst, "null"...)
	}
	return appendNumber(dst, float64(n))
}

func (s String) appendCanonical(dst []byte, _ bool) []byte {
	return appendQuoted(dst, string(s))
}

func (a Array) appendCanonical(dst []byte, wire bool) []byte {
	dst = append(dst, '[')
	for i, item := range a {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendValue(dst, item, wire)
	}
	return append(dst, ']')
}

func (o Object) appendCanonical(dst []byte, wire bool) []byte {
	keys := make([]string, 0, len(o))
	for k, v := range o {
		if IsAbsent(v) {
			continue
		}
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)

	dst = append(dst, '{')
	for i, k := range keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendQuoted(dst, k)
		dst = append(dst, ':')
		dst = o[k].appendCanonical(dst, wire)
	}
	return append(dst, '}')
}

// IsAbsent reports whether v is [Undefined] or a nil Value.
func IsAbsent(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(undefined)
	return ok
}

// appendNumber follows ECMAScript Number::toString for finite values.
func appendNumber(dst []byte, f float64) []byte {
	if f == 0 {
		return append(dst, '0')
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// strconv pads the exponent to two digits: 1e-07 -> 1e-7
		n := len(dst)
		if n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

const hexDigits = "0123456789abcdef"

// appendQuoted quotes s the way JSON.stringify does: only the quote, the
// backslash and control characters are escaped.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch c {
			case '"', '\\':
				dst = append(dst, '\\', c)
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, "\ufffd"...)
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// compareUTF16 orders strings by UTF-16 code units, which is how the server
// sorts object keys. For keys without supplementary-plane characters this is
// plain byte order.
func compareUTF16(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			return compareUnits(ra, rb)
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func compareUnits(ra, rb rune) int {
	ua, ub := firstUnit(ra), firstUnit(rb)
	if ua != ub {
		if ua < ub {
			return -1
		}
		return 1
	}
	// Same high surrogate; the low surrogate decides.
	_, la := utf16.EncodeRune(ra)
	_, lb := utf16.EncodeRune(rb)
	if la < lb {
		return -1
	}
	return 1
}

func firstUnit(r rune) rune {
	if r >= 0x10000 && r <= utf8.MaxRune {
		hi, _ := utf16.EncodeRune(r)
		return hi
	}
	return r
}

// MarshalJSON implements json.Marshaler using [Marshal].
func (o Object) MarshalJSON() ([]byte, error) {
	return Marshal(o), nil
}

// MarshalJSON implements json.Marshaler using [Marshal].
func (a Array) MarshalJSON() ([]byte, error) {
	return Marshal(a), nil
}
