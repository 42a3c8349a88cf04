package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math"
	"strings"
	"time"
)

// Reserved field names added to every signed payload.
const (
	FieldMerchantID = "mchId"
	FieldNonce      = "nonceStr"
	FieldTimestamp  = "timestamp"
	FieldSign       = "sign"
)

// Scheme selects how the canonical string is digested.
type Scheme int

const (
	// SchemeSHA256 hashes the canonical string with plain SHA-256. This is the
	// scheme the TMS backend verifies.
	SchemeSHA256 Scheme = iota
	// SchemeHMACSHA256 keys the digest with the API secret.
	SchemeHMACSHA256
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case SchemeSHA256:
		return "sha256"
	case SchemeHMACSHA256:
		return "hmac-sha256"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

var (
	// ErrMissingSignature is returned by [Verifier.Verify] when the payload has no sign field.
	ErrMissingSignature = errors.New("signature: missing sign field")
	// ErrInvalidSignature is returned when the recomputed digest does not match.
	ErrInvalidSignature = errors.New("signature: invalid signature")
	// ErrStaleTimestamp is returned when the payload timestamp is outside the allowed skew.
	ErrStaleTimestamp = errors.New("signature: stale timestamp")
)

// Signer extends request payloads with the merchant id, a fresh nonce, the
// current timestamp and the resulting signature.
//
// A Signer holds no mutable state and is safe for concurrent use.
type Signer struct {
	APIKey    string
	APISecret string
	Scheme    Scheme
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Nonce defaults to NewNonce(DefaultNonceLength).
	Nonce func() string
}

// Sign returns a new payload holding body plus mchId, nonceStr, timestamp and
// sign. The reserved fields overwrite caller-supplied keys of the same name.
// body is never modified.
func (s Signer) Sign(body Object) Object {
	clock := s.Clock
	if clock == nil {
		clock = time.Now
	}
	nonce := s.Nonce
	if nonce == nil {
		nonce = func() string { return NewNonce(DefaultNonceLength) }
	}

	signed := body.Clone()
	signed[FieldMerchantID] = String(s.APIKey)
	signed[FieldNonce] = String(nonce())
	signed[FieldTimestamp] = Number(clock().Unix())
	signed[FieldSign] = String(Digest(signed, s.APISecret, s.Scheme))
	return signed
}

// Digest computes the signature of payload: the canonical form of payload
// without its sign field, hashed according to scheme and rendered as
// uppercase hex. payload is not modified.
//
// Digest panics if the hash primitive fails.
func Digest(payload Object, secret string, scheme Scheme) string {
	var h hash.Hash
	switch scheme {
	case SchemeSHA256:
		h = sha256.New()
	case SchemeHMACSHA256:
		h = hmac.New(sha256.New, []byte(secret))
	default:
		panic(fmt.Sprintf("signature: unknown scheme %s", scheme))
	}
	if _, err := h.Write(SigningInput(payload)); err != nil {
		panic(fmt.Sprintf("signature: compute digest: %v", err))
	}
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
}

// SigningInput returns the canonical bytes that are hashed for payload.
func SigningInput(payload Object) []byte {
	unsigned := payload
	if _, ok := payload[FieldSign]; ok {
		unsigned = payload.Clone()
		delete(unsigned, FieldSign)
	}
	return AppendCanonical(nil, unsigned)
}

// CanonicalizeJSONBody normalizes a raw JSON document into its canonical form.
// An empty body canonicalizes to {} because signed requests always carry an
// object.
func CanonicalizeJSONBody(raw []byte) (string, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Canonicalize(Object{}), nil
	}
	v, err := FromJSON(raw)
	if err != nil {
		return "", err
	}
	return Canonicalize(v), nil
}

// Verifier checks signed payloads the way the backend does. It is the
// reference used by tests and by services that accept signed callbacks.
type Verifier struct {
	Secret string
	Scheme Scheme
	// MaxClockSkew bounds the allowed difference between the payload timestamp
	// and Clock. Zero disables the check.
	MaxClockSkew time.Duration
	Clock        func() time.Time
}

// Verify recomputes the digest of payload and compares it in constant time.
func (v Verifier) Verify(payload Object) error {
	raw, ok := payload[FieldSign].(String)
	if !ok || raw == "" {
		return ErrMissingSignature
	}
	expected := Digest(payload, v.Secret, v.Scheme)
	if !hmac.Equal([]byte(expected), []byte(raw)) {
		return ErrInvalidSignature
	}
	if v.MaxClockSkew <= 0 {
		return nil
	}
	ts, ok := payload[FieldTimestamp].(Number)
	if !ok || !ts.IsFinite() {
		return fmt.Errorf("%w: timestamp missing", ErrStaleTimestamp)
	}
	clock := v.Clock
	if clock == nil {
		clock = time.Now
	}
	signedAt := time.Unix(int64(math.Floor(float64(ts))), 0)
	if skew := absDuration(clock().Sub(signedAt)); skew > v.MaxClockSkew {
		return fmt.Errorf("%w: skew %s exceeds %s", ErrStaleTimestamp, skew, v.MaxClockSkew)
	}
	return nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
