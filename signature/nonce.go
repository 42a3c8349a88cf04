package signature

import (
	"crypto/rand"
	"fmt"
)

// NonceAlphabet lists the characters a nonce is drawn from.
const NonceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultNonceLength is the length of the nonceStr sent with every signed request.
const DefaultNonceLength = 32

// largest multiple of len(NonceAlphabet) that fits in a byte
const nonceRejectAbove = 256 - 256%len(NonceAlphabet)

// NewNonce returns n characters drawn uniformly from [NonceAlphabet] using
// crypto/rand. It panics if the system entropy source fails.
func NewNonce(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			panic(fmt.Sprintf("signature: read random bytes: %v", err))
		}
		for _, b := range buf {
			if int(b) >= nonceRejectAbove {
				continue
			}
			out = append(out, NonceAlphabet[int(b)%len(NonceAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
