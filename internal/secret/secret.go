// Package secret keeps a captured password in a redacting wrapper so it is
// never printed, marshaled or logged by accident, and can be wiped once the
// analysis that needed it is done.
package secret

import (
	"encoding/json"
	"fmt"
	"io"
	"unsafe"
)

const redacted = "[SECRET]"

// Secret is a byte slice holding sensitive input.
type Secret []byte

// FromString copies in into a new Secret.
func FromString(in string) Secret { return Secret([]byte(in)) }

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter so every verb is redacted.
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Len returns the number of bytes held.
func (s Secret) Len() int { return len(s) }

// Zero overwrites the underlying bytes with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	clear(*s)
}

// AppendByte appends c. When the secret must grow, the old backing array is
// cleared before it is released.
func (s *Secret) AppendByte(c byte) {
	if len(*s) == cap(*s) {
		grown := make(Secret, len(*s), max(2*cap(*s), 32))
		copy(grown, *s)
		clear(*s)
		*s = grown
	}
	*s = append(*s, c)
}

// Use passes the plaintext to fn and zeroes the secret afterwards, even if fn
// panics. The string handed to fn shares the secret's memory, so it reads as
// zeros once Use returns and must not be retained.
func (s *Secret) Use(fn func(plain string) error) error {
	defer s.Zero()
	return fn(unsafe.String(unsafe.SliceData(*s), len(*s)))
}
