// Package guid provides the fixed-width 16-byte identifier used to name
// signals (measurements) across the filter expression engine.
package guid

import (
	"fmt"

	"github.com/google/uuid"
)

// Guid is a fixed-width 16-byte identifier, byte-wise comparable and
// usable directly as a map key.
type Guid [16]byte

// Zero is the all-zero Guid. It never denotes a real signal and is
// never inserted into a filtered-signal-ID accumulator.
var Zero Guid

// New generates a random (version 4) Guid.
func New() Guid {
	return Guid(uuid.New())
}

// Parse accepts any of the textual forms uuid.Parse accepts: with or
// without hyphens, optionally wrapped in braces.
func Parse(s string) (Guid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Zero, fmt.Errorf("guid: %w", err)
	}
	return Guid(u), nil
}

// MustParse panics on an invalid string; intended for literals in code
// and tests where the value is known to be well-formed.
func MustParse(s string) Guid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

func (g Guid) String() string {
	return uuid.UUID(g).String()
}

// IsZero reports whether g is the all-zero Guid.
func (g Guid) IsZero() bool {
	return g == Zero
}

// Compare orders two Guids byte-wise, a plain memcmp-style equality/
// ordering over the 16-byte payload.
func Compare(a, b Guid) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
