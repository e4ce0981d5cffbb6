// Package rand is a wrapper around `crypto/rand` that uses the system RNG underneath
// to extract secure entropy.
//
// It is used to seed the deterministic generators of `devrand/crypto/random` when
// no explicit seed is configured. It must not be used as a general purpose RNG.
//
// Functions in this package may return an error if the underlying system implementation fails
// to read new randoms. When that happens, this package considers it an irrecoverable exception.
package rand

import (
	"crypto/rand"
	"fmt"
)

// Bytes returns n random bytes.
//
// It returns:
//   - (nil, exception) if crypto/rand fails to provide entropy which is likely a result of a system error.
//   - (random, nil) otherwise
func Bytes(n int) ([]byte, error) {
	buffer := make([]byte, n)
	if _, err := rand.Read(buffer); err != nil { // checking err in crypto/rand.Read is enough
		return nil, fmt.Errorf("crypto/rand read failed: %w", err)
	}
	return buffer, nil
}
