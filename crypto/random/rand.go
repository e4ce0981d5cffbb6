package random

import (
	"encoding/binary"
	"math/bits"
)

// Rand is a pseudo random number generator.
// Implementations are not safe for concurrent use: callers sharing a Rand
// must serialize access.
type Rand interface {
	// Read fills the input slice with random bytes.
	Read([]byte)

	// UintMax returns a uniformly distributed random number between 0 and max (inclusive).
	UintMax(max uint64) uint64
}

// randCore is PRG providing the core Read function of a PRG.
// All other Rand methods use the core Read method.
//
// In order to add a new Rand implementation,
// it should be enough to implement randCore.
type randCore interface {
	// Read fills the input slice with random bytes.
	Read([]byte)
}

// genericPRG implements all the Rand methods using the embedded randCore method.
// All implementations of the Rand interface should embed the genericPRG struct.
type genericPRG struct {
	randCore
}

// UintMax returns an uint64 pseudo-random number in [0,max],
// using `p` as an entropy source.
//
// Reducing a 64-bit random modulo max+1 would bias the lower values, so samples
// are masked to the bit size of max and rejected until they fall in range.
// Each loop ends with a probability of more than 1/2.
func (p *genericPRG) UintMax(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	bitLen := bits.Len64(max)
	size := (bitLen + 7) / 8
	// for bitLen == 64 the shift yields 0 and the mask wraps to all ones
	mask := (uint64(1) << bitLen) - 1

	var buffer [8]byte
	for {
		p.Read(buffer[:size])
		random := binary.LittleEndian.Uint64(buffer[:]) & mask
		if random <= max {
			return random
		}
	}
}
