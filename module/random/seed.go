package random

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	prg "github.com/onflow/devrand/crypto/random"
	"github.com/onflow/devrand/model/device"
	"github.com/onflow/devrand/utils/rand"
)

// streamTag prefixes the device identifier in the generator customizer.
var streamTag = [4]byte{'d', 'r', 'n', 'g'}

// NewSeededState returns a ChaCha20 backed state for device id.
//
// With a nil seed, the generator key is read from the system RNG. Otherwise the
// key is derived from the seed, so that the same seed always yields the same
// sequence on a device. The device identifier customizes the stream: devices
// seeded identically still draw independent sequences.
func NewSeededState(id device.ID, seed []byte) (*RandomState, error) {
	var key []byte
	if seed == nil {
		var err error
		key, err = rand.Bytes(prg.Chacha20SeedLen)
		if err != nil {
			return nil, fmt.Errorf("could not generate generator key for device %d: %w", id, err)
		}
	} else {
		digest := sha3.Sum256(seed)
		key = digest[:]
	}

	generator, err := prg.NewChacha20(key, streamID(id))
	if err != nil {
		return nil, fmt.Errorf("could not create generator for device %d: %w", id, err)
	}
	return NewRandomState(id, generator), nil
}

func streamID(id device.ID) []byte {
	customizer := make([]byte, prg.Chacha20CustomizerMaxLen)
	copy(customizer, streamTag[:])
	binary.BigEndian.PutUint64(customizer[len(streamTag):], uint64(id))
	return customizer
}
