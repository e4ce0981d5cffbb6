package random

import (
	"fmt"

	"golang.org/x/crypto/chacha20"
)

const (
	// Chacha20SeedLen is the seed length of the ChaCha20 based PRG, in bytes.
	Chacha20SeedLen = chacha20.KeySize
	// Chacha20CustomizerMaxLen is the maximum customizer length, in bytes.
	// Shorter customizers are right padded with zeros.
	Chacha20CustomizerMaxLen = chacha20.NonceSize
)

// Chacha20 is a PRG reading the ChaCha20 key stream.
//
// The seed is used as the ChaCha20 key and the customizer as the nonce, so that
// generators built from the same seed with distinct customizers output
// independent streams. The key stream of a single generator is limited to
// 256 GiB.
type Chacha20 struct {
	genericPRG
}

var _ Rand = (*Chacha20)(nil)

// NewChacha20 returns a new ChaCha20 based PRG.
//
// It returns an error if the seed is not exactly Chacha20SeedLen bytes long,
// or if the customizer is longer than Chacha20CustomizerMaxLen bytes.
func NewChacha20(seed []byte, customizer []byte) (*Chacha20, error) {
	if len(seed) != Chacha20SeedLen {
		return nil, fmt.Errorf("chacha20 seed length should be %d, got %d", Chacha20SeedLen, len(seed))
	}
	if len(customizer) > Chacha20CustomizerMaxLen {
		return nil, fmt.Errorf("chacha20 customizer length should be at most %d, got %d", Chacha20CustomizerMaxLen, len(customizer))
	}

	nonce := make([]byte, Chacha20CustomizerMaxLen)
	copy(nonce, customizer)

	cipher, err := chacha20.NewUnauthenticatedCipher(seed, nonce)
	if err != nil {
		return nil, fmt.Errorf("chacha20 instance creation failed: %w", err)
	}

	return &Chacha20{
		genericPRG: genericPRG{
			randCore: &chachaCore{cipher: cipher},
		},
	}, nil
}

type chachaCore struct {
	cipher *chacha20.Cipher
}

// Read fills buffer with the next bytes of the key stream.
func (c *chachaCore) Read(buffer []byte) {
	for i := range buffer {
		buffer[i] = 0
	}
	c.cipher.XORKeyStream(buffer, buffer)
}
