package rijndael

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySize is an AES key size in bits.
type KeySize int

const (
	// Aes128 selects a 128-bit key.
	Aes128 KeySize = 128
	// Aes192 selects a 192-bit key.
	Aes192 KeySize = 192
	// Aes256 selects a 256-bit key.
	Aes256 KeySize = 256
)

// Valid reports whether k is one of the AES key sizes.
func (k KeySize) Valid() bool {
	switch k {
	case Aes128, Aes192, Aes256:
		return true
	default:
		return false
	}
}

// Bytes returns the key length in bytes.
func (k KeySize) Bytes() int {
	const bitsPerByte = 8

	return int(k) / bitsPerByte
}

func (k KeySize) String() string {
	return "AES-" + strconv.Itoa(int(k))
}

// ParseKeySize accepts "256", "aes256" or "AES-256" style values.
func ParseKeySize(value string) (KeySize, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.TrimPrefix(normalized, "aes")
	normalized = strings.TrimPrefix(normalized, "-")

	bits, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKeySize, value)
	}

	size := KeySize(bits)
	if !size.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidKeySize, bits)
	}

	return size, nil
}
