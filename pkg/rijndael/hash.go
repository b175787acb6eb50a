package rijndael

import (
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // PBKDF2 PRF, fixed by the envelope format
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultHashLength is the output length of Pbkdf2 when no length is requested.
const DefaultHashLength = sha512.Size

// prfBlockSize is the block size of the PBKDF2 PRF hash.
// HMAC replaces keys longer than this with their digest.
const prfBlockSize = sha1.BlockSize

//nolint:gochecknoglobals
var prf = sha1.New

// Sha512 returns the SHA-512 digest of data.
func Sha512(data []byte) []byte {
	sum := sha512.Sum512(data)

	return sum[:]
}

// Sha512Hex returns the SHA-512 digest of the UTF-8 bytes of s as 128 uppercase hex characters.
func Sha512Hex(s string) string {
	return strings.ToUpper(hex.EncodeToString(Sha512([]byte(s))))
}

// Pbkdf2 derives length bytes from password and salt with PBKDF2-HMAC-SHA1.
// A length of zero or less selects DefaultHashLength.
func Pbkdf2(password, salt []byte, iterations, length int) []byte {
	if length <= 0 {
		length = DefaultHashLength
	}

	return pbkdf2.Key(password, salt, iterations, length, prf)
}

// RandomBytes returns n bytes from the system's secure random source.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("reading random bytes: %w", err)
	}

	return buf, nil
}
