package rijndael

import (
	"fmt"
	"strconv"
)

// DeriveKey derives a key of the given size from password using the process-wide iteration count.
func DeriveKey(password string, size KeySize) ([]byte, error) {
	return DeriveKeyIterations(password, size, HashIterations())
}

// DeriveKeyIterations derives a key of the given size from password.
//
// The salt is itself derived from the password: the SHA-512 hex digest of the
// password followed by its byte length in decimal is run through PBKDF2, and
// the result salts a second PBKDF2 pass that produces the key. The same
// password, size and iteration count always give the same key.
func DeriveKeyIterations(password string, size KeySize, iterations int) ([]byte, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, int(size))
	}

	if err := (Settings{HashIterations: iterations}).Validate(); err != nil {
		return nil, err
	}

	secret := []byte(password)

	seed := Sha512Hex(password + strconv.Itoa(len(secret)))
	salt := Pbkdf2(secret, []byte(seed), iterations, DefaultHashLength)

	return Pbkdf2(secret, salt, iterations, size.Bytes()), nil
}
