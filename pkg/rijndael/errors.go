package rijndael

import "errors"

var (
	// ErrInvalidIVSize is returned when a caller-supplied IV is not 16 bytes.
	ErrInvalidIVSize = errors.New("AES requires an initialization vector of 128 bits")
	// ErrAuthenticationFailed is returned when an authenticated envelope fails its MAC check.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrDecryptionFailed is returned for any ciphertext that cannot be decrypted.
	// A wrong password and a corrupted ciphertext are deliberately reported the same way.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrInvalidKeySize is returned for key sizes other than 128, 192 or 256 bits.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidIterations is returned when an iteration count is below one.
	ErrInvalidIterations = errors.New("iterations must be at least 1")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when ciphertext length is not aligned with the AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
)
