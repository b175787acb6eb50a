package rijndael

import (
	"crypto/aes"
	"encoding/base64"
	"fmt"
	"io"
)

// minEtMSize is the shortest authenticated envelope: IV, one cipher block and the MAC.
const minEtMSize = IVSize + aes.BlockSize + MacSize

// EtM encrypts and decrypts authenticated IV || ciphertext || MAC envelopes.
//
// Both keys come from a KeyRing generated from the password: the cipher key
// half is run through the usual key derivation, the MAC key half salts the
// MAC. The MAC is verified before any decryption is attempted.
type EtM struct {
	cipher *Cipher
}

// NewEtM returns an EtM for the given key size. Options apply to the underlying Cipher.
func NewEtM(size KeySize, opts ...Option) (*EtM, error) {
	c, err := New(size, opts...)
	if err != nil {
		return nil, err
	}

	return &EtM{cipher: c}, nil
}

// KeySize returns the configured key size.
func (e *EtM) KeySize() KeySize {
	return e.cipher.KeySize()
}

// EncryptWithIV encrypts data with the given IV and returns IV || ciphertext || MAC.
func (e *EtM) EncryptWithIV(data []byte, password string, iv []byte) ([]byte, error) {
	keys := GenerateKeyRing(password)

	envelope, err := e.cipher.EncryptWithIV(data, keys.CipherKey, iv)
	if err != nil {
		return nil, err
	}

	return append(envelope, CalculateMac(envelope, keys.MacKey)...), nil
}

// Encrypt encrypts data with a fresh random IV and returns the Base64 authenticated envelope.
func (e *EtM) Encrypt(data []byte, password string) (string, error) {
	iv, err := e.cipher.newIV()
	if err != nil {
		return "", err
	}

	envelope, err := e.EncryptWithIV(data, password, iv)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// EncryptString encrypts the UTF-8 bytes of data. See Encrypt.
func (e *EtM) EncryptString(data, password string) (string, error) {
	return e.Encrypt([]byte(data), password)
}

// Decrypt verifies and decrypts an authenticated envelope.
// A MAC mismatch returns ErrAuthenticationFailed and nothing is decrypted.
func (e *EtM) Decrypt(data []byte, password string) ([]byte, error) {
	if len(data) < minEtMSize {
		return nil, fmt.Errorf("%w: envelope too short", ErrAuthenticationFailed)
	}

	keys := GenerateKeyRing(password)

	split := len(data) - MacSize
	envelope, received := data[:split], data[split:]

	if !verifyMac(CalculateMac(envelope, keys.MacKey), received) {
		return nil, ErrAuthenticationFailed
	}

	return e.cipher.Decrypt(envelope, keys.CipherKey)
}

// DecryptString decrypts a Base64 authenticated envelope and returns the plaintext as a string.
func (e *EtM) DecryptString(encoded, password string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding base64: %w", err)
	}

	plaintext, err := e.Decrypt(data, password)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// EncryptStream writes the authenticated envelope of r to w.
// The MAC is computed while the ciphertext is written and appended at the end.
func (e *EtM) EncryptStream(r io.Reader, w io.Writer, password string) error {
	keys := GenerateKeyRing(password)
	mac := newMacWriter(keys.MacKey)

	if err := e.cipher.EncryptStream(r, io.MultiWriter(w, mac), keys.CipherKey); err != nil {
		return err
	}

	if _, err := w.Write(mac.Sum()); err != nil {
		return fmt.Errorf("writing MAC: %w", err)
	}

	return nil
}

// DecryptSeeker verifies the authenticated envelope in r and then decrypts it to w.
// The envelope is read twice: once for the MAC and, only if it matches, once to decrypt.
func (e *EtM) DecryptSeeker(r io.ReadSeeker, w io.Writer, password string) error {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("measuring input: %w", err)
	}

	if size < minEtMSize {
		return fmt.Errorf("%w: envelope too short", ErrAuthenticationFailed)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding input: %w", err)
	}

	keys := GenerateKeyRing(password)
	mac := newMacWriter(keys.MacKey)
	envelopeSize := size - MacSize

	if _, err := io.CopyN(mac, r, envelopeSize); err != nil {
		return fmt.Errorf("reading envelope: %w", err)
	}

	received := make([]byte, MacSize)
	if _, err := io.ReadFull(r, received); err != nil {
		return fmt.Errorf("reading MAC: %w", err)
	}

	if !verifyMac(mac.Sum(), received) {
		return ErrAuthenticationFailed
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding input: %w", err)
	}

	return e.cipher.DecryptStream(io.LimitReader(r, envelopeSize), w, keys.CipherKey)
}
