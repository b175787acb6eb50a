package rijndael

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// IVSize is the length of the initialization vector that prefixes every envelope.
const IVSize = aes.BlockSize

// Cipher encrypts and decrypts plain IV || ciphertext envelopes with keys derived from a password.
// A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	size     KeySize
	settings *Settings
	random   io.Reader
}

// New returns a Cipher for the given key size.
//
// Without WithSettings or WithIterations, every call reads the process-wide
// iteration count at the moment it derives its key.
func New(size KeySize, opts ...Option) (*Cipher, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, int(size))
	}

	o := options{random: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}

	if o.settings != nil {
		if err := o.settings.Validate(); err != nil {
			return nil, err
		}
	}

	return &Cipher{
		size:     size,
		settings: o.settings,
		random:   o.random,
	}, nil
}

// KeySize returns the configured key size.
func (c *Cipher) KeySize() KeySize {
	return c.size
}

// Settings returns the settings the next call will derive keys with.
func (c *Cipher) Settings() Settings {
	if c.settings != nil {
		return *c.settings
	}

	return CurrentSettings()
}

// EncryptWithIV encrypts data under password with the given IV and returns IV || ciphertext.
// The output is fully determined by its inputs.
func (c *Cipher) EncryptWithIV(data []byte, password string, iv []byte) ([]byte, error) {
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidIVSize, len(iv))
	}

	block, err := c.block(password)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(data, aes.BlockSize)

	envelope := make([]byte, IVSize+len(padded))
	copy(envelope, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(envelope[IVSize:], padded)

	return envelope, nil
}

// Encrypt encrypts data under password with a fresh random IV and returns the Base64 envelope.
func (c *Cipher) Encrypt(data []byte, password string) (string, error) {
	iv, err := c.newIV()
	if err != nil {
		return "", err
	}

	envelope, err := c.EncryptWithIV(data, password, iv)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// EncryptString encrypts the UTF-8 bytes of data. See Encrypt.
func (c *Cipher) EncryptString(data, password string) (string, error) {
	return c.Encrypt([]byte(data), password)
}

// Decrypt decrypts an IV || ciphertext envelope.
func (c *Cipher) Decrypt(envelope []byte, password string) ([]byte, error) {
	body := len(envelope) - IVSize
	if body < aes.BlockSize || body%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrInvalidBlockSize)
	}

	block, err := c.block(password)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, body)
	cipher.NewCBCDecrypter(block, envelope[:IVSize]).CryptBlocks(plaintext, envelope[IVSize:])

	unpadded, err := pkcs7Unpad(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return unpadded, nil
}

// DecryptString decrypts a Base64 envelope and returns the plaintext as a string.
func (c *Cipher) DecryptString(encoded, password string) (string, error) {
	envelope, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding base64: %w", err)
	}

	plaintext, err := c.Decrypt(envelope, password)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// EncryptStream writes a fresh IV followed by the encryption of r to w.
func (c *Cipher) EncryptStream(r io.Reader, w io.Writer, password string) error {
	block, err := c.block(password)
	if err != nil {
		return err
	}

	iv, err := c.newIV()
	if err != nil {
		return err
	}

	return encryptCBC(block, iv, r, w)
}

// DecryptStream reads an envelope from r and writes the plaintext to w.
// Plaintext is written as it is decrypted, so w may have received data when an error is returned.
func (c *Cipher) DecryptStream(r io.Reader, w io.Writer, password string) error {
	block, err := c.block(password)
	if err != nil {
		return err
	}

	return decryptCBC(block, r, w)
}

func (c *Cipher) block(password string) (cipher.Block, error) {
	key, err := DeriveKeyIterations(password, c.size, c.Settings().HashIterations)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return block, nil
}

func (c *Cipher) newIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return nil, fmt.Errorf("generating IV: %w", err)
	}

	return iv, nil
}
