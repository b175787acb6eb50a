package rijndael

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
)

// encryptCBC writes iv followed by the CBC encryption of everything read from r.
// Full blocks are flushed as soon as they are available; the tail is padded at EOF.
func encryptCBC(block cipher.Block, iv []byte, r io.Reader, w io.Writer) error {
	if _, err := w.Write(iv); err != nil {
		return fmt.Errorf("writing IV: %w", err)
	}

	mode := cipher.NewCBCEncrypter(block, iv)

	buf := getBuffer()
	defer putBuffer(buf)

	pending := make([]byte, 0, len(*buf)+aes.BlockSize)

	for {
		n, err := r.Read(*buf)
		if n > 0 {
			pending = append(pending, (*buf)[:n]...)

			if full := len(pending) - len(pending)%aes.BlockSize; full > 0 {
				mode.CryptBlocks(pending[:full], pending[:full])

				if _, err := w.Write(pending[:full]); err != nil {
					return fmt.Errorf("writing encrypted blocks: %w", err)
				}

				pending = append(pending[:0], pending[full:]...)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	final := pkcs7Pad(pending, aes.BlockSize)
	mode.CryptBlocks(final, final)

	if _, err := w.Write(final); err != nil {
		return fmt.Errorf("writing final encrypted block: %w", err)
	}

	return nil
}

// decryptCBC reads an IV from r and writes the CBC decryption of the rest to w.
// The last block is held back until EOF so its padding can be stripped.
func decryptCBC(block cipher.Block, r io.Reader, w io.Writer) error {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		return fmt.Errorf("%w: reading IV: %w", ErrDecryptionFailed, err)
	}

	mode := cipher.NewCBCDecrypter(block, iv)

	buf := getBuffer()
	defer putBuffer(buf)

	pending := make([]byte, 0, len(*buf)+2*aes.BlockSize)

	for {
		n, err := r.Read(*buf)
		if n > 0 {
			pending = append(pending, (*buf)[:n]...)

			if ready := len(pending) - len(pending)%aes.BlockSize - aes.BlockSize; ready > 0 {
				mode.CryptBlocks(pending[:ready], pending[:ready])

				if _, err := w.Write(pending[:ready]); err != nil {
					return fmt.Errorf("writing decrypted blocks: %w", err)
				}

				pending = append(pending[:0], pending[ready:]...)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	if len(pending) != aes.BlockSize {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrInvalidBlockSize)
	}

	mode.CryptBlocks(pending, pending)

	unpadded, err := pkcs7Unpad(pending)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	if _, err := w.Write(unpadded); err != nil {
		return fmt.Errorf("writing final decrypted block: %w", err)
	}

	return nil
}
