package rijndael

import (
	"io"
	"os"

	"github.com/idelchi/rijndael/internal/fileutil"
)

// EncryptFile encrypts inFile into outFile, streaming through a fixed-size buffer.
// outFile is replaced atomically and is not created when encryption fails.
func (c *Cipher) EncryptFile(inFile, outFile, password string) error {
	return fileutil.Transform(inFile, outFile, func(in *os.File, out io.Writer) error {
		return c.EncryptStream(in, out, password)
	})
}

// DecryptFile decrypts inFile into outFile. See EncryptFile.
func (c *Cipher) DecryptFile(inFile, outFile, password string) error {
	return fileutil.Transform(inFile, outFile, func(in *os.File, out io.Writer) error {
		return c.DecryptStream(in, out, password)
	})
}

// EncryptFile writes the authenticated envelope of inFile to outFile.
func (e *EtM) EncryptFile(inFile, outFile, password string) error {
	return fileutil.Transform(inFile, outFile, func(in *os.File, out io.Writer) error {
		return e.EncryptStream(in, out, password)
	})
}

// DecryptFile verifies inFile and decrypts it into outFile.
// When the MAC does not match, outFile is not created.
func (e *EtM) DecryptFile(inFile, outFile, password string) error {
	return fileutil.Transform(inFile, outFile, func(in *os.File, out io.Writer) error {
		return e.DecryptSeeker(in, out, password)
	})
}
