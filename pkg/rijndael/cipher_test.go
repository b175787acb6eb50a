package rijndael_test

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/rijndael/pkg/rijndael"
)

//nolint:gochecknoglobals
var keySizes = []rijndael.KeySize{rijndael.Aes128, rijndael.Aes192, rijndael.Aes256}

func TestCipherVectors(t *testing.T) {
	for _, tc := range loadVectors(t).Plain {
		for bits, want := range tc.Ciphertexts {
			size := rijndael.KeySize(bits)

			t.Run(tc.Name+"/"+size.String(), func(t *testing.T) {
				envelope, err := rijndael.EncryptWithIV([]byte(tc.Plaintext), tc.Password, []byte(tc.IV), size)
				require.NoError(t, err)
				assert.Equal(t, want, base64.StdEncoding.EncodeToString(envelope))

				plaintext, err := rijndael.DecryptString(want, tc.Password, size)
				require.NoError(t, err)
				assert.Equal(t, tc.Plaintext, plaintext)
			})
		}
	}
}

func TestCipherRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":       {},
		"one byte":    {0x42},
		"block":       bytes.Repeat([]byte{'a'}, 16),
		"block plus":  bytes.Repeat([]byte{'b'}, 17),
		"unicode":     []byte("Hello 世界 🌍"),
		"multi block": bytes.Repeat([]byte("0123456789"), 100),
	}

	for _, size := range keySizes {
		c, err := rijndael.New(size, rijndael.WithIterations(10))
		require.NoError(t, err)

		for name, data := range inputs {
			t.Run(size.String()+"/"+name, func(t *testing.T) {
				encoded, err := c.Encrypt(data, "round trip")
				require.NoError(t, err)

				envelope := mustBase64(t, encoded)
				assert.Zero(t, (len(envelope)-rijndael.IVSize)%16)
				assert.Greater(t, len(envelope), rijndael.IVSize+len(data))

				plaintext, err := c.Decrypt(envelope, "round trip")
				require.NoError(t, err)
				assert.Equal(t, data, append([]byte{}, plaintext...))
			})
		}
	}
}

func TestCipherRandomIV(t *testing.T) {
	for _, size := range keySizes {
		t.Run(size.String(), func(t *testing.T) {
			c, err := rijndael.New(size, rijndael.WithIterations(10))
			require.NoError(t, err)

			first, err := c.EncryptString("same data", "pw")
			require.NoError(t, err)

			second, err := c.EncryptString("same data", "pw")
			require.NoError(t, err)

			assert.NotEqual(t, first, second)
			assert.NotEqual(t, mustBase64(t, first)[:rijndael.IVSize], mustBase64(t, second)[:rijndael.IVSize])

			plaintext, err := c.DecryptString(first, "pw")
			require.NoError(t, err)
			assert.Equal(t, "same data", plaintext)
		})
	}
}

func TestCipherFixedIVDeterministic(t *testing.T) {
	iv := []byte("C3BF491FD6BB4C14")

	c, err := rijndael.New(rijndael.Aes256, rijndael.WithIterations(10))
	require.NoError(t, err)

	first, err := c.EncryptWithIV([]byte("fixed"), "pw", iv)
	require.NoError(t, err)

	second, err := c.EncryptWithIV([]byte("fixed"), "pw", iv)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, iv, first[:rijndael.IVSize])
}

func TestCipherInvalidIV(t *testing.T) {
	c, err := rijndael.New(rijndael.Aes128, rijndael.WithIterations(10))
	require.NoError(t, err)

	for _, size := range []int{0, 8, 15, 17, 32} {
		_, err := c.EncryptWithIV([]byte("data"), "pw", make([]byte, size))
		require.ErrorIs(t, err, rijndael.ErrInvalidIVSize, "iv size %d", size)
	}
}

func TestCipherDoesNotModifyInput(t *testing.T) {
	c, err := rijndael.New(rijndael.Aes128, rijndael.WithIterations(10))
	require.NoError(t, err)

	backing := make([]byte, 5, 64)
	copy(backing, "hello")

	_, err = c.EncryptWithIV(backing, "pw", make([]byte, rijndael.IVSize))
	require.NoError(t, err)

	assert.Equal(t, make([]byte, 59), backing[5:64])
}

func TestCipherDecryptFailures(t *testing.T) {
	c, err := rijndael.New(rijndael.Aes128, rijndael.WithIterations(10))
	require.NoError(t, err)

	envelope, err := c.EncryptWithIV([]byte("some plaintext"), "pw", []byte("0123456789abcdef"))
	require.NoError(t, err)

	tests := map[string][]byte{
		"empty":          {},
		"iv only":        envelope[:rijndael.IVSize],
		"truncated":      envelope[:len(envelope)-1],
		"misaligned":     append(append([]byte{}, envelope...), 0x00),
		"short envelope": envelope[:rijndael.IVSize+8],
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.Decrypt(data, "pw")
			require.ErrorIs(t, err, rijndael.ErrDecryptionFailed)
		})
	}
}

func TestCipherWrongPassword(t *testing.T) {
	c, err := rijndael.New(rijndael.Aes256, rijndael.WithIterations(10))
	require.NoError(t, err)

	encoded, err := c.EncryptString("top secret", "right")
	require.NoError(t, err)

	plaintext, err := c.DecryptString(encoded, "wrong")
	if err != nil {
		require.ErrorIs(t, err, rijndael.ErrDecryptionFailed)

		return
	}

	assert.NotEqual(t, "top secret", plaintext)
}

func TestCipherDecryptStringInvalidBase64(t *testing.T) {
	c, err := rijndael.New(rijndael.Aes128, rijndael.WithIterations(10))
	require.NoError(t, err)

	_, err = c.DecryptString("not base64!", "pw")
	require.Error(t, err)
}

func TestCipherStreamMatchesInMemory(t *testing.T) {
	sizes := []int{0, 1, 15, 16, 17, 4095, 4096, 4097, 10000}

	for _, n := range sizes {
		data := make([]byte, n)
		_, err := rand.Read(data)
		require.NoError(t, err)

		iv := bytes.Repeat([]byte{byte(n)}, rijndael.IVSize)

		c, err := rijndael.New(rijndael.Aes192, rijndael.WithIterations(10), rijndael.WithRandom(bytes.NewReader(iv)))
		require.NoError(t, err)

		var streamed bytes.Buffer
		require.NoError(t, c.EncryptStream(bytes.NewReader(data), &streamed, "pw"))

		inMemory, err := c.EncryptWithIV(data, "pw", iv)
		require.NoError(t, err)
		assert.Equal(t, inMemory, streamed.Bytes(), "size %d", n)

		var decrypted bytes.Buffer
		require.NoError(t, c.DecryptStream(bytes.NewReader(streamed.Bytes()), &decrypted, "pw"))
		assert.Equal(t, data, append([]byte{}, decrypted.Bytes()...), "size %d", n)
	}
}

func TestCipherDecryptStreamTruncated(t *testing.T) {
	c, err := rijndael.New(rijndael.Aes128, rijndael.WithIterations(10))
	require.NoError(t, err)

	var envelope bytes.Buffer
	require.NoError(t, c.EncryptStream(bytes.NewReader(make([]byte, 100)), &envelope, "pw"))

	for _, cut := range []int{0, 10, rijndael.IVSize, envelope.Len() - 1} {
		err := c.DecryptStream(bytes.NewReader(envelope.Bytes()[:cut]), &bytes.Buffer{}, "pw")
		require.ErrorIs(t, err, rijndael.ErrDecryptionFailed, "cut %d", cut)
	}
}

func TestCipherFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	encrypted := filepath.Join(dir, "plain.txt.aes")
	decrypted := filepath.Join(dir, "plain.out")

	data := bytes.Repeat([]byte("file contents "), 1000)
	require.NoError(t, os.WriteFile(plain, data, 0o600))

	c, err := rijndael.New(rijndael.Aes256, rijndael.WithIterations(10))
	require.NoError(t, err)

	require.NoError(t, c.EncryptFile(plain, encrypted, "pw"))
	require.NoError(t, c.DecryptFile(encrypted, decrypted, "pw"))

	got, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	raw, err := os.ReadFile(encrypted)
	require.NoError(t, err)

	inMemory, err := c.Decrypt(raw, "pw")
	require.NoError(t, err)
	assert.Equal(t, data, inMemory)
}

func TestCipherFileDecryptFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	encrypted := filepath.Join(dir, "broken.aes")
	out := filepath.Join(dir, "broken")

	require.NoError(t, os.WriteFile(encrypted, []byte("too short"), 0o600))

	c, err := rijndael.New(rijndael.Aes128, rijndael.WithIterations(10))
	require.NoError(t, err)

	require.ErrorIs(t, c.DecryptFile(encrypted, out, "pw"), rijndael.ErrDecryptionFailed)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
