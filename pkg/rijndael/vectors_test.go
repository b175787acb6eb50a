package rijndael_test

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

// Vectors is the golden data in testdata/vectors.yml.
type Vectors struct {
	Sha512 []struct {
		Input string `yaml:"input"`
		Hex   string `yaml:"hex"`
	} `yaml:"sha512"`
	Pbkdf2 []struct {
		Password   string `yaml:"password"`
		Salt       string `yaml:"salt"`
		Iterations int    `yaml:"iterations"`
		Base64     string `yaml:"base64"`
	} `yaml:"pbkdf2"`
	Keys []struct {
		Password   string `yaml:"password"`
		KeySize    int    `yaml:"key_size"`
		Iterations int    `yaml:"iterations"`
		Hex        string `yaml:"hex"`
	} `yaml:"keys"`
	KeyRing struct {
		Password  string `yaml:"password"`
		CipherKey string `yaml:"cipher_key"`
		MacKey    string `yaml:"mac_key"`
	} `yaml:"key_ring"`
	Plain []Envelope `yaml:"plain"`
	EtM   []Envelope `yaml:"etm"`
}

// Envelope is a fixed-IV encryption case with one ciphertext per key size.
type Envelope struct {
	Name        string         `yaml:"name"`
	Password    string         `yaml:"password"`
	IV          string         `yaml:"iv"`
	Plaintext   string         `yaml:"plaintext"`
	Ciphertexts map[int]string `yaml:"ciphertexts"`
	Macs        map[int]string `yaml:"macs,omitempty"`
}

func loadVectors(t *testing.T) Vectors {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	require.NoError(t, err, "reading testdata")

	var vectors Vectors
	require.NoError(t, yaml.Unmarshal(data, &vectors), "parsing testdata")

	return vectors
}

func mustBase64(t *testing.T, s string) []byte {
	t.Helper()

	decoded, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)

	return decoded
}
