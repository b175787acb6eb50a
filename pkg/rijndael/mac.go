package rijndael

import (
	"crypto/subtle"
	"hash"
)

const (
	// MacSize is the length of the MAC appended to authenticated envelopes.
	MacSize = DefaultHashLength
	// MacIterations is the PBKDF2 iteration count of the MAC. It does not follow Settings.
	MacIterations = 10000
)

// CalculateMac computes the MAC of envelope as PBKDF2 with envelope as the
// password and key as the salt.
func CalculateMac(envelope, key []byte) []byte {
	return Pbkdf2(envelope, key, MacIterations, MacSize)
}

func verifyMac(expected, received []byte) bool {
	return subtle.ConstantTimeCompare(expected, received) == 1
}

// macWriter computes CalculateMac over everything written to it without
// retaining the envelope. HMAC hashes keys longer than the PRF block size
// before use, so only the first block and a running digest are kept.
type macWriter struct {
	key    []byte
	head   []byte
	digest hash.Hash
	size   int64
}

func newMacWriter(key []byte) *macWriter {
	return &macWriter{
		key:    key,
		head:   make([]byte, 0, prfBlockSize),
		digest: prf(),
	}
}

func (m *macWriter) Write(p []byte) (int, error) {
	if room := prfBlockSize - len(m.head); room > 0 {
		m.head = append(m.head, p[:min(room, len(p))]...)
	}

	m.digest.Write(p)
	m.size += int64(len(p))

	return len(p), nil
}

// Sum returns the MAC of the bytes written so far.
func (m *macWriter) Sum() []byte {
	password := m.head
	if m.size > prfBlockSize {
		password = m.digest.Sum(nil)
	}

	return CalculateMac(password, m.key)
}
