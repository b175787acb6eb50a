package rijndael

// keyRingSplit is where the 128-character SHA-512 hex digest is cut in two.
const keyRingSplit = 64

// KeyRing holds the two keys used by the Encrypt-then-MAC mode.
type KeyRing struct {
	// CipherKey is used in place of the password when deriving the cipher key.
	CipherKey string
	// MacKey salts the MAC computation.
	MacKey []byte
}

// GenerateKeyRing splits the uppercase SHA-512 hex digest of password into a
// cipher key (first half) and a MAC key (UTF-8 bytes of the second half).
func GenerateKeyRing(password string) KeyRing {
	digest := Sha512Hex(password)

	return KeyRing{
		CipherKey: digest[:keyRingSplit],
		MacKey:    []byte(digest[keyRingSplit:]),
	}
}
