package rijndael

// Encrypt encrypts data under password with a random IV and returns the Base64 envelope.
// Keys are derived with the process-wide settings.
func Encrypt(data []byte, password string, size KeySize) (string, error) {
	c, err := New(size)
	if err != nil {
		return "", err
	}

	return c.Encrypt(data, password)
}

// EncryptWithIV encrypts data under password with iv and returns IV || ciphertext.
func EncryptWithIV(data []byte, password string, iv []byte, size KeySize) ([]byte, error) {
	c, err := New(size)
	if err != nil {
		return nil, err
	}

	return c.EncryptWithIV(data, password, iv)
}

// Decrypt decrypts an IV || ciphertext envelope.
func Decrypt(envelope []byte, password string, size KeySize) ([]byte, error) {
	c, err := New(size)
	if err != nil {
		return nil, err
	}

	return c.Decrypt(envelope, password)
}

// DecryptString decrypts a Base64 envelope.
func DecryptString(encoded, password string, size KeySize) (string, error) {
	c, err := New(size)
	if err != nil {
		return "", err
	}

	return c.DecryptString(encoded, password)
}

// EncryptEtM encrypts data in Encrypt-then-MAC mode with a random IV and returns the Base64 envelope.
func EncryptEtM(data []byte, password string, size KeySize) (string, error) {
	e, err := NewEtM(size)
	if err != nil {
		return "", err
	}

	return e.Encrypt(data, password)
}

// EncryptEtMWithIV encrypts data in Encrypt-then-MAC mode and returns IV || ciphertext || MAC.
func EncryptEtMWithIV(data []byte, password string, iv []byte, size KeySize) ([]byte, error) {
	e, err := NewEtM(size)
	if err != nil {
		return nil, err
	}

	return e.EncryptWithIV(data, password, iv)
}

// DecryptEtM verifies and decrypts an authenticated envelope.
func DecryptEtM(data []byte, password string, size KeySize) ([]byte, error) {
	e, err := NewEtM(size)
	if err != nil {
		return nil, err
	}

	return e.Decrypt(data, password)
}

// DecryptEtMString verifies and decrypts a Base64 authenticated envelope.
func DecryptEtMString(encoded, password string, size KeySize) (string, error) {
	e, err := NewEtM(size)
	if err != nil {
		return "", err
	}

	return e.DecryptString(encoded, password)
}
