// Package rijndael provides password-based AES encryption in CBC mode with an
// optional Encrypt-then-MAC layer.
//
// Keys are derived from the password alone: a salt is computed from the
// password's SHA-512 digest and fed through PBKDF2, so the same password always
// yields the same key and no salt has to be stored.
//
// Plain envelopes are laid out as
//
//	IV (16 bytes) || ciphertext
//
// and authenticated envelopes as
//
//	IV (16 bytes) || ciphertext || MAC (64 bytes)
//
// where the MAC covers the IV and ciphertext and is checked before any
// decryption happens. String entry points Base64-encode the full envelope.
package rijndael
