// Package password wraps bcrypt hashing for stored credentials.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptHash reports a stored hash that bcrypt cannot parse. A mismatch
// is not an error; a hash the library rejects outright means the stored
// credential is damaged and the account cannot be verified at all.
var ErrCorruptHash = errors.New("stored password hash is corrupt")

// Hash produces a salted bcrypt hash of plaintext. Each call salts
// independently, so hashing the same input twice yields different hashes.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext reproduces hash. A wrong password
// returns (false, nil); a malformed hash returns ErrCorruptHash.
func Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrCorruptHash
	}
}
