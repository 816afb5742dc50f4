// Package cryptox holds the credential-protection primitives: one-way
// hashing of user secrets and symmetric encryption of vault-item passwords.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to account passwords.
const PasswordHashCost = 10

// HashPassword produces a salted bcrypt digest of the account password.
// The salt is randomized per call and embedded in the digest, so repeated
// calls on the same input yield different digests.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the bcrypt digest.
// A malformed digest counts as a mismatch, never an error.
func VerifyPassword(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// HashSecretKey returns the hex-encoded SHA-256 digest of the secret key.
// Deterministic and unsalted on purpose: the secret key is a second factor
// checked by direct equality alongside the salted password hash, not a
// stand-alone credential.
func HashSecretKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
