package users

import "time"

// User is an identity record. Both hash fields are always populated before
// the record is persisted; the plaintext password and secret key are never
// stored. Records are immutable after creation.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	SecretKeyHash string
	CreatedAt     time.Time
}
