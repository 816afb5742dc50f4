// Package common defines shared constants and sentinel errors used across
// client and server layers of passvault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level error taxonomy. The HTTP layer maps these to stable
	// response kinds; anything unrecognized surfaces as ErrorStorage.
	ErrorValidation         = errors.New("all fields are required")
	ErrorDuplicateEmail     = errors.New("email already exists")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorUserNotFound       = errors.New("user not found")
	ErrorStorage            = errors.New("storage error")

	// ErrorDecryption marks a vault payload that could not be decrypted.
	// It is recovered per item during listing, never surfaced as a
	// request failure.
	ErrorDecryption = errors.New("decryption error")
)
