package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/logging"
)

// Service implements signup and login on top of a user Repository. It holds
// no mutable state between requests; each call is independent.
type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("module", "auth_service"),
	}
}

// Signup hashes the password (salted bcrypt) and the secret key (sha256) and
// creates the user. The returned string is the assigned user ID, the opaque
// identifier the client presents for vault operations after login.
func (s *Service) Signup(ctx context.Context, name, email, password, secretKey string) (string, error) {

	if name == "" || email == "" || password == "" || secretKey == "" {
		return "", common.ErrorValidation
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Name:          name,
		Email:         email,
		PasswordHash:  passwordHash,
		SecretKeyHash: cryptox.HashSecretKey(secretKey),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return "", common.ErrorDuplicateEmail
		}
		s.logger.Error(ctx, "error creating user", "error", err.Error())
		return "", common.ErrorStorage
	}

	return user.ID, nil
}

// Login verifies the password against its bcrypt digest and the secret key
// by equality of sha256 digests. Unknown email, wrong password and wrong
// secret key are indistinguishable in the returned error; the distinction
// exists only in the logs.
func (s *Service) Login(ctx context.Context, email, password, secretKey string) (string, error) {

	if email == "" || password == "" || secretKey == "" {
		return "", common.ErrorValidation
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "login attempt for unknown email")
			return "", common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "error fetching user", "error", err.Error())
		return "", common.ErrorStorage
	}

	passMatch := cryptox.VerifyPassword(password, user.PasswordHash)
	secretMatch := s.checkSecretKey(secretKey, user.SecretKeyHash)

	// evaluate both factors before deciding so the failing one is not
	// observable from the outside
	if !passMatch || !secretMatch {
		s.logger.Info(ctx, "login rejected",
			"password_match", passMatch, "secret_key_match", secretMatch)
		return "", common.ErrorInvalidCredentials
	}

	return user.ID, nil
}

func (s *Service) checkSecretKey(secretKey string, storedHash string) bool {
	candidate := cryptox.HashSecretKey(secretKey)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
