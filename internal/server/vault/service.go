package vault

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/users"
)

// Service implements the vault operations. Passwords are encrypted on save
// and decrypted on list; everything is scoped to the owning user ID.
type Service struct {
	repo     Repository
	userRepo users.Repository
	cipher   *cryptox.Cipher
	logger   logging.Logger
}

func NewService(repo Repository, userRepo users.Repository, cipher *cryptox.Cipher, logger logging.Logger) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
		cipher:   cipher,
		logger:   logger.With("module", "vault_service"),
	}
}

// Save encrypts the password and persists a new item for userID. The user
// must exist; this keeps orphaned items out of the store. Link may be empty.
func (s *Service) Save(ctx context.Context, userID, siteName, link, password string) error {

	if userID == "" || siteName == "" || password == "" {
		return common.ErrorValidation
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUserNotFound
		}
		s.logger.Error(ctx, "error fetching user", "error", err.Error())
		return common.ErrorStorage
	}

	payload, err := s.cipher.Encrypt(password)
	if err != nil {
		s.logger.Error(ctx, "error encrypting password", "error", err.Error())
		return common.ErrorStorage
	}

	item := &Item{
		UserID:   userID,
		SiteName: siteName,
		Link:     link,
		Password: payload,
	}

	if _, err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error(ctx, "error creating vault item", "error", err.Error())
		return common.ErrorStorage
	}

	return nil
}

// List returns the user's items, most recent first, with passwords
// decrypted. An item that fails to decrypt comes back with an empty
// password instead of aborting the whole listing; the failure is logged.
func (s *Service) List(ctx context.Context, userID string) ([]*Item, error) {

	if userID == "" {
		return nil, common.ErrorValidation
	}

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "error listing vault items", "error", err.Error())
		return nil, common.ErrorStorage
	}

	for _, item := range items {
		plaintext, err := s.cipher.Decrypt(item.Password)
		if err != nil {
			s.logger.Warn(ctx, "undecryptable vault item payload",
				"item_id", item.ID, "error", err.Error())
			item.Password = ""
			continue
		}
		item.Password = plaintext
	}

	return items, nil
}

// Delete removes one item. The caller's userID must match the item's owner;
// deleting a missing or foreign item is a silent no-op, so Delete stays
// idempotent.
func (s *Service) Delete(ctx context.Context, userID string, itemID string) error {

	if userID == "" || itemID == "" {
		return common.ErrorValidation
	}

	if err := s.repo.Delete(ctx, userID, itemID); err != nil {
		s.logger.Error(ctx, "error deleting vault item", "error", err.Error())
		return common.ErrorStorage
	}

	return nil
}
