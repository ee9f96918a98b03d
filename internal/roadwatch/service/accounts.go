package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/cryptox"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/roadwatch/roadwatch/pkg/slogx"
)

// AccountService is the administrative view over accounts.
type AccountService struct {
	Store  store.Store
	Guard  *Guard
	Hasher *cryptox.PasswordHasher
}

// AccountUpdate carries the fields to change; nil fields are left alone.
type AccountUpdate struct {
	Username *string
	Email    *string
	Password *string
	RoleID   *string
}

func (s *AccountService) Get(ctx context.Context, id string) (domain.Account, error) {
	acc, err := s.Store.Accounts().GetAccountByID(ctx, id)
	return acc, storeErr(err, "account")
}

func (s *AccountService) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	acc, err := s.Store.Accounts().GetAccountByUsername(ctx, strings.TrimSpace(username))
	return acc, storeErr(err, "account")
}

func (s *AccountService) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	acc, err := s.Store.Accounts().GetAccountByEmail(ctx, normalizeEmail(email))
	return acc, storeErr(err, "account")
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().ListAccounts(ctx)
}

func (s *AccountService) Search(ctx context.Context, q string) ([]domain.Account, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(ctx)
	}
	return s.Store.Accounts().SearchAccounts(ctx, q)
}

func (s *AccountService) ListByLocked(ctx context.Context, locked bool) ([]domain.Account, error) {
	return s.Store.Accounts().ListAccountsByLocked(ctx, locked)
}

func (s *AccountService) ListByRole(ctx context.Context, roleID string) ([]domain.Account, error) {
	return s.Store.Accounts().ListAccountsByRole(ctx, roleID)
}

func (s *AccountService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.Store.Accounts().ExistsByUsername(ctx, strings.TrimSpace(username))
}

func (s *AccountService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.Store.Accounts().ExistsByEmail(ctx, normalizeEmail(email))
}

// Create adds a local account. An empty role id means UTILISATEUR.
func (s *AccountService) Create(ctx context.Context, in RegisterInput) (domain.Account, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)

	if in.Username == "" {
		return domain.Account{}, invalid("username is required")
	}
	if err := validateEmail(in.Email); err != nil {
		return domain.Account{}, err
	}
	if len(in.Password) < minPasswordLength {
		return domain.Account{}, invalid("password must be at least %d characters", minPasswordLength)
	}
	if in.RoleID != "" {
		if _, err := s.Store.Roles().GetRoleByID(ctx, in.RoleID); err != nil {
			return domain.Account{}, roleRefErr(err)
		}
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.Account{}, err
	}

	return createAccount(ctx, s.Store, domain.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		AuthSource:   domain.AuthSourceLocal,
		RoleID:       in.RoleID,
	})
}

// Update applies the non-nil fields of in. The lockout state is not
// editable here; use Unlock.
func (s *AccountService) Update(ctx context.Context, id string, in AccountUpdate) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	acc, err := s.Get(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name == "" {
			return domain.Account{}, invalid("username must not be empty")
		}
		acc.Username = name
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if err := validateEmail(email); err != nil {
			return domain.Account{}, err
		}
		acc.Email = email
	}
	if in.RoleID != nil {
		if _, err := s.Store.Roles().GetRoleByID(ctx, *in.RoleID); err != nil {
			return domain.Account{}, roleRefErr(err)
		}
		acc.RoleID = *in.RoleID
	}

	var hash string
	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return domain.Account{}, invalid("password must be at least %d characters", minPasswordLength)
		}
		if hash, err = s.Hasher.Hash(*in.Password); err != nil {
			return domain.Account{}, err
		}
	}

	now := time.Now().UTC()
	acc.UpdatedAt = now
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().UpdateAccountProfile(ctx, acc); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAccountExists
			}
			return storeErr(err, "account")
		}
		if hash == "" {
			return nil
		}
		acc.PasswordHash = hash
		return storeErr(tx.Accounts().UpdatePasswordHash(ctx, acc.ID, hash, now), "account")
	})
	if err != nil {
		return domain.Account{}, err
	}

	l.Info("account updated", "account_id", acc.ID, "password_changed", hash != "")
	return acc, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Accounts().DeleteAccount(ctx, id); err != nil {
		return storeErr(err, "account")
	}
	slogx.FromContext(ctx).Info("account deleted", "account_id", id)
	return nil
}

// Unlock resets the lockout and closes the account's sessions.
func (s *AccountService) Unlock(ctx context.Context, id string) (domain.Account, error) {
	return s.Guard.Unlock(ctx, id)
}

func roleRefErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return invalid("role does not exist")
	}
	return err
}

// createAccount fills in id, timestamps and the default role, and inserts.
func createAccount(ctx context.Context, s store.Store, acc domain.Account) (domain.Account, error) {
	exists, err := s.Accounts().ExistsByEmail(ctx, acc.Email)
	if err != nil {
		return domain.Account{}, err
	}
	if !exists {
		if exists, err = s.Accounts().ExistsByUsername(ctx, acc.Username); err != nil {
			return domain.Account{}, err
		}
	}
	if exists {
		return domain.Account{}, ErrAccountExists
	}

	if acc.RoleID == "" {
		role, err := s.Roles().GetRoleByName(ctx, domain.RoleUser)
		if err != nil {
			return domain.Account{}, storeErr(err, "default role")
		}
		acc.RoleID = role.ID
	}

	now := time.Now().UTC()
	acc.ID = idx.MustNew().String()
	acc.CreatedAt, acc.UpdatedAt = now, now

	if err := s.Accounts().CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrAccountExists
		}
		return domain.Account{}, storeErr(err, "account")
	}

	slogx.FromContext(ctx).Info("account created",
		"account_id", acc.ID, "username", acc.Username, "auth_source", acc.AuthSource)
	return acc, nil
}
