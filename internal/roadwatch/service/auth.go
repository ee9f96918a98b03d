package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/cryptox"
	"github.com/roadwatch/roadwatch/pkg/identity"
	"github.com/roadwatch/roadwatch/pkg/metrics"
	"github.com/roadwatch/roadwatch/pkg/slogx"
)

const minPasswordLength = 8

// AuthService implements the sign-in and sign-up flows on top of the Guard.
type AuthService struct {
	Store    store.Store
	Guard    *Guard
	Hasher   *cryptox.PasswordHasher
	Identity identity.Verifier
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	RoleID   string // defaults to UTILISATEUR
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email %q is not a valid address", email)
	}
	return nil
}

// Login checks a local password. Wrong passwords count towards the lockout;
// unknown emails do not.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Account, domain.Session, error) {
	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	acc, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		metrics.LoginAttempt(metrics.OutcomeFailure)
		return domain.Account{}, domain.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Account{}, domain.Session{}, err
	}

	if s.Guard.IsLocked(acc) {
		metrics.LoginAttempt(metrics.OutcomeLocked)
		l.Info("login rejected, account locked", "account_id", acc.ID)
		return domain.Account{}, domain.Session{}, ErrAccountLocked
	}

	if acc.IsFederated() || acc.PasswordHash == "" || s.Hasher.Verify(password, acc.PasswordHash) != nil {
		metrics.LoginAttempt(metrics.OutcomeFailure)
		if _, err := s.Guard.RecordFailedAttempt(ctx, acc.ID); err != nil {
			l.Error("failed to record failed attempt", "account_id", acc.ID, "error", err)
		}
		return domain.Account{}, domain.Session{}, ErrInvalidCredentials
	}

	return s.signIn(ctx, acc)
}

func (s *AuthService) signIn(ctx context.Context, acc domain.Account) (domain.Account, domain.Session, error) {
	acc, err := s.Guard.ResetFailedAttempts(ctx, acc.ID)
	if err != nil {
		return domain.Account{}, domain.Session{}, err
	}

	sess, err := s.Guard.CreateSession(ctx, acc.ID)
	if err != nil {
		return domain.Account{}, domain.Session{}, err
	}

	metrics.LoginAttempt(metrics.OutcomeSuccess)
	slogx.FromContext(ctx).Info("login succeeded", "account_id", acc.ID, "auth_source", acc.AuthSource)
	return acc, sess, nil
}

// Register creates a local account with a hashed password.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.Account, error) {
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

// FederatedLogin signs in with an identity provider token, creating the
// account on first use. A rejected token still counts as a failed attempt
// against the account its payload names.
func (s *AuthService) FederatedLogin(ctx context.Context, idToken string) (domain.Account, domain.Session, error) {
	l := slogx.FromContext(ctx)

	id, err := s.Identity.Verify(ctx, idToken)
	if err != nil {
		metrics.LoginAttempt(metrics.OutcomeFailure)
		s.recordRejectedToken(ctx, idToken)
		l.Info("federated login rejected", "error", err)
		return domain.Account{}, domain.Session{}, ErrInvalidToken
	}

	acc, err := s.Store.Accounts().GetAccountByEmail(ctx, normalizeEmail(id.Email))
	switch {
	case errors.Is(err, store.ErrNotFound):
		acc, err = s.createFederated(ctx, id)
		if err != nil {
			return domain.Account{}, domain.Session{}, err
		}
	case err != nil:
		return domain.Account{}, domain.Session{}, err
	}

	if s.Guard.IsLocked(acc) {
		metrics.LoginAttempt(metrics.OutcomeLocked)
		return domain.Account{}, domain.Session{}, ErrAccountLocked
	}

	return s.signIn(ctx, acc)
}

func (s *AuthService) recordRejectedToken(ctx context.Context, idToken string) {
	email, ok := identity.UnverifiedEmail(idToken)
	if !ok {
		return
	}
	acc, err := s.Store.Accounts().GetAccountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return
	}
	if _, err := s.Guard.RecordFailedAttempt(ctx, acc.ID); err != nil {
		slogx.FromContext(ctx).Error("failed to record failed attempt", "account_id", acc.ID, "error", err)
	}
}

// FederatedRegister creates an account for a verified identity token.
func (s *AuthService) FederatedRegister(ctx context.Context, idToken string) (domain.Account, error) {
	id, err := s.Identity.Verify(ctx, idToken)
	if err != nil {
		return domain.Account{}, ErrInvalidToken
	}
	return s.createFederated(ctx, id)
}

func (s *AuthService) createFederated(ctx context.Context, id identity.Identity) (domain.Account, error) {
	username := strings.TrimSpace(id.Name)
	if username == "" {
		username = id.Subject
	} else if taken, err := s.Store.Accounts().ExistsByUsername(ctx, username); err != nil {
		return domain.Account{}, err
	} else if taken {
		username = id.Subject
	}

	return createAccount(ctx, s.Store, domain.Account{
		Username:   username,
		Email:      normalizeEmail(id.Email),
		AuthSource: domain.AuthSourceFirebase,
	})
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Guard.Logout(ctx, token)
}

// LogoutAll closes every session of the account and reports how many.
func (s *AuthService) LogoutAll(ctx context.Context, accountID string) (int64, error) {
	return s.Guard.InvalidateAllSessions(ctx, accountID)
}

// Me returns the account and role name of the caller.
func (s *AuthService) Me(ctx context.Context, accountID string) (domain.Account, domain.Role, error) {
	acc, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, domain.Role{}, storeErr(err, "account")
	}
	role, err := s.Store.Roles().GetRoleByID(ctx, acc.RoleID)
	if err != nil {
		return domain.Account{}, domain.Role{}, storeErr(err, "role")
	}
	return acc, role, nil
}
