package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/cryptox"
	"github.com/roadwatch/roadwatch/pkg/idx"
	"github.com/roadwatch/roadwatch/pkg/metrics"
	"github.com/roadwatch/roadwatch/pkg/slogx"
)

// Guard owns failed-attempt counting, lockout and the session lifecycle.
type Guard struct {
	Store  store.Store
	Params ParamsSource
	// Logger is used when the context carries no request logger.
	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Caller is the authenticated principal behind a session token.
type Caller struct {
	Account domain.Account
	Session domain.Session
	Role    string
}

func (g *Guard) now() time.Time {
	if g.Now != nil {
		return g.Now().UTC()
	}
	return time.Now().UTC()
}

func (g *Guard) log(ctx context.Context) *slog.Logger {
	return slogx.FromContextOr(ctx, g.Logger)
}

func (g *Guard) params(ctx context.Context) AuthParams {
	if g.Params == nil {
		return DefaultAuthParams
	}
	p, err := g.Params.Current(ctx)
	if err != nil {
		g.log(ctx).Warn("failed to load auth parameters, using defaults", "error", err)
		return DefaultAuthParams
	}
	return p
}

// RecordFailedAttempt counts one failed attempt against the account and locks
// it once the threshold is reached.
func (g *Guard) RecordFailedAttempt(ctx context.Context, accountID string) (domain.Account, error) {
	p := g.params(ctx)

	acc, err := g.Store.Accounts().IncrementFailedAttempts(ctx, accountID, p.MaxAttempts, g.now())
	if err != nil {
		return domain.Account{}, storeErr(err, "account")
	}

	if acc.Locked && acc.FailedAttempts == p.MaxAttempts {
		metrics.Lockout()
		g.log(ctx).Warn("account locked after failed attempts",
			"account_id", acc.ID, "failed_attempts", acc.FailedAttempts)
	}
	return acc, nil
}

func (g *Guard) ResetFailedAttempts(ctx context.Context, accountID string) (domain.Account, error) {
	acc, err := g.Store.Accounts().ResetFailedAttempts(ctx, accountID, g.now())
	return acc, storeErr(err, "account")
}

func (g *Guard) IsLocked(acc domain.Account) bool {
	return acc.Locked
}

// CreateSession sweeps expired sessions and opens a new one for the account.
func (g *Guard) CreateSession(ctx context.Context, accountID string) (domain.Session, error) {
	l := g.log(ctx)
	now := g.now()

	if n, err := g.Store.Sessions().DeactivateExpiredSessions(ctx, now); err != nil {
		l.Warn("failed to sweep expired sessions", "error", err)
	} else if n > 0 {
		l.Debug("swept expired sessions", "count", n)
	}

	token, err := cryptox.NewSessionToken()
	if err != nil {
		return domain.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	s := domain.Session{
		ID:        idx.MustNew().String(),
		AccountID: accountID,
		Token:     token,
		TokenHash: cryptox.FingerprintToken(token),
		CreatedAt: now,
		ExpiresAt: now.Add(g.params(ctx).SessionDuration),
		Active:    true,
	}
	if err := g.Store.Sessions().CreateSession(ctx, s); err != nil {
		return domain.Session{}, storeErr(err, "session")
	}
	return s, nil
}

// ValidateSession returns the active session holding token. An expired
// session is deactivated on the spot and reported as invalid.
func (g *Guard) ValidateSession(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, ErrSessionInvalid
	}

	s, err := g.Store.Sessions().GetActiveSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, ErrSessionInvalid
	}
	if err != nil {
		return domain.Session{}, err
	}

	if s.Expired(g.now()) {
		if err := g.Store.Sessions().DeactivateSession(ctx, s.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			g.log(ctx).Warn("failed to deactivate expired session", "session_id", s.ID, "error", err)
		}
		return domain.Session{}, ErrSessionInvalid
	}
	s.Token = token
	return s, nil
}

// InvalidateAllSessions deactivates every active session of the account.
func (g *Guard) InvalidateAllSessions(ctx context.Context, accountID string) (int64, error) {
	return g.Store.Sessions().DeactivateAccountSessions(ctx, accountID)
}

// Unlock clears the lockout and forces the account to sign in again.
func (g *Guard) Unlock(ctx context.Context, accountID string) (domain.Account, error) {
	var acc domain.Account
	var closed int64
	err := g.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if acc, err = tx.Accounts().ResetFailedAttempts(ctx, accountID, g.now()); err != nil {
			return storeErr(err, "account")
		}
		closed, err = tx.Sessions().DeactivateAccountSessions(ctx, accountID)
		return err
	})
	if err != nil {
		return domain.Account{}, err
	}

	g.log(ctx).Info("account unlocked", "account_id", accountID, "sessions_closed", closed)
	return acc, nil
}

// Logout deactivates the session holding token.
func (g *Guard) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrSessionInvalid
	}
	err := g.Store.Sessions().DeactivateSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return ErrSessionInvalid
	}
	return err
}

// Authenticate resolves a bearer token to its account and role.
func (g *Guard) Authenticate(ctx context.Context, token string) (Caller, error) {
	s, err := g.ValidateSession(ctx, token)
	if err != nil {
		return Caller{}, err
	}

	acc, err := g.Store.Accounts().GetAccountByID(ctx, s.AccountID)
	if errors.Is(err, store.ErrNotFound) {
		return Caller{}, ErrSessionInvalid
	}
	if err != nil {
		return Caller{}, err
	}
	if acc.Locked {
		return Caller{}, ErrAccountLocked
	}

	role, err := g.Store.Roles().GetRoleByID(ctx, acc.RoleID)
	if err != nil {
		return Caller{}, storeErr(err, "role")
	}

	return Caller{Account: acc, Session: s, Role: role.Name}, nil
}
