package service

import (
	"errors"
	"fmt"

	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
)

var (
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrNotFound           = errors.New("not_found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountLocked      = errors.New("account_locked")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrSessionInvalid     = errors.New("invalid_session")
	ErrAccountExists      = fmt.Errorf("%w: account already exists", ErrConflict)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// storeErr maps store sentinels onto service errors and passes anything
// else through untouched.
func storeErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %s already exists", ErrConflict, what)
	case errors.Is(err, store.ErrConstraint):
		return fmt.Errorf("%w: %s is referenced by or references missing records", ErrConflict, what)
	default:
		return err
	}
}
