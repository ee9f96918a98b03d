package store

import (
	"context"
	"errors"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrConstraint    = errors.New("store: constraint violation")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are exposed as methods so a Tx-scoped Store hands out
// repositories bound to the same transaction.
type Store interface {
	Roles() Roles
	Accounts() Accounts
	Sessions() Sessions
	AuthParams() AuthParams
	Companies() Companies
	Places() Places
	Reports() Reports
	Works() Works
	WorkHistory() WorkHistory

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Roles interface {
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// GetRoleByName is used when assigning the default role at registration.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	ListRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, r domain.Role) error
	RenameRole(ctx context.Context, id, name string) error

	// DeleteRole fails while accounts still reference the role.
	DeleteRole(ctx context.Context, id string) error
}

type Accounts interface {
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	// ListAccounts returns all accounts ordered by creation date (oldest first).
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// SearchAccounts matches q as a substring of username or email.
	SearchAccounts(ctx context.Context, q string) ([]domain.Account, error)

	ListAccountsByLocked(ctx context.Context, locked bool) ([]domain.Account, error)
	ListAccountsByRole(ctx context.Context, roleID string) ([]domain.Account, error)

	// CreateAccount inserts a new account (id is provided by app via ULID).
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateAccountProfile sets username, email and role and bumps updated_at.
	UpdateAccountProfile(ctx context.Context, a domain.Account) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id, hash string, now time.Time) error

	// DeleteAccount cascades to sessions (per schema).
	DeleteAccount(ctx context.Context, id string) error

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// IncrementFailedAttempts adds one to failed_attempts and sets locked when
	// the new value reaches maxAttempts, in a single statement. It returns the
	// updated account.
	IncrementFailedAttempts(ctx context.Context, id string, maxAttempts int, now time.Time) (domain.Account, error)

	// ResetFailedAttempts sets failed_attempts=0 and locked=0.
	ResetFailedAttempts(ctx context.Context, id string, now time.Time) (domain.Account, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetActiveSessionByTokenHash returns an active session regardless of expiry.
	// Expiry is checked by the caller.
	GetActiveSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	ListActiveSessions(ctx context.Context, accountID string) ([]domain.Session, error)

	DeactivateSession(ctx context.Context, id string) error

	// DeactivateSessionByTokenHash returns ErrNotFound if no active session matched.
	DeactivateSessionByTokenHash(ctx context.Context, hash string) error

	// DeactivateAccountSessions flips every active session of the account.
	DeactivateAccountSessions(ctx context.Context, accountID string) (int64, error)

	// DeactivateExpiredSessions flips sessions whose expiry is before now.
	DeactivateExpiredSessions(ctx context.Context, now time.Time) (int64, error)

	// DeleteInactiveSessions removes inactive sessions that expired before cutoff.
	DeleteInactiveSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

type AuthParams interface {
	GetAuthParam(ctx context.Context, key string) (domain.AuthParameter, error)
	ListAuthParams(ctx context.Context) ([]domain.AuthParameter, error)

	// UpsertAuthParam writes value and description for key.
	UpsertAuthParam(ctx context.Context, p domain.AuthParameter) error

	// CreateAuthParamIfAbsent inserts p unless the key exists. It reports
	// whether a row was written.
	CreateAuthParamIfAbsent(ctx context.Context, p domain.AuthParameter) (bool, error)
}

type Companies interface {
	GetCompanyByID(ctx context.Context, id string) (domain.Company, error)
	GetCompanyByName(ctx context.Context, name string) (domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	CreateCompany(ctx context.Context, c domain.Company) error
	UpdateCompany(ctx context.Context, c domain.Company) error
	DeleteCompany(ctx context.Context, id string) error
}

type Places interface {
	GetPlaceByID(ctx context.Context, id string) (domain.Place, error)
	GetPlaceByLabel(ctx context.Context, label string) (domain.Place, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	ListPlacesByCity(ctx context.Context, city string) ([]domain.Place, error)
	CreatePlace(ctx context.Context, p domain.Place) error
	UpdatePlace(ctx context.Context, p domain.Place) error
	DeletePlace(ctx context.Context, id string) error
}

type Reports interface {
	GetReportByID(ctx context.Context, id string) (domain.Report, error)

	// GetReportByExternalID is the correlation lookup used by the sync pull.
	GetReportByExternalID(ctx context.Context, externalID string) (domain.Report, error)

	// ListReports returns reports newest first.
	ListReports(ctx context.Context) ([]domain.Report, error)
	ListReportsByUser(ctx context.Context, userID string) ([]domain.Report, error)
	ListReportsByPlace(ctx context.Context, placeID string) ([]domain.Report, error)
	ListReportsByStatus(ctx context.Context, status string) ([]domain.Report, error)
	ListReportsByType(ctx context.Context, problemType string) ([]domain.Report, error)
	ListReportsInArea(ctx context.Context, area domain.Area) ([]domain.Report, error)
	ListReportsSince(ctx context.Context, since time.Time) ([]domain.Report, error)
	SearchReports(ctx context.Context, q string) ([]domain.Report, error)
	CountReportsByStatus(ctx context.Context) ([]domain.StatusCount, error)
	CountReports(ctx context.Context) (int64, error)

	// CreateReport returns ErrAlreadyExists when external_id is taken.
	CreateReport(ctx context.Context, r domain.Report) error
	UpdateReport(ctx context.Context, r domain.Report) error
	UpdateReportStatus(ctx context.Context, id, status string) error
	SetReportExternalID(ctx context.Context, id, externalID string) error
	DeleteReport(ctx context.Context, id string) error
}

type Works interface {
	GetWorkByID(ctx context.Context, id string) (domain.Work, error)
	GetWorkByReportID(ctx context.Context, reportID string) (domain.Work, error)
	GetWorkByExternalID(ctx context.Context, externalID string) (domain.Work, error)
	ListWorks(ctx context.Context) ([]domain.Work, error)
	CountWorks(ctx context.Context) (int64, error)

	// CreateWork returns ErrAlreadyExists when external_id or report_id is taken.
	CreateWork(ctx context.Context, w domain.Work) error
	UpdateWork(ctx context.Context, w domain.Work) error
	UpdateWorkProgress(ctx context.Context, id string, progress decimal.Decimal, now time.Time) error
	SetWorkExternalID(ctx context.Context, id, externalID string) error
	DeleteWork(ctx context.Context, id string) error
}

type WorkHistory interface {
	GetHistoryEntryByID(ctx context.Context, id string) (domain.WorkHistoryEntry, error)
	ListHistoryEntries(ctx context.Context) ([]domain.WorkHistoryEntry, error)

	// ListHistoryByWork returns a work's entries oldest first.
	ListHistoryByWork(ctx context.Context, workID string) ([]domain.WorkHistoryEntry, error)

	CreateHistoryEntry(ctx context.Context, e domain.WorkHistoryEntry) error

	// UpdateHistoryEntry is an administrative correction; the progress updater
	// never calls it.
	UpdateHistoryEntry(ctx context.Context, e domain.WorkHistoryEntry) error
	SetHistoryExternalID(ctx context.Context, id, externalID string) error
	DeleteHistoryEntry(ctx context.Context, id string) error
}
