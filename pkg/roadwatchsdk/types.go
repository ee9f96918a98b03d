package roadwatchsdk

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of date-only fields such as work start dates.
const DateLayout = "2006-01-02"

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	// Error is a stable machine readable code, e.g. "account_locked".
	Error string `json:"error"`

	// ErrorDescription is a human readable explanation.
	ErrorDescription string `json:"error_description,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Authentication
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"nomUtilisateur"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"idRole,omitempty"`
}

// FirebaseRequest carries an ID token issued by the identity provider.
type FirebaseRequest struct {
	Token string `json:"token"`
}

// SessionResponse is returned by the login endpoints. Token is sent back as
// "Authorization: Bearer <token>" on later requests.
type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Account   AccountInfo `json:"utilisateur"`
}

type LogoutAllResponse struct {
	Revoked int64 `json:"revoked"`
}

type MeResponse struct {
	Account AccountInfo `json:"utilisateur"`
	Role    RoleInfo    `json:"role"`
}

// ============================================================================
// Accounts and roles
// ============================================================================

type AccountInfo struct {
	ID             string    `json:"id"`
	Username       string    `json:"nomUtilisateur"`
	Email          string    `json:"email"`
	AuthSource     string    `json:"sourceAuth"`
	RoleID         string    `json:"idRole"`
	FailedAttempts int       `json:"tentativesEchec"`
	Locked         bool      `json:"estBloque"`
	CreatedAt      time.Time `json:"dateCreation"`
	UpdatedAt      time.Time `json:"dateModification"`
}

// AccountUpdateRequest is a partial update. Omitted fields are left alone.
type AccountUpdateRequest struct {
	Username *string `json:"nomUtilisateur,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	RoleID   *string `json:"idRole,omitempty"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type RoleInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"nom"`
	CreatedAt time.Time `json:"dateCreation"`
}

type RoleRequest struct {
	Name string `json:"nom"`
}

// AuthParameterInfo is one runtime-tunable authentication setting.
type AuthParameterInfo struct {
	Key         string    `json:"cle"`
	Value       string    `json:"valeur"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"dateModification"`
}

type AuthParameterRequest struct {
	Value       string `json:"valeur"`
	Description string `json:"description,omitempty"`
}

// ============================================================================
// Reports
// ============================================================================

type ReportInfo struct {
	ID          string              `json:"id"`
	Surface     decimal.NullDecimal `json:"surface"`
	Latitude    decimal.NullDecimal `json:"latitude"`
	Longitude   decimal.NullDecimal `json:"longitude"`
	ReportedAt  time.Time           `json:"dateAjoute"`
	PlaceID     string              `json:"idLieu,omitempty"`
	UserID      string              `json:"idUser"`
	ProblemType string              `json:"typeProbleme,omitempty"`
	Status      string              `json:"statut"`
	Description string              `json:"description,omitempty"`
	ExternalID  string              `json:"firestoreId,omitempty"`
}

// ReportRequest creates or partially updates a report. Numbers may be sent
// as JSON numbers or strings.
type ReportRequest struct {
	Surface     *decimal.Decimal `json:"surface,omitempty"`
	Latitude    *decimal.Decimal `json:"latitude,omitempty"`
	Longitude   *decimal.Decimal `json:"longitude,omitempty"`
	ReportedAt  *time.Time       `json:"dateAjoute,omitempty"`
	PlaceID     *string          `json:"idLieu,omitempty"`
	UserID      *string          `json:"idUser,omitempty"`
	ProblemType *string          `json:"typeProbleme,omitempty"`
	Status      *string          `json:"statut,omitempty"`
	Description *string          `json:"description,omitempty"`
}

type StatusRequest struct {
	Status string `json:"statut"`
}

// StatusUpdateResponse reports the new report state and, when the status
// moved the linked work's progress, the updated work and its history entry.
type StatusUpdateResponse struct {
	Report  ReportInfo       `json:"signalement"`
	Work    *WorkInfo        `json:"travaux,omitempty"`
	History *WorkHistoryInfo `json:"historique,omitempty"`
}

// PullStats counts the outcome of pulling one collection.
type PullStats struct {
	Seen     int `json:"seen"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type SyncResponse struct {
	Reports PullStats `json:"signalements"`
	Works   PullStats `json:"travaux"`
	Error   string    `json:"error,omitempty"`
}

// ============================================================================
// Works and history
// ============================================================================

type WorkInfo struct {
	ID         string              `json:"id"`
	ReportID   string              `json:"idSignalement,omitempty"`
	CompanyID  string              `json:"idEntreprise,omitempty"`
	Budget     decimal.NullDecimal `json:"budget"`
	StartDate  string              `json:"dateDebutTravaux,omitempty"`
	EndDate    string              `json:"dateFinTravaux,omitempty"`
	Progress   decimal.NullDecimal `json:"avancement"`
	ExternalID string              `json:"firestoreId,omitempty"`
	CreatedAt  time.Time           `json:"dateCreation"`
	UpdatedAt  time.Time           `json:"dateModification"`
}

// WorkRequest creates or partially updates a work. Dates use DateLayout and
// an empty id string clears a reference.
type WorkRequest struct {
	ReportID  *string          `json:"idSignalement,omitempty"`
	CompanyID *string          `json:"idEntreprise,omitempty"`
	Budget    *decimal.Decimal `json:"budget,omitempty"`
	Progress  *decimal.Decimal `json:"avancement,omitempty"`
	StartDate *string          `json:"dateDebutTravaux,omitempty"`
	EndDate   *string          `json:"dateFinTravaux,omitempty"`
}

type WorkHistoryInfo struct {
	ID         string              `json:"id"`
	WorkID     string              `json:"idTravaux"`
	ChangedAt  time.Time           `json:"dateModification"`
	Progress   decimal.NullDecimal `json:"avancement"`
	Note       string              `json:"commentaire,omitempty"`
	ExternalID string              `json:"firestoreId,omitempty"`
}

type WorkHistoryRequest struct {
	WorkID    string           `json:"idTravaux,omitempty"`
	ChangedAt *time.Time       `json:"dateModification,omitempty"`
	Progress  *decimal.Decimal `json:"avancement,omitempty"`
	Note      *string          `json:"commentaire,omitempty"`
}

// ============================================================================
// Companies and places
// ============================================================================

type CompanyInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"nom"`
	CreatedAt time.Time `json:"dateCreation"`
}

type CompanyRequest struct {
	Name string `json:"nom"`
}

type PlaceInfo struct {
	ID          string    `json:"id"`
	Label       string    `json:"libelle"`
	City        string    `json:"ville,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"dateCreation"`
}

type PlaceRequest struct {
	Label       string `json:"libelle"`
	City        string `json:"ville,omitempty"`
	Description string `json:"description,omitempty"`
}
