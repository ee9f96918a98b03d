package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/docsync"
	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/metrics"
	"github.com/roadwatch/roadwatch/pkg/slogx"

	_ "github.com/roadwatch/roadwatch/api/roadwatch" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Syncer runs an on-demand pull from the document store.
type Syncer interface {
	SyncIncoming(ctx context.Context) (docsync.PullResult, error)
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// AuthLimit applies to the credential endpoints, keyed by client IP and
	// email. WriteLimit applies to authenticated mutations, keyed by account.
	AuthLimit  httpx.RateLimit
	WriteLimit httpx.RateLimit

	Guard          *service.Guard
	AuthService    *service.AuthService
	AccountService *service.AccountService
	RoleService    *service.RoleService
	ParamsService  *service.ParamsService
	ReportService  *service.ReportService
	WorkService    *service.WorkService
	HistoryService *service.HistoryService
	CompanyService *service.CompanyService
	PlaceService   *service.PlaceService
	SyncService    Syncer
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		AuthLimit:    httpx.AuthLimit,
		WriteLimit:   httpx.WriteLimit,
	}

	// Instrument sits inside the logger so it sees the matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.Instrument,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccounts()
	r.registerRoles()
	r.registerParams()
	r.registerReports()
	r.registerWorks()
	r.registerHistory()
	r.registerCompanies()
	r.registerPlaces()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Roadwatch API
//	@version		0.1.0
//	@description	Road incident reports, repair works and their progress history.
//	@description
//	@description				Reads of reports, works, companies and places are public. Mutations need a session token from /auth/login.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// session authenticates the caller.
func (r *Router) session() httpx.Middleware {
	return httpx.RequireSession(sessionAuthenticator{guard: r.Guard})
}

// manager chains h behind a session, the MANAGER role and the write limit.
func (r *Router) manager(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		r.session(),
		httpx.RequireAnyRole(domain.RoleManager),
		httpx.RateLimitBy(r.WriteLimit, accountKey),
	)
}

// member chains h behind a session and the write limit.
func (r *Router) member(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		r.session(),
		httpx.RateLimitBy(r.WriteLimit, accountKey),
	)
}

// credentials limits h per client IP and submitted email.
func (r *Router) credentials(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.RateLimitBy(r.AuthLimit, httpx.Keys(httpx.ClientIP, httpx.JSONField("email"))),
	)
}

func accountKey(req *http.Request) string {
	if p, ok := httpx.PrincipalFrom(req.Context()); ok {
		return p.AccountID
	}
	return httpx.ClientIP(req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /auth/login", r.credentials(h.HandleLogin))
	r.Mux.Handle("POST /auth/register", r.credentials(h.HandleRegister))

	// ID tokens carry no email field in the body, so these are per IP.
	r.Mux.Handle("POST /auth/firebase-login", r.credentials(h.HandleFirebaseLogin))
	r.Mux.Handle("POST /auth/firebase-register", r.credentials(h.HandleFirebaseRegister))

	r.Mux.Handle("POST /auth/logout", httpx.Chain(http.HandlerFunc(h.HandleLogout), r.session()))
	r.Mux.Handle("POST /auth/logout-all", httpx.Chain(http.HandlerFunc(h.HandleLogoutAll), r.session()))
	r.Mux.Handle("GET /auth/me", httpx.Chain(http.HandlerFunc(h.HandleMe), r.session()))
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{AccountService: r.AccountService}

	r.Mux.Handle("GET /api/utilisateurs", r.manager(h.HandleList))
	r.Mux.Handle("POST /api/utilisateurs", r.manager(h.HandleCreate))
	r.Mux.Handle("GET /api/utilisateurs/search", r.manager(h.HandleSearch))
	r.Mux.Handle("GET /api/utilisateurs/bloques", r.manager(h.HandleLocked))
	r.Mux.Handle("GET /api/utilisateurs/non-bloques", r.manager(h.HandleUnlocked))
	r.Mux.Handle("GET /api/utilisateurs/role/{roleId}", r.manager(h.HandleByRole))
	r.Mux.Handle("GET /api/utilisateurs/exists/nom/{username}", r.manager(h.HandleUsernameExists))
	r.Mux.Handle("GET /api/utilisateurs/exists/email/{email}", r.manager(h.HandleEmailExists))
	r.Mux.Handle("GET /api/utilisateurs/nom/{username}", r.manager(h.HandleGetByUsername))
	r.Mux.Handle("GET /api/utilisateurs/email/{email}", r.manager(h.HandleGetByEmail))
	r.Mux.Handle("GET /api/utilisateurs/{id}", r.manager(h.HandleGet))
	r.Mux.Handle("PUT /api/utilisateurs/{id}", r.manager(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/utilisateurs/{id}", r.manager(h.HandleDelete))
	r.Mux.Handle("PUT /api/utilisateurs/{id}/reinitialiser-tentatives", r.manager(h.HandleUnlock))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RoleService: r.RoleService}

	r.Mux.Handle("GET /api/roles", r.manager(h.HandleList))
	r.Mux.Handle("POST /api/roles", r.manager(h.HandleCreate))
	r.Mux.Handle("GET /api/roles/{id}", r.manager(h.HandleGet))
	r.Mux.Handle("GET /api/roles/nom/{name}", r.manager(h.HandleGetByName))
	r.Mux.Handle("PUT /api/roles/{id}", r.manager(h.HandleRename))
	r.Mux.Handle("DELETE /api/roles/{id}", r.manager(h.HandleDelete))
}

func (r *Router) registerParams() {
	h := &ParamsHandler{ParamsService: r.ParamsService}

	r.Mux.Handle("GET /api/parametres", r.manager(h.HandleList))
	r.Mux.Handle("PUT /api/parametres/{key}", r.manager(h.HandleSet))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportService: r.ReportService, Syncer: r.SyncService}

	// Public reads.
	r.Mux.HandleFunc("GET /api/signalements", h.HandleList)
	r.Mux.HandleFunc("GET /api/signalements/{id}", h.HandleGet)
	r.Mux.HandleFunc("GET /api/signalements/user/{userId}", h.HandleByUser)
	r.Mux.HandleFunc("GET /api/signalements/lieu/{placeId}", h.HandleByPlace)
	r.Mux.HandleFunc("GET /api/signalements/statut/{status}", h.HandleByStatus)
	r.Mux.HandleFunc("GET /api/signalements/type/{type}", h.HandleByType)
	r.Mux.HandleFunc("GET /api/signalements/zone", h.HandleInArea)
	r.Mux.HandleFunc("GET /api/signalements/recents", h.HandleRecent)
	r.Mux.HandleFunc("GET /api/signalements/search", h.HandleSearch)
	r.Mux.HandleFunc("GET /api/signalements/stats", h.HandleStats)

	r.Mux.Handle("POST /api/signalements", r.member(h.HandleCreate))
	r.Mux.Handle("PUT /api/signalements/{id}", r.manager(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/signalements/{id}", r.manager(h.HandleDelete))
	r.Mux.Handle("PUT /api/signalements/{id}/statut", r.manager(h.HandleUpdateStatus))
	r.Mux.Handle("GET /api/signalements/sync", r.manager(h.HandleSync))
}

func (r *Router) registerWorks() {
	h := &WorksHandler{WorkService: r.WorkService, HistoryService: r.HistoryService}

	r.Mux.HandleFunc("GET /api/travaux", h.HandleList)
	r.Mux.HandleFunc("GET /api/travaux/{id}", h.HandleGet)
	r.Mux.HandleFunc("GET /api/travaux/{id}/historique", h.HandleHistory)

	r.Mux.Handle("POST /api/travaux", r.manager(h.HandleCreate))
	r.Mux.Handle("PUT /api/travaux/{id}", r.manager(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/travaux/{id}", r.manager(h.HandleDelete))
	r.Mux.Handle("POST /api/travaux/{id}/historique", r.manager(h.HandleAppendHistory))
}

func (r *Router) registerHistory() {
	h := &HistoryHandler{HistoryService: r.HistoryService}

	r.Mux.HandleFunc("GET /api/historiques-travaux", h.HandleList)
	r.Mux.HandleFunc("GET /api/historiques-travaux/{id}", h.HandleGet)

	r.Mux.Handle("POST /api/historiques-travaux", r.manager(h.HandleCreate))
	r.Mux.Handle("PUT /api/historiques-travaux/{id}", r.manager(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/historiques-travaux/{id}", r.manager(h.HandleDelete))
}

func (r *Router) registerCompanies() {
	h := &CompaniesHandler{CompanyService: r.CompanyService}

	r.Mux.HandleFunc("GET /api/entreprises", h.HandleList)
	r.Mux.HandleFunc("GET /api/entreprises/{id}", h.HandleGet)

	r.Mux.Handle("POST /api/entreprises", r.manager(h.HandleCreate))
	r.Mux.Handle("PUT /api/entreprises/{id}", r.manager(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/entreprises/{id}", r.manager(h.HandleDelete))
}

func (r *Router) registerPlaces() {
	h := &PlacesHandler{PlaceService: r.PlaceService}

	r.Mux.HandleFunc("GET /api/lieux", h.HandleList)
	r.Mux.HandleFunc("GET /api/lieux/{id}", h.HandleGet)
	r.Mux.HandleFunc("GET /api/lieux/ville/{city}", h.HandleByCity)

	r.Mux.Handle("POST /api/lieux", r.manager(h.HandleCreate))
	r.Mux.Handle("PUT /api/lieux/{id}", r.manager(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/lieux/{id}", r.manager(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", metrics.Handler())
}
