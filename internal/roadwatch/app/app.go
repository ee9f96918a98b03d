package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/roadwatch/roadwatch/internal/roadwatch/docsync"
	httpapi "github.com/roadwatch/roadwatch/internal/roadwatch/http"
	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store/drivers/sqlite"
	"github.com/roadwatch/roadwatch/pkg/cryptox"
	"github.com/roadwatch/roadwatch/pkg/docstore"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/identity"
	"github.com/roadwatch/roadwatch/pkg/jwtx"
	"github.com/roadwatch/roadwatch/pkg/metrics"
	"github.com/roadwatch/roadwatch/pkg/notify"
	"github.com/roadwatch/roadwatch/pkg/slogx"
	"google.golang.org/api/option"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	paramsCacheTTL = time.Minute
)

// Application holds the roadwatch backend and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	hasher   *cryptox.PasswordHasher
	docs     docstore.Store // nil without Firebase
	verifier identity.Verifier
	notifier notify.Notifier
	redis    *redis.Client

	// closers run in reverse order on shutdown
	closers []io.Closer

	// Services
	params       *service.ParamsService
	guard        *service.Guard
	auth         *service.AuthService
	accounts     *service.AccountService
	reports      *service.ReportService
	works        *service.WorkService
	history      *service.HistoryService
	engine       *docsync.Engine // nil without a document store
	housekeeping *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "roadwatch",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}
	metrics.Init(BuildVersion)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := app.initExternal(ctx); err != nil {
		app.close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		app.close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Seed applies the YAML seed at path.
func (app *Application) Seed(ctx context.Context, path string) error {
	seed, err := LoadSeed(path)
	if err != nil {
		return err
	}
	res, err := ApplySeed(ctx, app.db, seed)
	if err != nil {
		return fmt.Errorf("failed to apply seed: %w", err)
	}
	app.params.Invalidate()

	app.logger.Info("seed applied",
		"file", path,
		"roles", res.Roles,
		"auth_parameters", res.AuthParameters,
		"companies", res.Companies,
		"places", res.Places,
	)
	return nil
}

// SyncOnce runs a single pull and releases every resource.
func (app *Application) SyncOnce(ctx context.Context) (docsync.PullResult, error) {
	defer app.close()

	if app.engine == nil {
		return docsync.PullResult{}, errors.New("sync requires FIREBASE_PROJECT_ID")
	}
	return app.engine.SyncIncoming(ctx)
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeeping.Start()

	app.logger.Info("roadwatch starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"sync", app.engine != nil,
		"distributed_lock", app.redis != nil,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeeping.Stop()
			app.close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains HTTP requests, stops background work and closes every
// connection.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down roadwatch...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeeping.Stop()

	if err := app.close(); err != nil {
		return err
	}

	app.logger.Info("roadwatch stopped")
	return nil
}

// close releases external clients, then the database.
func (app *Application) close() error {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			app.logger.Error("error closing client", "error", err)
		}
	}
	app.closers = nil

	if app.db == nil {
		return nil
	}
	err := app.db.Close()
	app.db = nil
	if err != nil {
		app.logger.Error("error closing database", "error", err)
	}
	return err
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		app.db = nil
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initExternal connects the password pepper, Firebase, Redis and Kafka. Every
// backend except the database is optional.
func (app *Application) initExternal(ctx context.Context) error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	var notifiers notify.Fanout

	if app.cfg.FirebaseProjectID != "" {
		fb, err := app.initFirebase(ctx)
		if err != nil {
			return err
		}

		fs, err := fb.Firestore(ctx)
		if err != nil {
			return fmt.Errorf("failed to open firestore: %w", err)
		}
		docs := docstore.NewFirestore(fs)
		app.docs = docs
		app.closers = append(app.closers, docs)

		msg, err := fb.Messaging(ctx)
		if err != nil {
			return fmt.Errorf("failed to open firebase messaging: %w", err)
		}
		notifiers = append(notifiers, notify.NewFCM(msg))

		keys := jwtx.NewRemoteKeySet(jwtx.GoogleSecureTokenJWKS)
		app.verifier = identity.NewFirebase(app.cfg.FirebaseProjectID, keys)
		app.logger.Info("firebase enabled", "project_id", app.cfg.FirebaseProjectID)
	} else {
		// No federated tokens can be verified.
		app.verifier = identity.Static{}
		app.logger.Warn("firebase disabled, federated login and sync are unavailable")
	}

	if app.cfg.RedisURL != "" {
		client, err := docsync.ConnectRedis(ctx, app.cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.redis = client
		app.closers = append(app.closers, client)
	}

	if len(app.cfg.KafkaBrokers) > 0 {
		k, err := notify.NewKafka(app.cfg.KafkaBrokers, app.cfg.KafkaNotifyTopic)
		if err != nil {
			return fmt.Errorf("failed to configure kafka: %w", err)
		}
		notifiers = append(notifiers, k)
		app.closers = append(app.closers, k)
	}

	if len(notifiers) == 0 {
		notifiers = append(notifiers, notify.Log{Logger: slogx.Component(app.logger, "notify")})
	}
	app.notifier = notifiers
	return nil
}

func (app *Application) initFirebase(ctx context.Context) (*firebase.App, error) {
	var opts []option.ClientOption
	if app.cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(app.cfg.FirebaseCredentialsFile))
	}

	fb, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: app.cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase: %w", err)
	}
	return fb, nil
}

// initServices builds the business services.
func (app *Application) initServices() error {
	app.params = service.NewParamsService(app.db, slogx.Component(app.logger, "params"), paramsCacheTTL)
	app.guard = &service.Guard{
		Store:  app.db,
		Params: app.params,
		Logger: slogx.Component(app.logger, "guard"),
	}
	app.auth = &service.AuthService{
		Store:    app.db,
		Guard:    app.guard,
		Hasher:   app.hasher,
		Identity: app.verifier,
	}
	app.accounts = &service.AccountService{Store: app.db, Guard: app.guard, Hasher: app.hasher}

	var hooks service.Hooks
	if app.docs != nil {
		var locker docsync.Locker
		if app.redis != nil {
			locker = docsync.NewRedisLocker(app.redis, slogx.Component(app.logger, "lock"))
		}
		app.engine = docsync.NewEngine(app.db, app.docs, locker, slogx.Component(app.logger, "sync"))
		app.engine.PushTimeout = app.cfg.SyncPushTimeout
		app.engine.PullTimeout = app.cfg.SyncPullTimeout
		hooks = app.engine
	}

	var notifier service.ReportNotifier
	if app.docs != nil {
		notifier = &service.StatusNotifier{Users: app.docs, Notifier: app.notifier}
	}

	app.reports = &service.ReportService{Store: app.db, Hooks: hooks, Notifier: notifier}
	app.works = &service.WorkService{Store: app.db, Hooks: hooks}
	app.history = &service.HistoryService{Store: app.db, Hooks: hooks}

	app.housekeeping = service.NewHousekeepingService(
		app.db,
		slogx.Component(app.logger, "housekeeping"),
		app.cfg.HousekeepingInterval,
		app.cfg.SessionRetention,
	)
	if app.engine != nil && app.cfg.SyncPullInterval > 0 {
		engine := app.engine
		app.housekeeping.Pull = func(ctx context.Context) error {
			_, err := engine.SyncIncoming(ctx)
			return err
		}
		app.housekeeping.PullInterval = app.cfg.SyncPullInterval
	}

	if app.cfg.SeedFile != "" {
		if err := app.Seed(context.Background(), app.cfg.SeedFile); err != nil {
			return err
		}
	}
	return nil
}

// initHTTP builds the router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.AuthLimit = httpx.RateLimit{Requests: app.cfg.AuthRateLimit, Window: time.Minute, Burst: app.cfg.AuthRateBurst}
	router.WriteLimit = httpx.RateLimit{Requests: app.cfg.WriteRateLimit, Window: time.Minute, Burst: app.cfg.WriteRateBurst}

	router.Guard = app.guard
	router.AuthService = app.auth
	router.AccountService = app.accounts
	router.RoleService = &service.RoleService{Store: app.db}
	router.ParamsService = app.params
	router.ReportService = app.reports
	router.WorkService = app.works
	router.HistoryService = app.history
	router.CompanyService = &service.CompanyService{Store: app.db}
	router.PlaceService = &service.PlaceService{Store: app.db}
	if app.engine != nil {
		router.SyncService = app.engine
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
