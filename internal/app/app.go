package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/config"
	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/middleware"
	"github.com/hrstack/hrms/internal/module/appraisal"
	"github.com/hrstack/hrms/internal/module/auth"
	"github.com/hrstack/hrms/internal/module/branch"
	"github.com/hrstack/hrms/internal/module/candidate"
	"github.com/hrstack/hrms/internal/module/contract"
	"github.com/hrstack/hrms/internal/module/moduleref"
	"github.com/hrstack/hrms/internal/module/statutoryrate"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	jwtSvc jwt.Service
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the database, every business module (repository →
// service → handler), middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database with connection pool configuration.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.Branch{},
			&domain.Module{},
			&domain.Candidate{},
			&domain.EmploymentContract{},
			&domain.Appraisal{},
			&domain.StatutoryRate{},
			&domain.User{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Manual dependency injection: repository → service → handler → module.
	candidateRepo := candidate.NewCandidateRepository(db)

	modules := []Module{
		branch.NewModule(branch.NewBranchHandler(branch.NewBranchService(branch.NewBranchRepository(db)))),
		moduleref.NewModule(moduleref.NewModuleHandler(moduleref.NewModuleService(moduleref.NewModuleRepository(db)))),
		candidate.NewModule(candidate.NewCandidateHandler(candidate.NewCandidateService(candidateRepo))),
		contract.NewModule(contract.NewContractHandler(contract.NewContractService(contract.NewContractRepository(db), candidateRepo))),
		appraisal.NewModule(appraisal.NewAppraisalHandler(appraisal.NewAppraisalService(appraisal.NewAppraisalRepository(db), candidateRepo))),
		statutoryrate.NewModule(statutoryrate.NewRateHandler(statutoryrate.NewRateService(statutoryrate.NewRateRepository(db)))),
	}

	var jwtSvc jwt.Service
	if cfg.Auth.Enabled {
		jwtSvc, err = jwt.New(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("setup jwt service: %w", err)
		}
		authSvc := auth.NewService(jwtSvc, auth.NewUserRepository(db), cfg.TokenExpiryDuration())
		modules = append(modules, auth.NewModule(auth.NewHandler(authSvc)))
	}

	// 5. Create Gin engine with custom middleware (not gin.Default()).
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 6. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules: modules,
		DB:      db,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		jwtSvc: jwtSvc,
		cfg:    cfg,
	}, nil
}

func resolveCORSConfig(mode string, cc config.CORSConfig) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(cc.AllowMethods) > 0 {
		corsConfig.AllowMethods = cc.AllowMethods
	}
	if len(cc.AllowHeaders) > 0 {
		corsConfig.AllowHeaders = cc.AllowHeaders
	}
	corsConfig.AllowCredentials = cc.AllowCredentials
	if cc.MaxAge != "" {
		if d, err := time.ParseDuration(cc.MaxAge); err == nil && d > 0 {
			corsConfig.MaxAge = strconv.Itoa(int(d.Seconds()))
		}
	}

	if len(cc.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cc.AllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout, then closes the
// database connection, the token service, and the logger.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		a.logf().Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		a.logf().Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logf().Error("server shutdown error", slog.Any("error", err))
		}
	}

	// Close database connection.
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logf().Error("database close error", slog.Any("error", err))
			} else {
				a.logf().Info("database connection closed")
			}
		}
	}

	// Stop the token service's background cleanup.
	if a.jwtSvc != nil {
		a.jwtSvc.Close()
	}

	a.logf().Info("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}

	if runErr != nil {
		return runErr
	}

	return nil
}

// logf returns the application logger, falling back to slog.Default when it
// has not been set (partially constructed App in tests).
func (a *App) logf() *slog.Logger {
	if a.logger != nil {
		return a.logger.Logger
	}
	return slog.Default()
}
