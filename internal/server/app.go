// Package server initializes and runs the VetLig backend application.
// It opens the database, applies pending migrations, wires the auth and
// matching services, and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/vetlig/vetlig/internal/logging"
	"github.com/vetlig/vetlig/internal/server/auth"
	"github.com/vetlig/vetlig/internal/server/config"
	httpserver "github.com/vetlig/vetlig/internal/server/http"
	"github.com/vetlig/vetlig/internal/server/repositories/repomanager"
	"github.com/vetlig/vetlig/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	vetService  *services.VetService
	resolver    *auth.Resolver
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	tokens, err := auth.NewTokenService(
		[]byte(cfg.SecretKey), cfg.SigningAlgorithm, cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token service init error: %w", err)
	}
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	us := services.NewUserService(db, rm, hasher, tokens)
	vs := services.NewVetService(db, rm)
	resolver := auth.NewResolver(tokens, rm.Users(db))

	return &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		userService: us,
		vetService:  vs,
		resolver:    resolver,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpserver.NewServer(
		app.config.EndpointAddrHTTP, app.logger, app.userService, app.vetService, app.resolver)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
