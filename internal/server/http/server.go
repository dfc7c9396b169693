// Package http exposes the VetLig API over HTTP: registration, the
// form-encoded login exchange, the verified-vet directory, and the
// current-user endpoint guarded by bearer-token auth.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetlig/vetlig/internal/logging"
	"github.com/vetlig/vetlig/internal/server/auth"
	"github.com/vetlig/vetlig/internal/server/services"
)

type Server struct {
	address  string
	logger   logging.Logger
	users    *services.UserService
	vets     *services.VetService
	resolver *auth.Resolver
}

func NewServer(address string, l logging.Logger, us *services.UserService, vs *services.VetService, r *auth.Resolver) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		users:    us,
		vets:     vs,
		resolver: r,
	}
}

// Router builds the gin engine with all routes attached. Split out from Run
// so tests can drive the full stack through httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestIDMiddleware())

	router.GET("/health", s.handleHealth)

	router.POST("/auth/register", s.handleRegister)
	router.POST("/auth/login", s.handleLogin)

	router.GET("/vets", s.handleVets)

	authed := router.Group("/")
	authed.Use(s.requireAuth())
	authed.GET("/users/me", s.handleMe)

	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
