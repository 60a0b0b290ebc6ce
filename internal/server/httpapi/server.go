// Package httpapi exposes the account/ledger operations over HTTP/JSON:
// sign-up, login, token validation, and per-user transactions.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/logging"
	"github.com/dmitrijs2005/coinkeeper/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	transactions *services.TransactionService
}

func NewServer(a string, l logging.Logger, us *services.UserService, ts *services.TransactionService) *Server {
	return &Server{
		address:      a,
		logger:       l.With("module", "httpapi"),
		users:        us,
		transactions: ts,
	}
}

// Routes assembles the router: public auth endpoints plus a token-guarded
// subtree for everything operating on the current user.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/sign-up", s.handle(s.handleSignUp))
	r.Post("/login", s.handle(s.handleLogin))

	r.Group(func(r chi.Router) {
		r.Use(s.withUser)
		r.Get("/validate", s.handle(s.handleValidate))
		r.Get("/transactions", s.handle(s.handleListTransactions))
		r.Post("/transactions", s.handle(s.handleCreateTransaction))
	})

	r.Get("/healthz", handleHealthCheck)

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
