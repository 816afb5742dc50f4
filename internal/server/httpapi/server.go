// Package httpapi binds the auth and vault services to an HTTP JSON API.
// Routes, payload shapes and error kinds are the outward contract; all
// decisions live in the services underneath.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/vault"
)

// authSvc is the slice of users.Service the handlers need.
type authSvc interface {
	Signup(ctx context.Context, name, email, password, secretKey string) (string, error)
	Login(ctx context.Context, email, password, secretKey string) (string, error)
}

// vaultSvc is the slice of vault.Service the handlers need.
type vaultSvc interface {
	Save(ctx context.Context, userID, siteName, link, password string) error
	List(ctx context.Context, userID string) ([]*vault.Item, error)
	Delete(ctx context.Context, userID string, itemID string) error
}

type HTTPServer struct {
	address string
	logger  logging.Logger
	auth    authSvc
	vault   vaultSvc
}

func NewHTTPServer(a string, l logging.Logger, as authSvc, vs vaultSvc) (*HTTPServer, error) {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		auth:    as,
		vault:   vs,
	}, nil
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.setupRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
