package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dropDatabas3/finanzas/internal/observability/logger"
)

// Server envuelve http.Server con apagado gracioso dirigido por contexto.
type Server struct {
	srv             *http.Server
	shutdownTimeout time.Duration
}

func NewServer(addr string, handler http.Handler, shutdownTimeout time.Duration) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Start sirve hasta que ctx se cancele; después drena con el timeout
// configurado. ErrServerClosed no es un error para el caller.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("http: escuchando", logger.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logger.L().Info("http: apagando", logger.Duration(s.shutdownTimeout))
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
