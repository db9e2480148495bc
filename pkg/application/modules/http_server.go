package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"pet_market/pkg/logx"
)

// HTTPServer runs an HTTP server in the group and shuts it down gracefully
// once ctx is done.
type HTTPServer struct {
	Name            string
	ShutdownTimeout time.Duration
}

// Run binds the listener before returning, so an occupied port is reported
// to the caller instead of failing the group later.
func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) error {
	listener, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	log := logger(ctx).With(
		slog.String("server", h.Name),
		slog.String("address", listener.Addr().String()),
	)

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				log.Error("server.Shutdown", logx.Error(err))
			}
		}()

		log.Info("http server started")

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.Serve: %w", err)
		}

		log.Info("http server stopped")

		return nil
	})

	return nil
}
