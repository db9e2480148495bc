package modules_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"pet_market/pkg/application/modules"
)

func TestHTTPServer(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	rq.NoError(err)

	address := listener.Addr().String()
	rq.NoError(listener.Close())

	g, ctx := errgroup.WithContext(ctx)

	module := modules.HTTPServer{Name: "api", ShutdownTimeout: time.Second}
	rq.NoError(module.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr: address,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("ok")) //nolint:errcheck
		}),
		ReadHeaderTimeout: time.Second,
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+address+"/", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.NoError(resp.Body.Close())
	rq.Equal("ok", string(body))

	cancel()
	rq.NoError(g.Wait())
}

func TestHTTPServerAddressInUse(t *testing.T) {
	rq := require.New(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	rq.NoError(err)

	defer listener.Close()

	g, ctx := errgroup.WithContext(context.Background())

	err = modules.HTTPServer{Name: "api", ShutdownTimeout: time.Second}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:              listener.Addr().String(),
		ReadHeaderTimeout: time.Second,
	})
	rq.ErrorContains(err, "net.Listen")
	rq.NoError(g.Wait())
}
