package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	siftmcp "github.com/fwojciec/sift/mcp"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight HTTP requests may take to finish.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := siftmcp.NewServer(deps.Service, deps.Logger)

	if c.Transport == "http" {
		return c.serveHTTP(deps, server.Handler())
	}

	deps.Logger.Info("serving MCP over stdio")
	return server.ServeStdio(deps.Ctx, deps.Stdin, deps.Stdout)
}

func (c *ServeCmd) serveHTTP(deps *Dependencies, handler http.Handler) error {
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		deps.Logger.Info("serving MCP over HTTP", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
