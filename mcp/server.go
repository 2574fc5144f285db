// Package mcp exposes sift's operations as Model Context Protocol tools
// using github.com/mark3labs/mcp-go.
package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/fwojciec/sift"
	srv "github.com/mark3labs/mcp-go/server"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "sift"
	Version = "1.0.0"
)

// Server wraps the MCP server state for the stdio and HTTP transports.
type Server struct {
	mcp    *srv.MCPServer
	logger *slog.Logger
}

// NewServer constructs an MCP server with the web_search, news_search and
// fetch_content tools backed by service.
func NewServer(service sift.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "mcp")

	mcpServer := srv.NewMCPServer(
		Name,
		Version,
		srv.WithToolCapabilities(true),
		srv.WithInstructions("Use web_search to find pages, news_search for current headlines and fetch_content to read a page as plain text."),
		srv.WithRecovery(),
	)

	webSearch := NewWebSearchTool(service, logger)
	mcpServer.AddTool(webSearch.Definition(), webSearch.Handle)

	newsSearch := NewNewsSearchTool(service, logger)
	mcpServer.AddTool(newsSearch.Definition(), newsSearch.Handle)

	fetchContent := NewFetchContentTool(service, logger)
	mcpServer.AddTool(fetchContent.Definition(), fetchContent.Handle)

	return &Server{mcp: mcpServer, logger: logger}
}

// Handler returns the streamable HTTP handler that should be mounted to
// serve MCP traffic.
func (s *Server) Handler() http.Handler {
	return srv.NewStreamableHTTPServer(s.mcp)
}

// ServeStdio serves MCP over newline-delimited JSON-RPC on in and out until
// ctx is done or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := srv.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
