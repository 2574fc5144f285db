package mcp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/sift"
	mcp "github.com/mark3labs/mcp-go/mcp"
)

// Tool argument defaults.
const (
	DefaultMaxResults = 5
	DefaultMaxLength  = 8000
)

// WebSearchTool implements the web_search MCP tool.
type WebSearchTool struct {
	service sift.Service
	logger  *slog.Logger
}

// NewWebSearchTool constructs a WebSearchTool.
func NewWebSearchTool(service sift.Service, logger *slog.Logger) *WebSearchTool {
	return &WebSearchTool{service: service, logger: logger}
}

// Definition returns the MCP metadata describing the tool.
func (t *WebSearchTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"web_search",
		mcp.WithDescription("Search the web and return the top hits with title, URL and snippet."),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("Plain text search query."),
		),
		mcp.WithNumber(
			"max_results",
			mcp.Description("Maximum number of results to return."),
			mcp.DefaultNumber(DefaultMaxResults),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle runs a web search.
func (t *WebSearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, errResult := requireText(req, "query")
	if errResult != nil {
		return errResult, nil
	}

	out, err := t.service.SearchWeb(ctx, query, readIntArgWithDefault(req, "max_results", DefaultMaxResults))
	if err != nil {
		t.logger.Warn("web_search failed", "query", query, "err", err)
		return mcp.NewToolResultError(sift.ErrorMessage(err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// NewsSearchTool implements the news_search MCP tool.
type NewsSearchTool struct {
	service sift.Service
	logger  *slog.Logger
}

// NewNewsSearchTool constructs a NewsSearchTool.
func NewNewsSearchTool(service sift.Service, logger *slog.Logger) *NewsSearchTool {
	return &NewsSearchTool{service: service, logger: logger}
}

// Definition returns the MCP metadata describing the tool.
func (t *NewsSearchTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"news_search",
		mcp.WithDescription("Search current news and return headlines with URL, source and publish date."),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("Plain text search query."),
		),
		mcp.WithNumber(
			"max_results",
			mcp.Description("Maximum number of articles to return."),
			mcp.DefaultNumber(DefaultMaxResults),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle runs a news search.
func (t *NewsSearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, errResult := requireText(req, "query")
	if errResult != nil {
		return errResult, nil
	}

	out, err := t.service.SearchNews(ctx, query, readIntArgWithDefault(req, "max_results", DefaultMaxResults))
	if err != nil {
		t.logger.Warn("news_search failed", "query", query, "err", err)
		return mcp.NewToolResultError(sift.ErrorMessage(err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// FetchContentTool implements the fetch_content MCP tool.
type FetchContentTool struct {
	service sift.Service
	logger  *slog.Logger
}

// NewFetchContentTool constructs a FetchContentTool.
func NewFetchContentTool(service sift.Service, logger *slog.Logger) *FetchContentTool {
	return &FetchContentTool{service: service, logger: logger}
}

// Definition returns the MCP metadata describing the tool.
func (t *FetchContentTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_content",
		mcp.WithDescription("Load a web page and return its readable text so the article or page can be presented."),
		mcp.WithString(
			"url",
			mcp.Required(),
			mcp.Description("The URL of the page to load."),
		),
		mcp.WithNumber(
			"max_length",
			mcp.Description("Maximum number of characters to return."),
			mcp.DefaultNumber(DefaultMaxLength),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle fetches and normalizes a page.
func (t *FetchContentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, errResult := requireText(req, "url")
	if errResult != nil {
		return errResult, nil
	}

	out, err := t.service.FetchContent(ctx, url, readIntArgWithDefault(req, "max_length", DefaultMaxLength))
	if err != nil {
		t.logger.Warn("fetch_content failed", "url", url, "err", err)
		return mcp.NewToolResultError(sift.ErrorMessage(err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// requireText extracts a required non-blank string argument. The returned
// result is non-nil when the argument is missing or blank.
func requireText(req mcp.CallToolRequest, key string) (string, *mcp.CallToolResult) {
	value, err := req.RequireString(key)
	if err != nil {
		return "", mcp.NewToolResultError(err.Error())
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", mcp.NewToolResultError(key + " cannot be empty")
	}
	return value, nil
}

// readIntArgWithDefault extracts an optional int argument with a default fallback.
func readIntArgWithDefault(req mcp.CallToolRequest, key string, def int) int {
	if req.Params.Arguments == nil {
		return def
	}
	if raw, ok := req.Params.Arguments.(map[string]any); ok {
		if _, exists := raw[key]; !exists {
			return def
		}
		switch value := raw[key].(type) {
		case int:
			return value
		case int64:
			return int(value)
		case float64:
			return int(value)
		}
	}
	return def
}
