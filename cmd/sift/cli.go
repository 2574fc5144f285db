package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sift"
	sifthttp "github.com/fwojciec/sift/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service sift.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	AllowedDomains []string      `name:"allowed-domain" short:"d" env:"SIFT_ALLOWED_DOMAINS" sep:"," help:"Only return web results from this domain or its subdomains (repeatable)"`
	Timeout        time.Duration `default:"10s" env:"SIFT_TIMEOUT" help:"HTTP request timeout"`
	UserAgent      string        `name:"user-agent" env:"SIFT_USER_AGENT" help:"User-Agent header sent with every request"`
	RateLimit      float64       `name:"rate-limit" default:"0" env:"SIFT_RATE_LIMIT" help:"Requests per second per host, 0 disables"`
	SearchEndpoint string        `name:"search-endpoint" env:"SIFT_SEARCH_ENDPOINT" help:"Results page queried by search"`
	NewsEndpoint   string        `name:"news-endpoint" env:"SIFT_NEWS_ENDPOINT" help:"RSS endpoint queried by news"`
	NewsLanguage   string        `name:"news-language" env:"SIFT_NEWS_LANGUAGE" placeholder:"en-US" help:"News edition language"`
	NewsCountry    string        `name:"news-country" env:"SIFT_NEWS_COUNTRY" placeholder:"US" help:"News edition country"`
	Verbose        bool          `short:"v" help:"Log parser details"`

	Search SearchCmd `cmd:"" help:"Search the web"`
	News   NewsCmd   `cmd:"" help:"Search news headlines"`
	Fetch  FetchCmd  `cmd:"" help:"Fetch a page as plain text"`
	Serve  ServeCmd  `cmd:"" help:"Serve the tools over the Model Context Protocol"`
}

func (c *CLI) fetcherOptions() []sifthttp.Option {
	opts := []sifthttp.Option{
		sifthttp.WithTimeout(c.Timeout),
		sifthttp.WithRateLimit(c.RateLimit),
	}
	if c.UserAgent != "" {
		opts = append(opts, sifthttp.WithUserAgent(c.UserAgent))
	}
	return opts
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query      []string `arg:"" help:"Search terms"`
	MaxResults int      `short:"n" name:"max-results" default:"5" help:"Maximum number of results"`
}

// NewsCmd is the "news" subcommand.
type NewsCmd struct {
	Query      []string `arg:"" help:"Search terms"`
	MaxResults int      `short:"n" name:"max-results" default:"5" help:"Maximum number of articles"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL       string `arg:"" help:"Page URL"`
	MaxLength int    `short:"m" name:"max-length" default:"8000" help:"Maximum number of characters"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Transport string `short:"t" enum:"stdio,http" default:"stdio" help:"Transport to serve on (stdio, http)"`
	Addr      string `default:"localhost:3001" help:"Listen address for the http transport"`
}
