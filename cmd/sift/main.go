package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sift"
	sifteetree "github.com/fwojciec/sift/etree"
	sifthtml "github.com/fwojciec/sift/html"
	sifthttp "github.com/fwojciec/sift/http"
	"github.com/fwojciec/sift/search"
	siftslog "github.com/fwojciec/sift/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath is an optional JSON file with flag defaults. Missing files
	// are ignored. Set before calling Run().
	ConfigPath string

	// Stdin feeds the stdio MCP transport.
	Stdin io.Reader

	// Fetcher replaces the HTTP fetcher for end-to-end testing.
	Fetcher sift.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	options := []kong.Option{
		kong.Name("sift"),
		kong.Description("Search the web, read news feeds and fetch pages as clean plain text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	}
	if m.ConfigPath != "" {
		options = append(options, kong.Configuration(kong.JSON, m.ConfigPath))
	}
	parser, err := kong.New(cli, options...)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = sifthttp.NewFetcher(cli.fetcherOptions()...)
	}
	defer fetcher.Close()

	normalizer := sifthtml.NewNormalizer()
	service := &search.Service{
		Fetcher:        siftslog.NewLoggingFetcher(fetcher, logger),
		Results:        siftslog.NewLoggingResultParser(sifthtml.NewResultParser(), logger),
		Feeds:          siftslog.NewLoggingFeedParser(sifteetree.NewFeedParser(normalizer), logger),
		Normalizer:     normalizer,
		AllowList:      sift.NewAllowList(cli.AllowedDomains...),
		SearchEndpoint: cli.SearchEndpoint,
		NewsEndpoint:   cli.NewsEndpoint,
		Locale:         search.Locale{Language: cli.NewsLanguage, Country: cli.NewsCountry},
	}
	deps.Service = siftslog.NewLoggingService(service, logger)

	return kongCtx.Run(deps)
}

func defaultConfigPath() string {
	if path := os.Getenv("SIFT_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sift", "config.json")
}
