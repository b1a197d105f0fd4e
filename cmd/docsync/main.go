package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jarlesteinnes/docsync"
	"github.com/jarlesteinnes/docsync/bleve"
	"github.com/jarlesteinnes/docsync/fs"
	"github.com/jarlesteinnes/docsync/gogit"
	dochttp "github.com/jarlesteinnes/docsync/http"
	docslog "github.com/jarlesteinnes/docsync/slog"
	"github.com/jarlesteinnes/docsync/sqlite"
	"github.com/jarlesteinnes/docsync/sync"
	"github.com/jarlesteinnes/docsync/viper"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration file path. Empty means the optional ./docsync.yaml.
	// Set before calling Run().
	ConfigPath string

	// History database path. Set before calling Run().
	DBPath string

	// SQLite database used by the sync history service.
	DB *sqlite.DB

	// Configuration loaded by Run, for end-to-end testing.
	Config *docsync.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: os.Getenv("DOCSYNC_CONFIG"),
		DBPath:     defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsync"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsync --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Load configuration
	cfg, err := viper.Load(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSYNC_CONFIG to use a different configuration file\n")
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	m.Config = cfg
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire command-specific dependencies based on command
	switch command {
	case "sync":
		// The working tree must be a git repository before any catalog
		// work starts.
		repo := gogit.NewRepository(cfg.Root)
		if err := repo.Open(); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", docsync.ErrorMessage(err))
			return err
		}

		scanner := docsync.Scanner(fs.NewScanner(cfg.Root, cfg.Extension, logger))
		repository := docsync.Repository(repo)
		if cli.Verbose {
			scanner = docslog.NewLoggingScanner(scanner, logger)
			repository = docslog.NewLoggingRepository(repository, logger)
		}

		var notifier docsync.NotificationSink
		if cfg.Notify.Endpoint != "" {
			notifier = dochttp.NewNotificationSink(cfg.Notify.Endpoint, nil)
		} else {
			notifier = docslog.NewNotificationSink(logger)
		}

		syncer := &sync.Syncer{
			Scanner:    scanner,
			Catalogs:   fs.NewCatalogStore(filepath.Join(cfg.Root, cfg.CatalogPath)),
			Repository: repository,
			Notifier:   notifier,
			Webhooks:   fs.NewWebhookStore(filepath.Join(cfg.Root, cfg.WebhookPath)),
			Config:     cfg,
		}
		if cfg.SitemapPath != "" {
			syncer.Sitemaps = fs.NewSitemapWriter(filepath.Join(cfg.Root, cfg.SitemapPath))
		}

		// History is a supplement; a broken database never blocks a sync.
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "warning: sync history disabled: %v\n", err)
			m.DB = nil
		} else {
			defer m.Close()
			syncer.SyncRuns = sqlite.NewSyncRunService(m.DB)
		}

		deps.Syncer = syncer

	case "catalog":
		scanner := docsync.Scanner(fs.NewScanner(cfg.Root, cfg.Extension, logger))
		if cli.Verbose {
			scanner = docslog.NewLoggingScanner(scanner, logger)
		}
		deps.Syncer = &sync.Syncer{Scanner: scanner, Config: cfg}
		deps.Catalogs = fs.NewCatalogStore(filepath.Join(cfg.Root, cfg.CatalogPath))

	case "webhook":
		deps.Webhooks = fs.NewWebhookStore(filepath.Join(cfg.Root, cfg.WebhookPath))

	case "search":
		deps.Catalogs = fs.NewCatalogStore(filepath.Join(cfg.Root, cfg.CatalogPath))
		search, err := bleve.NewSearchService()
		if err != nil {
			return fmt.Errorf("failed to create search index: %w", err)
		}
		defer search.Close()
		deps.Search = search

	case "history":
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCSYNC_DB to use a different database path\n")
			return fmt.Errorf("failed to open history database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.SyncRuns = sqlite.NewSyncRunService(m.DB)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSYNC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsync.db"
	}
	dir := filepath.Join(home, ".docsync")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsync.db")
}
