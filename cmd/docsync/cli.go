package main

import (
	"context"
	"io"

	"github.com/jarlesteinnes/docsync"
	"github.com/jarlesteinnes/docsync/sync"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   *docsync.Config
	Syncer   *sync.Syncer
	Catalogs docsync.CatalogStore
	Webhooks docsync.WebhookStore
	Search   docsync.SearchService
	SyncRuns docsync.SyncRunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every service call to stderr"`

	Sync    SyncCmd    `cmd:"" help:"Scan, publish and notify in one run"`
	Catalog CatalogCmd `cmd:"" help:"Build and write the document catalog"`
	Webhook WebhookCmd `cmd:"" help:"Write the webhook configuration file"`
	Search  SearchCmd  `cmd:"" help:"Search the catalog by name, filename or category"`
	History HistoryCmd `cmd:"" help:"List previous sync runs"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct{}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct {
	Stdout bool `help:"Print the catalog as JSON instead of writing it"`
}

// WebhookCmd is the "webhook" subcommand.
type WebhookCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `default:"10" help:"Maximum number of hits"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit     int  `default:"20" help:"Maximum number of runs"`
	Committed bool `help:"Only runs that created a commit"`
}
