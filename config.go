package docsync

import "time"

// Category is one fixed classification bucket documents are grouped into.
// The set of categories is closed and defined by configuration.
type Category struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
}

// Config carries all process-wide settings. It is constructed once at
// startup and passed explicitly into each component; nothing mutates it
// afterwards.
type Config struct {
	// Root is the working directory holding one subdirectory per category.
	Root string `json:"root"`

	// BaseURL is the public root under which published documents are served.
	BaseURL string `json:"baseUrl"`

	// Extension accepted for document files, including the leading dot.
	// Matching compares extensions exactly.
	Extension string `json:"extension"`

	// Version is the catalog schema version string.
	Version string `json:"version"`

	// CatalogPath is where the catalog JSON is written, relative to Root.
	CatalogPath string `json:"catalogPath"`

	// WebhookPath is where the webhook configuration is written, relative
	// to Root.
	WebhookPath string `json:"webhookPath"`

	// SitemapPath is where the sitemap is written, relative to Root.
	// Empty disables the sitemap.
	SitemapPath string `json:"sitemapPath"`

	// Remote and Branch name the push target.
	Remote string `json:"remote"`
	Branch string `json:"branch"`

	// CommitPrefix is the descriptive part of the publish commit message;
	// a timestamp is appended.
	CommitPrefix string `json:"commitPrefix"`

	// PushTimeout bounds the remote push.
	PushTimeout time.Duration `json:"pushTimeout"`

	// Categories is the fixed ordered category list.
	Categories []Category `json:"categories"`

	Notify  NotifyConfig    `json:"notify"`
	Webhook WebhookSettings `json:"webhook"`
}

// NotifyConfig controls the change notification dispatch.
type NotifyConfig struct {
	// Endpoint receives the notification POST. Empty keeps dispatch
	// log-only.
	Endpoint string `json:"endpoint"`

	// EventType tags the dispatched notification.
	EventType string `json:"eventType"`
}

// WebhookSettings are the variable fields of the generated webhook
// configuration document.
type WebhookSettings struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Secret      string `json:"secret"`
}

// DefaultConfig returns the stock configuration for the BNTF document
// repository.
func DefaultConfig() *Config {
	return &Config{
		Root:         ".",
		BaseURL:      "https://raw.githubusercontent.com/jarlesteinnes-bot/bntf-union-documents/main",
		Extension:    ".pdf",
		Version:      "2.0",
		CatalogPath:  "pdf-index.json",
		WebhookPath:  "webhook-config.json",
		SitemapPath:  "sitemap.xml",
		Remote:       "origin",
		Branch:       "main",
		CommitPrefix: "Auto-update: Documents synced with Særavtale BNTF",
		PushTimeout:  2 * time.Minute,
		Categories: []Category{
			{Name: "protokoller", DisplayName: "Protokoller", Icon: "📋"},
			{Name: "vedtekter", DisplayName: "Vedtekter", Icon: "📜"},
			{Name: "særavtale_bntf", DisplayName: "Særavtale BNTF", Icon: "🚁"},
			{Name: "hovedavtalen", DisplayName: "Hovedavtalen YS/NHO", Icon: "🏢"},
			{Name: "overenskomsten", DisplayName: "Overenskomsten", Icon: "📄"},
			{Name: "other", DisplayName: "Other", Icon: "📁"},
		},
		Notify: NotifyConfig{
			EventType: "document_update",
		},
		Webhook: WebhookSettings{
			Name:        "BNTF Document Auto-Update",
			Description: "Automatically updates iOS app when documents change",
			URL:         "https://api.bntf.no/webhook/document-update",
			Secret:      "bntf-document-webhook-secret",
		},
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if c.Extension == "" {
		return Errorf(EINVALID, "document extension required")
	}
	if c.CatalogPath == "" {
		return Errorf(EINVALID, "catalog path required")
	}
	if len(c.Categories) == 0 {
		return Errorf(EINVALID, "at least one category required")
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return Errorf(EINVALID, "category name required")
		}
		if seen[cat.Name] {
			return Errorf(EINVALID, "duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
	}
	return nil
}

// CategoryNames returns the configured category names in order.
func (c *Config) CategoryNames() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}
