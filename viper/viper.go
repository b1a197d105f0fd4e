// Package viper loads docsync configuration from defaults, an optional
// config file, and DOCSYNC_-prefixed environment variables.
package viper

import (
	"errors"
	"strings"
	"time"

	"github.com/jarlesteinnes/docsync"
	"github.com/spf13/viper"
)

// schema mirrors docsync.Config with the keys accepted in config files and
// environment variables.
type schema struct {
	Root         string        `mapstructure:"root"`
	BaseURL      string        `mapstructure:"base_url"`
	Extension    string        `mapstructure:"extension"`
	Version      string        `mapstructure:"version"`
	CatalogPath  string        `mapstructure:"catalog_path"`
	WebhookPath  string        `mapstructure:"webhook_path"`
	SitemapPath  string        `mapstructure:"sitemap_path"`
	Remote       string        `mapstructure:"remote"`
	Branch       string        `mapstructure:"branch"`
	CommitPrefix string        `mapstructure:"commit_prefix"`
	PushTimeout  time.Duration `mapstructure:"push_timeout"`
	Categories   []category    `mapstructure:"categories"`
	Notify       notify        `mapstructure:"notify"`
	Webhook      webhook       `mapstructure:"webhook"`
}

type category struct {
	Name        string `mapstructure:"name"`
	DisplayName string `mapstructure:"display_name"`
	Icon        string `mapstructure:"icon"`
}

type notify struct {
	Endpoint  string `mapstructure:"endpoint"`
	EventType string `mapstructure:"event_type"`
}

type webhook struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	URL         string `mapstructure:"url"`
	Secret      string `mapstructure:"secret"`
}

// Load builds the run configuration. Priority: environment variables >
// config file > defaults. With an empty path it looks for an optional
// docsync.yaml in the working directory; a non-empty path must be readable.
// The returned configuration is validated.
func Load(path string) (*docsync.Config, error) {
	v := viper.New()

	def := docsync.DefaultConfig()
	v.SetDefault("root", def.Root)
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("extension", def.Extension)
	v.SetDefault("version", def.Version)
	v.SetDefault("catalog_path", def.CatalogPath)
	v.SetDefault("webhook_path", def.WebhookPath)
	v.SetDefault("sitemap_path", def.SitemapPath)
	v.SetDefault("remote", def.Remote)
	v.SetDefault("branch", def.Branch)
	v.SetDefault("commit_prefix", def.CommitPrefix)
	v.SetDefault("push_timeout", def.PushTimeout)
	v.SetDefault("notify.endpoint", def.Notify.Endpoint)
	v.SetDefault("notify.event_type", def.Notify.EventType)
	v.SetDefault("webhook.name", def.Webhook.Name)
	v.SetDefault("webhook.description", def.Webhook.Description)
	v.SetDefault("webhook.url", def.Webhook.URL)
	v.SetDefault("webhook.secret", def.Webhook.Secret)

	// Environment variables
	v.SetEnvPrefix("DOCSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific env vars for nested config
	_ = v.BindEnv("notify.endpoint", "DOCSYNC_NOTIFY_ENDPOINT")
	_ = v.BindEnv("notify.event_type", "DOCSYNC_NOTIFY_EVENT_TYPE")
	_ = v.BindEnv("webhook.name", "DOCSYNC_WEBHOOK_NAME")
	_ = v.BindEnv("webhook.description", "DOCSYNC_WEBHOOK_DESCRIPTION")
	_ = v.BindEnv("webhook.url", "DOCSYNC_WEBHOOK_URL")
	_ = v.BindEnv("webhook.secret", "DOCSYNC_WEBHOOK_SECRET")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, docsync.Errorf(docsync.EINVALID, "cannot read config file %s: %s", path, err)
		}
	} else {
		v.SetConfigName("docsync")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, docsync.Errorf(docsync.EINVALID, "cannot read config file: %s", err)
			}
		}
	}

	var s schema
	if err := v.Unmarshal(&s); err != nil {
		return nil, docsync.Errorf(docsync.EINVALID, "cannot parse configuration: %s", err)
	}

	cfg := &docsync.Config{
		Root:         s.Root,
		BaseURL:      s.BaseURL,
		Extension:    s.Extension,
		Version:      s.Version,
		CatalogPath:  s.CatalogPath,
		WebhookPath:  s.WebhookPath,
		SitemapPath:  s.SitemapPath,
		Remote:       s.Remote,
		Branch:       s.Branch,
		CommitPrefix: s.CommitPrefix,
		PushTimeout:  s.PushTimeout,
		Categories:   def.Categories,
		Notify: docsync.NotifyConfig{
			Endpoint:  s.Notify.Endpoint,
			EventType: s.Notify.EventType,
		},
		Webhook: docsync.WebhookSettings{
			Name:        s.Webhook.Name,
			Description: s.Webhook.Description,
			URL:         s.Webhook.URL,
			Secret:      s.Webhook.Secret,
		},
	}

	// A config file may replace the category table wholesale.
	if len(s.Categories) > 0 {
		cfg.Categories = make([]docsync.Category, len(s.Categories))
		for i, c := range s.Categories {
			cfg.Categories[i] = docsync.Category{
				Name:        c.Name,
				DisplayName: c.DisplayName,
				Icon:        c.Icon,
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
