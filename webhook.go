package docsync

import "context"

// WebhookConfig is the static automation document consumed by the external
// update system. It has no runtime dependency on the catalog. Field names
// follow the published wire format.
type WebhookConfig struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Events      []string        `json:"events"`
	Config      WebhookEndpoint `json:"config"`
	Triggers    WebhookTriggers `json:"triggers"`
	Actions     []string        `json:"actions"`
}

// WebhookEndpoint names the callback target for change events.
type WebhookEndpoint struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Secret      string `json:"secret"`
}

// WebhookTriggers are the boolean trigger flags of the automation document.
type WebhookTriggers struct {
	OnPush        bool `json:"on_push"`
	OnPDFChange   bool `json:"on_pdf_change"`
	OnIndexUpdate bool `json:"on_index_update"`
}

// NewWebhookConfig assembles the automation document for the configured
// callback endpoint. The event subscriptions, trigger flags and follow-up
// actions are fixed parts of the contract with the update system.
func NewWebhookConfig(cfg *Config) *WebhookConfig {
	return &WebhookConfig{
		Name:        cfg.Webhook.Name,
		Description: cfg.Webhook.Description,
		Events:      []string{"push", "release"},
		Config: WebhookEndpoint{
			URL:         cfg.Webhook.URL,
			ContentType: "application/json",
			Secret:      cfg.Webhook.Secret,
		},
		Triggers: WebhookTriggers{
			OnPush:        true,
			OnPDFChange:   true,
			OnIndexUpdate: true,
		},
		Actions: []string{
			"regenerate_index",
			"notify_ios_app",
			"update_cdn_cache",
		},
	}
}

// WebhookStore persists webhook configuration documents.
type WebhookStore interface {
	WriteWebhookConfig(ctx context.Context, wc *WebhookConfig) error
}
