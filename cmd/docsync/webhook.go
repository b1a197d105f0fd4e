package main

import (
	"fmt"

	"github.com/jarlesteinnes/docsync"
)

// Run executes the webhook command.
func (c *WebhookCmd) Run(deps *Dependencies) error {
	wc := docsync.NewWebhookConfig(deps.Config)

	if err := deps.Webhooks.WriteWebhookConfig(deps.Ctx, wc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", deps.Config.WebhookPath)
	return nil
}
