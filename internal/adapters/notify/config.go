package notify

import (
	"time"

	"courtledger/internal/platform/config"
)

// FromConfig builds the configured dispatcher.
// CORE_NOTIFY_WEBHOOK_URL selects the webhook dispatcher, otherwise
// notifications go to the structured log
func FromConfig(cfg config.Conf) Dispatcher {
	n := cfg.Prefix("CORE_NOTIFY_")
	url := n.MayString("WEBHOOK_URL", "")
	if url == "" {
		return NewLogDispatcher()
	}
	return NewWebhookDispatcher(WebhookOptions{
		URL:     url,
		Timeout: n.MayDuration("WEBHOOK_TIMEOUT", 10*time.Second),
	})
}
