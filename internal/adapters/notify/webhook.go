package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "courtledger/internal/platform/errors"
)

const (
	webhookTimeout = 10 * time.Second
	webhookUA      = "courtledger-notify"
)

// WebhookOptions configures the WebhookDispatcher
type WebhookOptions struct {
	URL     string
	Timeout time.Duration
}

// WebhookDispatcher POSTs notification envelopes to a configured endpoint
type WebhookDispatcher struct {
	http *http.Client
	url  string
}

// NewWebhookDispatcher constructs a WebhookDispatcher.
// Panics when no URL is configured since a silent dispatcher hides outages
func NewWebhookDispatcher(o WebhookOptions) *WebhookDispatcher {
	if o.URL == "" {
		panic("notify.WebhookDispatcher requires a URL")
	}
	if o.Timeout <= 0 {
		o.Timeout = webhookTimeout
	}
	return &WebhookDispatcher{
		http: &http.Client{Timeout: o.Timeout},
		url:  o.URL,
	}
}

type webhookEnvelope struct {
	Kind    Kind   `json:"kind"`
	Payload any    `json:"payload"`
	SentAt  string `json:"sent_at"`
}

// Notify implements Dispatcher
func (d *WebhookDispatcher) Notify(ctx context.Context, kind Kind, payload any) error {
	body, err := json.Marshal(webhookEnvelope{
		Kind:    kind,
		Payload: payload,
		SentAt:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return perr.DispatchWrap(err, "encode %s notification", kind)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return perr.DispatchWrap(err, "build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", webhookUA)

	resp, err := d.http.Do(req)
	if err != nil {
		return perr.DispatchWrap(err, "post %s notification", kind)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return perr.Dispatchf("webhook returned %d for %s notification", resp.StatusCode, kind)
	}
	return nil
}
