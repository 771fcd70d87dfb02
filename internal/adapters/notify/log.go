package notify

import (
	"context"

	"courtledger/internal/platform/logger"
)

// LogDispatcher writes notifications to the structured log.
// Used when no webhook endpoint is configured and in dev profiles
type LogDispatcher struct {
	log logger.Logger
}

// NewLogDispatcher constructs a LogDispatcher
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{log: *logger.Named("notify")}
}

// Notify implements Dispatcher
func (d *LogDispatcher) Notify(ctx context.Context, kind Kind, payload any) error {
	logger.C(ctx).Info().
		Str("component", "notify").
		Str("kind", string(kind)).
		Interface("payload", payload).
		Msg("notification dispatched")
	return nil
}
