package feed

import (
	"time"

	"courtledger/internal/platform/config"
	"courtledger/internal/platform/logger"
)

// FromConfig builds the configured feed.
// CORE_FEED_MODE selects "gateway" or "fixture"; gateway mode needs a
// courts registry at CORE_FEED_COURTS_FILE. A broken registry degrades to
// the fixture feed rather than refusing to boot
func FromConfig(cfg config.Conf) Feed {
	f := cfg.Prefix("CORE_FEED_")
	mode := f.MayEnum("MODE", "fixture", "fixture", "gateway")
	if mode == "fixture" {
		return NewFixture()
	}

	path := f.MayString("COURTS_FILE", "courts.yaml")
	reg, err := LoadRegistry(path)
	if err != nil {
		logger.Named("feed").Warn().Err(err).
			Str("path", path).
			Msg("courts registry unavailable, using fixture feed")
		return NewFixture()
	}
	return NewGateway(reg, GatewayOptions{
		Timeout:         f.MayDuration("TIMEOUT", 30*time.Second),
		BreakerFailures: uint32(f.MayInt("BREAKER_FAILURES", 5)),
		BreakerCooldown: f.MayDuration("BREAKER_COOLDOWN", 30*time.Second),
	})
}
