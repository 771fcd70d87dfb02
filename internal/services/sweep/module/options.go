package module

import (
	"time"

	"courtledger/internal/platform/config"
	cldom "courtledger/internal/services/causelist/domain"
)

// Options for the sweep module
type Options struct {
	Delay      time.Duration
	Days       int
	CourtTypes []cldom.CourtType
}

// FromConfig fills options from environment
// CORE_SWEEP_DELAY (default 2s) is the pause between portal fetches
// CORE_SWEEP_DAYS (default 2) is the default sweep horizon
// CORE_SWEEP_COURTS (CSV, default both) restricts the swept court types
func FromConfig(cfg config.Conf) Options {
	sw := cfg.Prefix("CORE_SWEEP_")
	var cts []cldom.CourtType
	for _, s := range sw.MayCSV("COURTS", nil) {
		cts = append(cts, cldom.CourtType(s))
	}
	return Options{
		Delay:      sw.MayDuration("DELAY", 2*time.Second),
		Days:       sw.MayInt("DAYS", 2),
		CourtTypes: cts,
	}
}
