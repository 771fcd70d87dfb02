package module

import "courtledger/internal/platform/config"

// Options holds configuration settings for the causelist module
type Options struct {
	NotifiableStatuses []string
	QueryLimit         int
	TxAttempts         int
	AuditTransitions   bool
}

// FromConfig reads configuration settings from the config.Conf
// CORE_CAUSELIST_NOTIFY_STATUSES (CSV) gates which transitions notify
// CORE_CAUSELIST_QUERY_LIMIT (default 100) is the default page size
// CORE_CAUSELIST_TX_ATTEMPTS (default 3) bounds reconcile tx replays
// CORE_CAUSELIST_AUDIT (default true) writes transitions to ClickHouse when configured
func FromConfig(cfg config.Conf) Options {
	cl := cfg.Prefix("CORE_CAUSELIST_")
	return Options{
		NotifiableStatuses: cl.MayCSV("NOTIFY_STATUSES", nil),
		QueryLimit:         cl.MayInt("QUERY_LIMIT", 100),
		TxAttempts:         cl.MayInt("TX_ATTEMPTS", 3),
		AuditTransitions:   cl.MayBool("AUDIT", true),
	}
}
