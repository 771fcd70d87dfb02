package domain

import (
	"context"
	"time"

	cldom "courtledger/internal/services/causelist/domain"
)

// RunnerPort is the public entrypoint exposed by the sweep module
type RunnerPort interface {
	// SyncAll fetches and reconciles every (court_type, date) pair in the
	// Cartesian product of courtTypes and the next days calendar days
	// starting today. One failing pair never stops the rest
	SyncAll(ctx context.Context, courtTypes []cldom.CourtType, days int) (SweepResult, error)

	// SyncPair fetches and reconciles a single (court_type, date) pair
	SyncPair(ctx context.Context, ct cldom.CourtType, date time.Time) (cldom.ReconcileResult, error)
}

// Ports carries the cross-module dependencies the sweep module needs
type Ports struct {
	Reconciler cldom.ReconcilerPort
}
