package domain

import (
	"context"
	"time"
)

// ReconcilerPort merges fetched batches into the persisted store
type ReconcilerPort interface {
	// ReconcileBatch merges one (court_type, date) batch as a single
	// transaction and reports what changed
	ReconcileBatch(ctx context.Context, ct CourtType, date time.Time, incoming []RawListing) (ReconcileResult, error)
}

// QueryPort is read-only access to the persisted listing store
type QueryPort interface {
	QueryListings(ctx context.Context, f Filters, limit, offset int) ([]Listing, int64, error)
	TrackCaseHistory(ctx context.Context, pattern string, daysBack int) ([]StatusTransition, error)
	ListForDate(ctx context.Context, date time.Time, statuses []string) ([]Listing, error)
}

// ReportPort computes aggregate views over the store
type ReportPort interface {
	BuildReport(ctx context.Context, courtType string, from, to time.Time, includeStats bool) (Report, error)
	Statistics(ctx context.Context, f Filters) (Statistics, error)
}

// AuditPort reads observed transitions back from the append-only audit sink
type AuditPort interface {
	// RecentTransitions returns the latest audited transitions, newest
	// first, optionally narrowed to one court type
	RecentTransitions(ctx context.Context, ct CourtType, limit int) ([]AuditedTransition, error)
}

// WriterPort covers store mutations outside reconciliation
type WriterPort interface {
	// StampExportPath records the export document path on every row of the
	// (court_type, date) batch and returns how many rows were stamped
	StampExportPath(ctx context.Context, ct CourtType, date time.Time, path string) (int64, error)
}
