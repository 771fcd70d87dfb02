// Package repo provides the causelist repository implementation.
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courtledger/internal/modkit/repokit"
	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/store"
	"courtledger/internal/services/causelist/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// ListingWrite carries one incoming record into the upsert.
// Empty strings mean "field absent upstream"
type ListingWrite struct {
	CourtType   domain.CourtType
	Date        time.Time
	CaseNumber  string
	SrNo        int
	Parties     string
	HearingType string
	Time        string
	CourtRoom   string
	Judge       string
	Status      string
}

// UpsertOutcome reports what one upsert did
type UpsertOutcome struct {
	Inserted  bool
	OldStatus string // "" when the row is new
	NewStatus string
}

// Storage defines the causelist repository
type Storage interface {
	Upsert(ctx context.Context, w ListingWrite) (UpsertOutcome, error)
	Query(ctx context.Context, f domain.Filters, limit, offset int) ([]domain.Listing, error)
	Count(ctx context.Context, f domain.Filters) (int64, error)
	History(ctx context.Context, pattern string, cutoff time.Time) ([]domain.Listing, error)
	ListForDate(ctx context.Context, date time.Time, statuses []string) ([]domain.Listing, error)
	StampExportPath(ctx context.Context, ct domain.CourtType, date time.Time, path string) (int64, error)
}

const listingCols = `
	court_type, date, case_number, sr_no,
	parties, hearing_type, hearing_time, court_room, judge,
	status, pdf_path, created_at, updated_at`

// Upsert implements Storage.
// One statement closes the concurrent-create race on the key triple. The
// prev CTE reads the pre-statement status so the caller can detect a
// transition, sr_no is only ever written on insert, and display fields never
// go from populated to empty
func (s *pg) Upsert(ctx context.Context, w ListingWrite) (UpsertOutcome, error) {
	const q = `
	WITH prev AS (
		SELECT status FROM cause_listings
		WHERE court_type = $1 AND date = $2 AND case_number = $3
	), up AS (
		INSERT INTO cause_listings
			(court_type, date, case_number, sr_no,
			parties, hearing_type, hearing_time, court_room, judge, status)
		VALUES ($1, $2, $3, $4,
			NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''),
			CASE WHEN $10 = '' THEN 'Listed' ELSE $10 END)
		ON CONFLICT (court_type, date, case_number) DO UPDATE SET
			parties      = COALESCE(NULLIF($5, ''), cause_listings.parties),
			hearing_type = COALESCE(NULLIF($6, ''), cause_listings.hearing_type),
			hearing_time = COALESCE(NULLIF($7, ''), cause_listings.hearing_time),
			court_room   = COALESCE(NULLIF($8, ''), cause_listings.court_room),
			judge        = COALESCE(NULLIF($9, ''), cause_listings.judge),
			status       = CASE WHEN $10 <> '' THEN $10 ELSE cause_listings.status END,
			updated_at   = now()
		RETURNING status
	)
	SELECT up.status, prev.status FROM up LEFT JOIN prev ON TRUE`

	var newStatus string
	var oldStatus *string
	err := s.q.QueryRow(ctx, q,
		w.CourtType, w.Date, w.CaseNumber, w.SrNo,
		w.Parties, w.HearingType, w.Time, w.CourtRoom, w.Judge, w.Status,
	).Scan(&newStatus, &oldStatus)
	if err != nil {
		return UpsertOutcome{}, perr.FromPostgres(err)
	}

	out := UpsertOutcome{NewStatus: newStatus}
	if oldStatus == nil {
		out.Inserted = true
	} else {
		out.OldStatus = *oldStatus
	}
	return out, nil
}

func appendFilters(sb *strings.Builder, f domain.Filters, arg func(any) string) {
	if f.CourtType != "" {
		sb.WriteString("  AND court_type = " + arg(string(f.CourtType)) + "\n")
	}
	if !f.DateFrom.IsZero() {
		sb.WriteString("  AND date >= " + arg(f.DateFrom) + "\n")
	}
	if !f.DateTo.IsZero() {
		sb.WriteString("  AND date <= " + arg(f.DateTo) + "\n")
	}
	if f.CaseNumber != "" {
		sb.WriteString("  AND case_number ILIKE " + arg("%"+f.CaseNumber+"%") + "\n")
	}
	if f.Judge != "" {
		sb.WriteString("  AND judge ILIKE " + arg("%"+f.Judge+"%") + "\n")
	}
	if f.Status != "" {
		sb.WriteString("  AND status = " + arg(f.Status) + "\n")
	}
	if f.HearingType != "" {
		sb.WriteString("  AND hearing_type = " + arg(f.HearingType) + "\n")
	}
}

// Query implements Storage.
// Ordering by date desc then sr_no asc is a contract: exports and paginated
// callers rely on it
func (s *pg) Query(ctx context.Context, f domain.Filters, limit, offset int) ([]domain.Listing, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`SELECT` + listingCols + `
	FROM cause_listings
	WHERE TRUE
	`)
	appendFilters(&sb, f, arg)
	sb.WriteString("ORDER BY date DESC, sr_no ASC\n")
	if limit > 0 {
		sb.WriteString("LIMIT " + arg(limit) + "\n")
	}
	if offset > 0 {
		sb.WriteString("OFFSET " + arg(offset))
	}

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err)
	}
	out, err := scanListings(rows)
	if err != nil {
		return nil, perr.FromPostgres(err)
	}
	return out, nil
}

// Count implements Storage
func (s *pg) Count(ctx context.Context, f domain.Filters) (int64, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString("SELECT COUNT(*) FROM cause_listings WHERE TRUE\n")
	appendFilters(&sb, f, arg)

	n, err := store.Scalar[int64](ctx, s.q, sb.String(), args...)
	if err != nil {
		return 0, perr.FromPostgres(err)
	}
	return n, nil
}

// History implements Storage.
// Ascending date order feeds the sequential transition reconstruction
func (s *pg) History(ctx context.Context, pattern string, cutoff time.Time) ([]domain.Listing, error) {
	rows, err := s.q.Query(ctx, `SELECT`+listingCols+`
	FROM cause_listings
	WHERE case_number ILIKE $1 AND date >= $2
	ORDER BY date ASC, sr_no ASC`,
		"%"+pattern+"%", cutoff)
	if err != nil {
		return nil, perr.FromPostgres(err)
	}
	out, err := scanListings(rows)
	if err != nil {
		return nil, perr.FromPostgres(err)
	}
	return out, nil
}

// ListForDate implements Storage
func (s *pg) ListForDate(ctx context.Context, date time.Time, statuses []string) ([]domain.Listing, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`SELECT` + listingCols + `
	FROM cause_listings
	WHERE date = ` + arg(date) + "\n")
	if len(statuses) > 0 {
		ph := make([]string, len(statuses))
		for i, st := range statuses {
			ph[i] = arg(st)
		}
		sb.WriteString("  AND status IN (" + strings.Join(ph, ", ") + ")\n")
	}
	sb.WriteString("ORDER BY court_type ASC, sr_no ASC")

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err)
	}
	out, err := scanListings(rows)
	if err != nil {
		return nil, perr.FromPostgres(err)
	}
	return out, nil
}

// StampExportPath implements Storage
func (s *pg) StampExportPath(
	ctx context.Context,
	ct domain.CourtType,
	date time.Time,
	path string,
) (int64, error) {
	tag, err := s.q.Exec(ctx, `
	UPDATE cause_listings SET pdf_path = $3, updated_at = now()
	WHERE court_type = $1 AND date = $2`,
		ct, date, path)
	if err != nil {
		return 0, perr.FromPostgres(err)
	}
	return tag.RowsAffected(), nil
}

func scanListings(rows repokit.Rows) ([]domain.Listing, error) {
	defer rows.Close()
	var out []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.CourtType, &l.Date, &l.CaseNumber, &l.SrNo,
			&l.Parties, &l.HearingType, &l.Time, &l.CourtRoom, &l.Judge,
			&l.Status, &l.PDFPath, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
