// Package service provides the causelist service implementation
package service

import (
	"context"
	"time"

	"courtledger/internal/adapters/notify"
	"courtledger/internal/core/normalize"
	"courtledger/internal/modkit/repokit"
	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/logger"
	"courtledger/internal/platform/store"
	ptime "courtledger/internal/platform/time"
	dom "courtledger/internal/services/causelist/domain"
	"courtledger/internal/services/causelist/repo"
)

// Config for the causelist service
type Config struct {
	// NotifiableStatuses gates which transitions fan out to the dispatcher
	NotifiableStatuses []string

	// QueryLimit is the page size applied when the caller passes none
	QueryLimit int

	// TxAttempts bounds upsert transaction replays on serialization failures
	TxAttempts int
}

// Service implements the causelist domain ports against a Postgres repo,
// an optional transition audit sink, and a notification dispatcher
type Service struct {
	DB         repokit.TxRunner
	Binder     repokit.Binder[repo.Storage]
	Dispatcher notify.Dispatcher
	Audit      store.Clickhouse
	Cfg        Config

	notifiable map[string]struct{}
}

// New constructs the causelist service. Audit may be nil when no
// ClickHouse sink is configured
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Storage],
	dispatcher notify.Dispatcher,
	audit store.Clickhouse,
	cfg Config,
) *Service {
	if db == nil {
		panic("causelist.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("causelist.Service requires a non nil Repo binder")
	}
	if dispatcher == nil {
		panic("causelist.Service requires a non nil Dispatcher")
	}
	if len(cfg.NotifiableStatuses) == 0 {
		cfg.NotifiableStatuses = []string{dom.StatusDisposed, dom.StatusAdjourned, dom.StatusPartHeard}
	}
	if cfg.QueryLimit <= 0 {
		cfg.QueryLimit = 100
	}
	if cfg.TxAttempts <= 0 {
		cfg.TxAttempts = 3
	}
	set := make(map[string]struct{}, len(cfg.NotifiableStatuses))
	for _, st := range cfg.NotifiableStatuses {
		set[st] = struct{}{}
	}
	return &Service{DB: db, Binder: binder, Dispatcher: dispatcher, Audit: audit, Cfg: cfg, notifiable: set}
}

// ReconcileBatch implements domain.ReconcilerPort.
// The whole batch commits as one transaction. Records that fail field
// validation are skipped and reported, store errors abort the batch
func (s *Service) ReconcileBatch(
	ctx context.Context,
	ct dom.CourtType,
	date time.Time,
	incoming []dom.RawListing,
) (dom.ReconcileResult, error) {
	if !ct.Valid() {
		return dom.ReconcileResult{}, perr.InvalidArgf("unknown court type %q", ct)
	}
	date = ptime.Midnight(date)

	writes, skipped := prepareWrites(ct, date, incoming)

	var res dom.ReconcileResult
	err := store.RunTxRetry(ctx, s.DB, s.Cfg.TxAttempts, func(q repokit.Queryer) error {
		// Reset on replay so a retried transaction does not double count
		res = dom.ReconcileResult{}
		st := s.Binder.Bind(q)
		now := time.Now().UTC()
		for _, w := range writes {
			out, err := st.Upsert(ctx, w)
			if err != nil {
				return perr.WithField(perr.WithOp(err, "causelist.upsert"), w.CaseNumber)
			}
			switch {
			case out.Inserted:
				res.NewCases++
			case out.NewStatus != out.OldStatus:
				res.Updates++
				res.StatusChanges = append(res.StatusChanges, dom.StatusTransition{
					CourtType:   ct,
					ListingDate: date,
					CaseNumber:  w.CaseNumber,
					OldStatus:   out.OldStatus,
					NewStatus:   out.NewStatus,
					ObservedAt:  now,
				})
			default:
				res.Updates++
			}
		}
		return nil
	})
	if err != nil {
		return dom.ReconcileResult{}, err
	}
	res.Skipped = skipped

	s.dispatchTransitions(ctx, &res)
	s.auditTransitions(ctx, res.StatusChanges)

	logger.C(ctx).Info().
		Str("court_type", string(ct)).
		Str("date", ptime.FormatDate(date)).
		Int("new_cases", res.NewCases).
		Int("updates", res.Updates).
		Int("status_changes", len(res.StatusChanges)).
		Int("skipped", len(res.Skipped)).
		Msg("batch reconciled")
	return res, nil
}

// prepareWrites normalizes raw records and drops the ones with no usable
// case number. Batch position becomes sr_no for new rows
func prepareWrites(ct dom.CourtType, date time.Time, incoming []dom.RawListing) ([]repo.ListingWrite, []dom.RecordError) {
	writes := make([]repo.ListingWrite, 0, len(incoming))
	var skipped []dom.RecordError
	for i, raw := range incoming {
		caseNo := normalize.CaseNumber(raw.CaseNumber)
		if caseNo == "" {
			skipped = append(skipped, dom.RecordError{
				CaseNumber: raw.CaseNumber,
				Error:      "missing case number",
			})
			continue
		}
		writes = append(writes, repo.ListingWrite{
			CourtType:   ct,
			Date:        date,
			CaseNumber:  caseNo,
			SrNo:        i + 1,
			Parties:     normalize.Field(raw.Parties),
			HearingType: normalize.Field(raw.HearingType),
			Time:        normalize.Field(raw.Time),
			CourtRoom:   normalize.Field(raw.CourtRoom),
			Judge:       normalize.Field(raw.Judge),
			Status:      normalize.Field(raw.Status),
		})
	}
	return writes, skipped
}

func (s *Service) dispatchTransitions(ctx context.Context, res *dom.ReconcileResult) {
	for _, tr := range res.StatusChanges {
		if _, ok := s.notifiable[tr.NewStatus]; !ok {
			continue
		}
		err := s.Dispatcher.Notify(ctx, notify.KindStatusChange, notify.StatusChangePayload{
			CourtType:   string(tr.CourtType),
			ListingDate: ptime.FormatDate(tr.ListingDate),
			CaseNumber:  tr.CaseNumber,
			OldStatus:   tr.OldStatus,
			NewStatus:   tr.NewStatus,
			ObservedAt:  tr.ObservedAt.Format(time.RFC3339),
		})
		if err != nil {
			res.DispatchErrors++
			logger.C(ctx).Warn().Err(err).
				Str("case_number", tr.CaseNumber).
				Str("new_status", tr.NewStatus).
				Msg("status change dispatch failed")
			continue
		}
		res.Notified++
	}
}

// QueryListings implements domain.QueryPort
func (s *Service) QueryListings(ctx context.Context, f dom.Filters, limit, offset int) ([]dom.Listing, int64, error) {
	if err := validateFilters(f); err != nil {
		return nil, 0, err
	}
	// limit 0 falls back to the default page size, negative means uncapped
	if limit == 0 {
		limit = s.Cfg.QueryLimit
	} else if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	var rows []dom.Listing
	var total int64
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)
		var err error
		if total, err = st.Count(ctx, f); err != nil {
			return err
		}
		rows, err = st.Query(ctx, f, limit, offset)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// minHistoryPattern guards the substring scan: short fragments match
// unrelated cases and produce phantom transitions
const minHistoryPattern = 3

// TrackCaseHistory implements domain.QueryPort.
// Transitions are reconstructed from the date-ordered listing sequence,
// so the pattern should be a full case number
func (s *Service) TrackCaseHistory(ctx context.Context, pattern string, daysBack int) ([]dom.StatusTransition, error) {
	pattern = normalize.CaseNumber(pattern)
	if len(pattern) < minHistoryPattern {
		return nil, perr.Validationf("case number pattern must be at least %d characters", minHistoryPattern)
	}
	if daysBack <= 0 {
		daysBack = 30
	}
	cutoff := ptime.Midnight(time.Now().UTC()).AddDate(0, 0, -daysBack)

	var rows []dom.Listing
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		var err error
		rows, err = s.Binder.Bind(q).History(ctx, pattern, cutoff)
		return err
	})
	if err != nil {
		return nil, err
	}

	var out []dom.StatusTransition
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if cur.Status == prev.Status {
			continue
		}
		out = append(out, dom.StatusTransition{
			CourtType:   cur.CourtType,
			ListingDate: cur.Date,
			CaseNumber:  cur.CaseNumber,
			OldStatus:   prev.Status,
			NewStatus:   cur.Status,
			ObservedAt:  cur.UpdatedAt,
		})
	}
	return out, nil
}

// ListForDate implements domain.QueryPort
func (s *Service) ListForDate(ctx context.Context, date time.Time, statuses []string) ([]dom.Listing, error) {
	date = ptime.Midnight(date)
	var rows []dom.Listing
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		var err error
		rows, err = s.Binder.Bind(q).ListForDate(ctx, date, statuses)
		return err
	})
	return rows, err
}

// StampExportPath implements domain.WriterPort
func (s *Service) StampExportPath(ctx context.Context, ct dom.CourtType, date time.Time, path string) (int64, error) {
	if !ct.Valid() {
		return 0, perr.InvalidArgf("unknown court type %q", ct)
	}
	if path == "" {
		return 0, perr.InvalidArgf("export path required")
	}
	date = ptime.Midnight(date)

	var n int64
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		var err error
		n, err = s.Binder.Bind(q).StampExportPath(ctx, ct, date, path)
		return err
	})
	return n, err
}

func validateFilters(f dom.Filters) error {
	if f.CourtType != "" && !f.CourtType.Valid() {
		return perr.Validationf("unknown court type %q", f.CourtType)
	}
	if !f.DateFrom.IsZero() && !f.DateTo.IsZero() && f.DateTo.Before(f.DateFrom) {
		return perr.Validationf("date_to precedes date_from")
	}
	return nil
}
