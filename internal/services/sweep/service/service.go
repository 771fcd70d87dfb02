// Package service provides the sweep implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"courtledger/internal/adapters/feed"
	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/logger"
	ptime "courtledger/internal/platform/time"
	cldom "courtledger/internal/services/causelist/domain"
	dom "courtledger/internal/services/sweep/domain"
)

// Config controls pacing and defaults for sweeps
type Config struct {
	// Delay is the mandatory pause between portal fetches. Throttling,
	// not correctness: the upstream source rate limits aggressively
	Delay time.Duration

	// Days is the sweep horizon applied when the caller passes none
	Days int

	// CourtTypes swept when the caller passes none
	CourtTypes []cldom.CourtType
}

// Service wires the feed and the reconciler into sweep runs
type Service struct {
	Feed       feed.Fetcher
	Reconciler cldom.ReconcilerPort
	Cfg        Config

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New constructs the sweep service
func New(f feed.Fetcher, rec cldom.ReconcilerPort, cfg Config) *Service {
	if f == nil {
		panic("sweep.Service requires a non nil Fetcher")
	}
	if rec == nil {
		panic("sweep.Service requires a non nil Reconciler")
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 2 * time.Second
	}
	if cfg.Days <= 0 {
		cfg.Days = 2
	}
	if len(cfg.CourtTypes) == 0 {
		cfg.CourtTypes = []cldom.CourtType{cldom.CourtHigh, cldom.CourtDistrict}
	}
	return &Service{
		Feed:       f,
		Reconciler: rec,
		Cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
		sleep:      sleepCtx,
	}
}

type pair struct {
	ct   cldom.CourtType
	date time.Time
}

// SyncAll implements domain.RunnerPort.
// Pairs run sequentially with the configured delay between fetches, are
// committed one at a time, and cancellation is honored at pair granularity
func (s *Service) SyncAll(ctx context.Context, courtTypes []cldom.CourtType, days int) (dom.SweepResult, error) {
	if len(courtTypes) == 0 {
		courtTypes = s.Cfg.CourtTypes
	}
	if days <= 0 {
		days = s.Cfg.Days
	}
	for _, ct := range courtTypes {
		if !ct.Valid() {
			return dom.SweepResult{}, perr.InvalidArgf("unknown court type %q", ct)
		}
	}

	sweepID := uuid.NewString()
	ctx = logger.WithSweep(ctx, sweepID)
	l := logger.C(ctx)

	today := ptime.Midnight(s.now())
	pairs := make([]pair, 0, len(courtTypes)*days)
	for d := 0; d < days; d++ {
		date := today.AddDate(0, 0, d)
		for _, ct := range courtTypes {
			pairs = append(pairs, pair{ct: ct, date: date})
		}
	}

	res := dom.SweepResult{
		SweepID:    sweepID,
		StartedAt:  s.now(),
		PairsTotal: len(pairs),
	}
	l.Info().Int("pairs", len(pairs)).Int("days", days).Msg("sweep started")

	for i, p := range pairs {
		if i > 0 {
			if err := s.sleep(ctx, s.Cfg.Delay); err != nil {
				res.Cancelled = true
				break
			}
		}
		if ctx.Err() != nil {
			res.Cancelled = true
			break
		}

		if err := s.syncPairInto(ctx, p, &res); err != nil {
			res.Errors = append(res.Errors, dom.PairError{
				CourtType: string(p.ct),
				Date:      ptime.FormatDate(p.date),
				Error:     err.Error(),
			})
			l.Warn().Err(err).
				Str("court_type", string(p.ct)).
				Str("date", ptime.FormatDate(p.date)).
				Msg("sweep pair failed")
		}
	}

	res.FinishedAt = s.now()
	l.Info().
		Int("completed", res.PairsCompleted).
		Int("new_cases", res.NewCases).
		Int("status_changes", len(res.StatusChanges)).
		Int("errors", len(res.Errors)).
		Bool("cancelled", res.Cancelled).
		Msg("sweep finished")

	if res.Cancelled {
		return res, ctx.Err()
	}
	return res, nil
}

func (s *Service) syncPairInto(ctx context.Context, p pair, res *dom.SweepResult) error {
	batch, err := s.Feed.Fetch(ctx, p.ct, p.date)
	if err != nil {
		return err
	}
	rr, err := s.Reconciler.ReconcileBatch(ctx, p.ct, p.date, batch)
	if err != nil {
		return err
	}
	res.PairsCompleted++
	res.NewCases += rr.NewCases
	res.Updates += rr.Updates
	res.StatusChanges = append(res.StatusChanges, rr.StatusChanges...)
	return nil
}

// SyncPair implements domain.RunnerPort
func (s *Service) SyncPair(ctx context.Context, ct cldom.CourtType, date time.Time) (cldom.ReconcileResult, error) {
	if !ct.Valid() {
		return cldom.ReconcileResult{}, perr.InvalidArgf("unknown court type %q", ct)
	}
	batch, err := s.Feed.Fetch(ctx, ct, date)
	if err != nil {
		return cldom.ReconcileResult{}, err
	}
	return s.Reconciler.ReconcileBatch(ctx, ct, date, batch)
}

// sleepCtx pauses for d or returns early when ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
