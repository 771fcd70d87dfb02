// Package service provides the casequery service implementation
package service

import (
	"context"

	"github.com/google/uuid"

	"courtledger/internal/adapters/feed"
	"courtledger/internal/core/normalize"
	"courtledger/internal/modkit/repokit"
	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/logger"
	pstrings "courtledger/internal/platform/strings"
	dom "courtledger/internal/services/casequery/domain"
	"courtledger/internal/services/casequery/repo"
	cldom "courtledger/internal/services/causelist/domain"
)

// Config for the casequery service
type Config struct {
	RecentLimit int
}

// Service looks cases up through the feed and keeps a query log
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Feed   feed.CaseFetcher
	Cfg    Config
}

// New constructs the casequery service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], f feed.CaseFetcher, cfg Config) *Service {
	if db == nil {
		panic("casequery.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("casequery.Service requires a non nil Repo binder")
	}
	if f == nil {
		panic("casequery.Service requires a non nil CaseFetcher")
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 20
	}
	return &Service{DB: db, Binder: binder, Feed: f, Cfg: cfg}
}

// FetchCase implements domain.QueryPort.
// The attempt is logged whether or not the portal lookup succeeds; a
// failing log write never masks a successful lookup
func (s *Service) FetchCase(ctx context.Context, req dom.FetchRequest) (dom.FetchResult, error) {
	if !req.CourtType.Valid() {
		return dom.FetchResult{}, perr.InvalidArgf("unknown court type %q", req.CourtType)
	}
	req.CaseNumber = normalize.CaseNumber(req.CaseNumber)
	req.CaseType = normalize.Field(req.CaseType)
	if req.CaseNumber == "" {
		return dom.FetchResult{}, perr.InvalidArgf("case number required")
	}
	if req.Year <= 0 {
		return dom.FetchResult{}, perr.InvalidArgf("year required")
	}

	details, fetchErr := s.Feed.FetchCase(ctx, req.CourtType, req.CaseType, req.CaseNumber, req.Year)

	cq := dom.CaseQuery{
		ID:         uuid.NewString(),
		CaseType:   req.CaseType,
		CaseNumber: req.CaseNumber,
		Year:       req.Year,
		CourtType:  string(req.CourtType),
		Success:    fetchErr == nil,
	}
	if fetchErr == nil {
		cq.Parties = pstrings.Ptr(details.Parties)
		cq.FilingDate = pstrings.Ptr(details.FilingDate)
		cq.NextHearingDate = pstrings.Ptr(details.NextHearingDate)
		cq.CaseStatus = pstrings.Ptr(details.CaseStatus)
		cq.JudgmentURL = pstrings.Ptr(details.JudgmentURL)
	} else {
		cq.ErrorMessage = pstrings.Ptr(fetchErr.Error())
	}

	logErr := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Insert(ctx, cq)
	})
	if logErr != nil {
		logger.C(ctx).Warn().Err(logErr).
			Str("case_number", req.CaseNumber).
			Msg("case query log write failed")
	}

	if fetchErr != nil {
		return dom.FetchResult{}, fetchErr
	}
	return dom.FetchResult{QueryID: cq.ID, Details: details}, nil
}

// RecentSearches implements domain.QueryPort
func (s *Service) RecentSearches(ctx context.Context, courtType string, limit int) ([]dom.CaseQuery, error) {
	if courtType != "" && !cldom.CourtType(courtType).Valid() {
		return nil, perr.Validationf("unknown court type %q", courtType)
	}
	if limit <= 0 || limit > 100 {
		limit = s.Cfg.RecentLimit
	}
	var out []dom.CaseQuery
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		var e error
		out, e = s.Binder.Bind(q).Recent(ctx, courtType, limit)
		return e
	})
	return out, err
}
