package service

import (
	"context"
	"time"

	"courtledger/internal/modkit/repokit"
	perr "courtledger/internal/platform/errors"
	ptime "courtledger/internal/platform/time"
	dom "courtledger/internal/services/causelist/domain"
)

// BuildReport implements domain.ReportPort.
// courtType may be a concrete court type, "all", or "" for everything.
// The listing set is uncapped, report windows are expected to be narrow
func (s *Service) BuildReport(
	ctx context.Context,
	courtType string,
	from, to time.Time,
	includeStats bool,
) (dom.Report, error) {
	f := dom.Filters{DateFrom: from, DateTo: to}
	if courtType != "" && courtType != "all" {
		ct := dom.CourtType(courtType)
		if !ct.Valid() {
			return dom.Report{}, perr.Validationf("unknown court type %q", courtType)
		}
		f.CourtType = ct
	}
	if err := validateFilters(f); err != nil {
		return dom.Report{}, err
	}

	rows, err := s.queryAll(ctx, f)
	if err != nil {
		return dom.Report{}, err
	}

	rep := dom.Report{
		CourtType:  courtType,
		DateFrom:   ptime.FormatDate(from),
		DateTo:     ptime.FormatDate(to),
		TotalCases: len(rows),
		Listings:   rows,
	}
	if courtType == "" {
		rep.CourtType = "all"
	}
	if includeStats {
		rep.ByStatus = tally(rows, func(l dom.Listing) string { return l.Status })
		rep.ByHearing = tally(rows, func(l dom.Listing) string { return deref(l.HearingType) })
		rep.ByJudge = tally(rows, func(l dom.Listing) string { return deref(l.Judge) })
		rep.ByDate = tally(rows, func(l dom.Listing) string { return ptime.FormatDate(l.Date) })
	}
	return rep, nil
}

// Statistics implements domain.ReportPort
func (s *Service) Statistics(ctx context.Context, f dom.Filters) (dom.Statistics, error) {
	if err := validateFilters(f); err != nil {
		return dom.Statistics{}, err
	}
	rows, err := s.queryAll(ctx, f)
	if err != nil {
		return dom.Statistics{}, err
	}
	return dom.Statistics{
		Total:       len(rows),
		ByStatus:    tally(rows, func(l dom.Listing) string { return l.Status }),
		ByCourtType: tally(rows, func(l dom.Listing) string { return string(l.CourtType) }),
		ByDate:      tally(rows, func(l dom.Listing) string { return ptime.FormatDate(l.Date) }),
	}, nil
}

func (s *Service) queryAll(ctx context.Context, f dom.Filters) ([]dom.Listing, error) {
	var rows []dom.Listing
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		var e error
		rows, e = s.Binder.Bind(q).Query(ctx, f, 0, 0)
		return e
	})
	return rows, err
}

// tally counts rows by key, folding empty keys into the Unknown bucket
func tally(rows []dom.Listing, key func(dom.Listing) string) map[string]int {
	out := make(map[string]int, 8)
	for _, l := range rows {
		k := key(l)
		if k == "" {
			k = dom.UnknownBucket
		}
		out[k]++
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
