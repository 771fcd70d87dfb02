// Package feed fetches cause-list data from court portal gateways.
//
// The portal scraping itself lives behind an HTTP gateway; this package
// speaks to that gateway, guards it with a circuit breaker, and degrades
// to a deterministic fixture feed for dev and test profiles
package feed

import (
	"context"
	"time"

	"courtledger/internal/services/causelist/domain"
)

// Fetcher returns the raw cause list for one (court_type, date) pair.
// An empty slice with a nil error means no cases were listed that day,
// which is distinct from a fetch failure
type Fetcher interface {
	Fetch(ctx context.Context, ct domain.CourtType, date time.Time) ([]domain.RawListing, error)
}

// CaseDetails is the parsed result of a single-case lookup
type CaseDetails struct {
	CaseType        string `json:"case_type"`
	CaseNumber      string `json:"case_number"`
	Year            int    `json:"year"`
	CourtType       string `json:"court_type"`
	Parties         string `json:"parties,omitempty"`
	FilingDate      string `json:"filing_date,omitempty"`
	NextHearingDate string `json:"next_hearing_date,omitempty"`
	CaseStatus      string `json:"case_status,omitempty"`
	JudgmentURL     string `json:"judgment_url,omitempty"`
}

// CaseFetcher looks up one case by its registry details
type CaseFetcher interface {
	FetchCase(ctx context.Context, ct domain.CourtType, caseType, caseNumber string, year int) (CaseDetails, error)
}

// Feed is the full adapter surface
type Feed interface {
	Fetcher
	CaseFetcher
}
