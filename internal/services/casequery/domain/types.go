// Package domain defines the casequery service types and interfaces
package domain

import (
	"context"
	"time"

	"courtledger/internal/adapters/feed"
	cldom "courtledger/internal/services/causelist/domain"
)

// CaseQuery is one logged case lookup
type CaseQuery struct {
	ID              string     `db:"id"`
	CaseType        string     `db:"case_type"`
	CaseNumber      string     `db:"case_number"`
	Year            int        `db:"year"`
	CourtType       string     `db:"court_type"`
	Parties         *string    `db:"parties"`
	FilingDate      *string    `db:"filing_date"`
	NextHearingDate *string    `db:"next_hearing_date"`
	CaseStatus      *string    `db:"case_status"`
	JudgmentURL     *string    `db:"judgment_url"`
	Success         bool       `db:"success"`
	ErrorMessage    *string    `db:"error_message"`
	CreatedAt       time.Time  `db:"created_at"`
}

// FetchRequest identifies one case to look up
type FetchRequest struct {
	CourtType  cldom.CourtType
	CaseType   string
	CaseNumber string
	Year       int
}

// FetchResult pairs the lookup outcome with its log entry id
type FetchResult struct {
	QueryID string           `json:"query_id"`
	Details feed.CaseDetails `json:"details"`
}

// QueryPort is the public surface exposed by the casequery module
type QueryPort interface {
	// FetchCase looks the case up through the feed and logs the attempt,
	// successful or not
	FetchCase(ctx context.Context, req FetchRequest) (FetchResult, error)

	// RecentSearches lists logged lookups, newest first
	RecentSearches(ctx context.Context, courtType string, limit int) ([]CaseQuery, error)
}
