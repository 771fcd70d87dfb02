package feed

import (
	"context"
	"fmt"
	"time"

	perr "courtledger/internal/platform/errors"
	ptime "courtledger/internal/platform/time"
	"courtledger/internal/services/causelist/domain"
)

// Fixture is a deterministic in-memory feed for dev and test profiles.
// It returns the same two well-known cases for every (court_type, date)
// pair so downstream reconciliation stays reproducible
type Fixture struct{}

// NewFixture constructs a Fixture feed
func NewFixture() *Fixture { return &Fixture{} }

// Fetch implements Fetcher
func (*Fixture) Fetch(_ context.Context, ct domain.CourtType, date time.Time) ([]domain.RawListing, error) {
	if !ct.Valid() {
		return nil, perr.Adapterf("unknown court type %q", ct)
	}
	room := "Court Room 1"
	if ct == domain.CourtDistrict {
		room = "Court Room 3"
	}
	return []domain.RawListing{
		{
			CaseNumber:  "WP 12345/2024",
			Parties:     "State of Punjab vs Rajesh Kumar",
			HearingType: "Arguments",
			Time:        "10:30 AM",
			CourtRoom:   room,
			Judge:       "Justice Sharma",
			Status:      "Listed",
		},
		{
			CaseNumber:  "CWP 67890/2023",
			Parties:     "ABC Industries vs Labour Commissioner",
			HearingType: "Final Hearing",
			Time:        "2:00 PM",
			CourtRoom:   room,
			Judge:       "Justice Verma",
			Status:      "Listed",
		},
	}, nil
}

// FetchCase implements CaseFetcher
func (*Fixture) FetchCase(
	_ context.Context,
	ct domain.CourtType,
	caseType, caseNumber string,
	year int,
) (CaseDetails, error) {
	if !ct.Valid() {
		return CaseDetails{}, perr.Adapterf("unknown court type %q", ct)
	}
	today := ptime.Midnight(time.Now().UTC())
	return CaseDetails{
		CaseType:        caseType,
		CaseNumber:      caseNumber,
		Year:            year,
		CourtType:       string(ct),
		Parties:         fmt.Sprintf("Petitioner vs Respondent (%s %s/%d)", caseType, caseNumber, year),
		FilingDate:      ptime.FormatDate(today.AddDate(0, -6, 0)),
		NextHearingDate: ptime.FormatDate(today.AddDate(0, 0, 14)),
		CaseStatus:      "Pending",
	}, nil
}
