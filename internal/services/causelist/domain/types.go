// Package domain defines the types and interfaces for the causelist service
package domain

import "time"

// CourtType identifies which court a cause list belongs to
type CourtType string

// Supported court types
const (
	CourtHigh     CourtType = "high_court"
	CourtDistrict CourtType = "district_court"
)

// Valid reports whether c is a known court type
func (c CourtType) Valid() bool {
	return c == CourtHigh || c == CourtDistrict
}

// Well-known status labels. The status column is an open string set upstream,
// these are only the values the engine itself reasons about
const (
	StatusListed    = "Listed"
	StatusDisposed  = "Disposed"
	StatusAdjourned = "Adjourned"
	StatusPartHeard = "Part Heard"
)

// ActiveStatuses are the labels that mark a listing as still pending a hearing
var ActiveStatuses = []string{StatusListed, StatusPartHeard, StatusAdjourned}

// RawListing is one scraped cause-list entry before reconciliation.
// CaseNumber is required, everything else is best effort
type RawListing struct {
	CaseNumber  string
	Parties     string
	HearingType string
	Time        string
	CourtRoom   string
	Judge       string
	Status      string
}

// Listing is one persisted row keyed by (court_type, date, case_number)
type Listing struct {
	CourtType   CourtType  `db:"court_type"`
	Date        time.Time  `db:"date"`
	CaseNumber  string     `db:"case_number"`
	SrNo        int        `db:"sr_no"`
	Parties     *string    `db:"parties"`
	HearingType *string    `db:"hearing_type"`
	Time        *string    `db:"hearing_time"`
	CourtRoom   *string    `db:"court_room"`
	Judge       *string    `db:"judge"`
	Status      string     `db:"status"`
	PDFPath     *string    `db:"pdf_path"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// StatusTransition records one observed status change for a listing
type StatusTransition struct {
	CourtType   CourtType `json:"court_type"`
	ListingDate time.Time `json:"listing_date"`
	CaseNumber  string    `json:"case_number"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	ObservedAt  time.Time `json:"observed_at"`
}

// AuditedTransition is a StatusTransition read back from the audit sink,
// tagged with the sweep run that observed it
type AuditedTransition struct {
	SweepID string `json:"sweep_id"`
	StatusTransition
}

// RecordError captures a per-record failure inside a batch operation
type RecordError struct {
	CaseNumber string `json:"case_number"`
	Error      string `json:"error"`
}

// ReconcileResult summarizes one reconciled (court_type, date) batch
type ReconcileResult struct {
	NewCases       int                `json:"new_cases"`
	Updates        int                `json:"updates"`
	StatusChanges  []StatusTransition `json:"status_changes"`
	Skipped        []RecordError      `json:"skipped,omitempty"`
	Notified       int                `json:"notified"`
	DispatchErrors int                `json:"dispatch_errors"`
}

// Filters narrows listing queries. Zero values mean "no constraint"
type Filters struct {
	CourtType   CourtType
	DateFrom    time.Time
	DateTo      time.Time
	CaseNumber  string // case-insensitive substring
	Judge       string // case-insensitive substring
	Status      string
	HearingType string
}

// Report is the output of BuildReport
type Report struct {
	CourtType  string         `json:"court_type"`
	DateFrom   string         `json:"date_from"`
	DateTo     string         `json:"date_to"`
	TotalCases int            `json:"total_cases"`
	Listings   []Listing      `json:"listings"`
	ByStatus   map[string]int `json:"by_status,omitempty"`
	ByHearing  map[string]int `json:"by_hearing_type,omitempty"`
	ByJudge    map[string]int `json:"by_judge,omitempty"`
	ByDate     map[string]int `json:"by_date,omitempty"`
}

// Statistics is the tally-only view over a filtered set
type Statistics struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	ByCourtType map[string]int `json:"by_court_type"`
	ByDate      map[string]int `json:"by_date"`
}

// UnknownBucket is the tally key for missing or empty field values
const UnknownBucket = "Unknown"
