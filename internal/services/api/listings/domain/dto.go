// Package domain holds DTOs for the listings http surface
package domain

import (
	pstrings "courtledger/internal/platform/strings"
	ptime "courtledger/internal/platform/time"
	cldom "courtledger/internal/services/causelist/domain"
)

// QueryInput filters the cause-list query. All fields are optional and
// AND-combined
type QueryInput struct {
	CourtType   string `json:"court_type,omitempty" validate:"omitempty,oneof=high_court district_court" example:"high_court"`
	DateFrom    string `json:"date_from,omitempty" validate:"omitempty,dateymd" example:"2024-12-01"`
	DateTo      string `json:"date_to,omitempty" validate:"omitempty,dateymd" example:"2024-12-07"`
	CaseNumber  string `json:"case_number,omitempty" validate:"omitempty,min=1,max=100" example:"WP 12345/2024"`
	Judge       string `json:"judge,omitempty" validate:"omitempty,min=1,max=200" example:"Sharma"`
	Status      string `json:"status,omitempty" validate:"omitempty,max=50" example:"Listed"`
	HearingType string `json:"hearing_type,omitempty" validate:"omitempty,max=100" example:"Arguments"`
	Limit       int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"50"`
	Offset      int    `json:"offset,omitempty" validate:"omitempty,min=0" example:"0"`
}

// TrackInput selects a case history scan
type TrackInput struct {
	CaseNumber string `json:"case_number" validate:"required,min=3,max=100" example:"WP 12345/2024"`
	DaysBack   int    `json:"days_back,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}

// Listing is the wire shape of one cause-list row
type Listing struct {
	CourtType   string `json:"court_type" example:"high_court"`
	Date        string `json:"date" example:"2024-12-01"`
	CaseNumber  string `json:"case_number" example:"WP 12345/2024"`
	SrNo        int    `json:"sr_no" example:"1"`
	Parties     string `json:"parties,omitempty" example:"State of Punjab vs Rajesh Kumar"`
	HearingType string `json:"hearing_type,omitempty" example:"Arguments"`
	Time        string `json:"time,omitempty" example:"10:30 AM"`
	CourtRoom   string `json:"court_room,omitempty" example:"Court Room 1"`
	Judge       string `json:"judge,omitempty" example:"Justice Sharma"`
	Status      string `json:"status" example:"Listed"`
	PDFPath     string `json:"pdf_path,omitempty"`
	UpdatedAt   string `json:"updated_at" example:"2024-12-01T06:10:00Z"`
}

// QueryOutput pages the query result
type QueryOutput struct {
	Listings []Listing `json:"listings"`
	Total    int64     `json:"total" example:"42"`
	Limit    int       `json:"limit" example:"50"`
	Offset   int       `json:"offset" example:"0"`
}

// Transition is the wire shape of one status transition
type Transition struct {
	CourtType   string `json:"court_type" example:"high_court"`
	ListingDate string `json:"listing_date" example:"2024-12-01"`
	CaseNumber  string `json:"case_number" example:"WP 12345/2024"`
	OldStatus   string `json:"old_status" example:"Listed"`
	NewStatus   string `json:"new_status" example:"Disposed"`
	ObservedAt  string `json:"observed_at" example:"2024-12-01T06:10:00Z"`
}

// FromListing maps a stored row onto the wire shape
func FromListing(l cldom.Listing) Listing {
	return Listing{
		CourtType:   string(l.CourtType),
		Date:        ptime.FormatDate(l.Date),
		CaseNumber:  l.CaseNumber,
		SrNo:        l.SrNo,
		Parties:     pstrings.Deref(l.Parties),
		HearingType: pstrings.Deref(l.HearingType),
		Time:        pstrings.Deref(l.Time),
		CourtRoom:   pstrings.Deref(l.CourtRoom),
		Judge:       pstrings.Deref(l.Judge),
		Status:      l.Status,
		PDFPath:     pstrings.Deref(l.PDFPath),
		UpdatedAt:   l.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromTransition maps a transition onto the wire shape
func FromTransition(tr cldom.StatusTransition) Transition {
	return Transition{
		CourtType:   string(tr.CourtType),
		ListingDate: ptime.FormatDate(tr.ListingDate),
		CaseNumber:  tr.CaseNumber,
		OldStatus:   tr.OldStatus,
		NewStatus:   tr.NewStatus,
		ObservedAt:  tr.ObservedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
