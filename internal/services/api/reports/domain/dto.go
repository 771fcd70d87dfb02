// Package domain holds DTOs for the reports http surface
package domain

// BuildInput selects the window and grouping for a cause-list report
type BuildInput struct {
	CourtType         string `json:"court_type,omitempty" validate:"omitempty,oneof=high_court district_court all" example:"high_court"`
	DateFrom          string `json:"date_from" validate:"required,dateymd" example:"2024-12-01"`
	DateTo            string `json:"date_to" validate:"required,dateymd" example:"2024-12-07"`
	IncludeStatistics bool   `json:"include_statistics,omitempty" example:"true"`
}

// StatisticsInput filters the tally-only view
type StatisticsInput struct {
	CourtType string `json:"court_type,omitempty" validate:"omitempty,oneof=high_court district_court" example:"high_court"`
	DateFrom  string `json:"date_from,omitempty" validate:"omitempty,dateymd" example:"2024-12-01"`
	DateTo    string `json:"date_to,omitempty" validate:"omitempty,dateymd" example:"2024-12-07"`
}
