// Package domain holds DTOs for the case lookup http surface
package domain

// FetchInput identifies one case on a court portal
type FetchInput struct {
	CourtType  string `json:"court_type" validate:"required,oneof=high_court district_court" example:"high_court"`
	CaseType   string `json:"case_type" validate:"required,min=1,max=50" example:"WP"`
	CaseNumber string `json:"case_number" validate:"required,min=1,max=100" example:"12345"`
	Year       int    `json:"year" validate:"required,min=1950,max=2100" example:"2024"`
}

// RecentInput pages the query log
type RecentInput struct {
	CourtType string `json:"court_type,omitempty" validate:"omitempty,oneof=high_court district_court" example:"high_court"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
}
