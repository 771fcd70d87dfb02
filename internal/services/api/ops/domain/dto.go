// Package domain holds DTOs for the operations http surface
package domain

// SyncInput scopes a sweep run
type SyncInput struct {
	CourtTypes []string `json:"court_types,omitempty" validate:"omitempty,dive,oneof=high_court district_court" example:"high_court"`
	Days       int      `json:"days,omitempty" validate:"omitempty,min=1,max=30" example:"2"`
}

// RemindersInput scopes a reminder run
type RemindersInput struct {
	DaysAhead int `json:"days_ahead,omitempty" validate:"omitempty,min=1,max=30" example:"1"`
}

// ExportInput identifies the batch to render
type ExportInput struct {
	CourtType string `json:"court_type" validate:"required,oneof=high_court district_court" example:"high_court"`
	Date      string `json:"date" validate:"required,dateymd" example:"2024-12-01"`
}

// Accepted acknowledges a background run without waiting for it
type Accepted struct {
	Accepted   bool     `json:"accepted" example:"true"`
	CourtTypes []string `json:"court_types"`
	Days       int      `json:"days" example:"2"`
}
