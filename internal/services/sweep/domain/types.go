// Package domain defines the sweep service types and interfaces
package domain

import (
	"time"

	cldom "courtledger/internal/services/causelist/domain"
)

// PairError records one failed (court_type, date) pair in a sweep
type PairError struct {
	CourtType string `json:"court_type"`
	Date      string `json:"date"`
	Error     string `json:"error"`
}

// SweepResult aggregates one syncAll run.
// Committed pairs stay committed even when the run is cancelled midway,
// so the totals only ever cover completed pairs
type SweepResult struct {
	SweepID        string                   `json:"sweep_id"`
	StartedAt      time.Time                `json:"started_at"`
	FinishedAt     time.Time                `json:"finished_at"`
	PairsTotal     int                      `json:"pairs_total"`
	PairsCompleted int                      `json:"pairs_completed"`
	NewCases       int                      `json:"new_cases"`
	Updates        int                      `json:"updates"`
	StatusChanges  []cldom.StatusTransition `json:"status_changes"`
	Errors         []PairError              `json:"errors,omitempty"`
	Cancelled      bool                     `json:"cancelled,omitempty"`
}
