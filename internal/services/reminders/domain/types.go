// Package domain defines the reminders service types and interfaces
package domain

import (
	"context"

	cldom "courtledger/internal/services/causelist/domain"
)

// ReminderResult summarizes one reminder sweep.
// TotalHearings counts every candidate, RemindersSent only the successful
// dispatches
type ReminderResult struct {
	ReminderDate  string              `json:"reminder_date"`
	TotalHearings int                 `json:"total_hearings"`
	RemindersSent int                 `json:"reminders_sent"`
	Errors        []cldom.RecordError `json:"errors,omitempty"`
}

// SchedulerPort is the public entrypoint exposed by the reminders module
type SchedulerPort interface {
	// ScheduleReminders dispatches one reminder per still-active listing
	// occurring daysAhead days from today
	ScheduleReminders(ctx context.Context, daysAhead int) (ReminderResult, error)
}

// Ports carries the cross-module dependencies the reminders module needs
type Ports struct {
	Query cldom.QueryPort
}
