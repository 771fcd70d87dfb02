// Package notify delivers transition and reminder notifications.
//
// Dispatch is fire and forget from the caller's perspective: a failed
// delivery is reported as an error but never undoes the store mutation
// that produced it.
package notify

import "context"

// Kind tags the notification payload shape
type Kind string

// Notification kinds
const (
	KindStatusChange    Kind = "status_change"
	KindHearingReminder Kind = "hearing_reminder"
)

// StatusChangePayload is sent when a listing's status transitions
type StatusChangePayload struct {
	CourtType   string `json:"court_type"`
	ListingDate string `json:"listing_date"`
	CaseNumber  string `json:"case_number"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	ObservedAt  string `json:"observed_at"`
}

// ReminderPayload is sent for upcoming hearings
type ReminderPayload struct {
	CaseNumber  string `json:"case_number"`
	Parties     string `json:"parties,omitempty"`
	HearingDate string `json:"hearing_date"`
	HearingTime string `json:"hearing_time,omitempty"`
	CourtRoom   string `json:"court_room,omitempty"`
	Judge       string `json:"judge,omitempty"`
}

// Dispatcher delivers one notification
type Dispatcher interface {
	Notify(ctx context.Context, kind Kind, payload any) error
}
