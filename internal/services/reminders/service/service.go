// Package service provides the reminders implementation
package service

import (
	"context"
	"time"

	"courtledger/internal/adapters/notify"
	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/logger"
	pstrings "courtledger/internal/platform/strings"
	ptime "courtledger/internal/platform/time"
	cldom "courtledger/internal/services/causelist/domain"
	dom "courtledger/internal/services/reminders/domain"
)

// Config for the reminders service
type Config struct {
	// DaysAhead applied when the caller passes none
	DaysAhead int

	// ActiveStatuses mark listings still pending a hearing
	ActiveStatuses []string
}

// Service selects upcoming hearings and fans out reminders
type Service struct {
	Query      cldom.QueryPort
	Dispatcher notify.Dispatcher
	Cfg        Config

	now func() time.Time
}

// New constructs the reminders service
func New(query cldom.QueryPort, dispatcher notify.Dispatcher, cfg Config) *Service {
	if query == nil {
		panic("reminders.Service requires a non nil QueryPort")
	}
	if dispatcher == nil {
		panic("reminders.Service requires a non nil Dispatcher")
	}
	if cfg.DaysAhead <= 0 {
		cfg.DaysAhead = 1
	}
	if len(cfg.ActiveStatuses) == 0 {
		cfg.ActiveStatuses = cldom.ActiveStatuses
	}
	return &Service{
		Query:      query,
		Dispatcher: dispatcher,
		Cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ScheduleReminders implements domain.SchedulerPort.
// One failed dispatch is captured per listing and never stops the rest
func (s *Service) ScheduleReminders(ctx context.Context, daysAhead int) (dom.ReminderResult, error) {
	if daysAhead < 0 {
		return dom.ReminderResult{}, perr.InvalidArgf("days_ahead must not be negative")
	}
	if daysAhead == 0 {
		daysAhead = s.Cfg.DaysAhead
	}
	target := ptime.Midnight(s.now()).AddDate(0, 0, daysAhead)

	rows, err := s.Query.ListForDate(ctx, target, s.Cfg.ActiveStatuses)
	if err != nil {
		return dom.ReminderResult{}, err
	}

	res := dom.ReminderResult{
		ReminderDate:  ptime.FormatDate(target),
		TotalHearings: len(rows),
	}
	for _, l := range rows {
		err := s.Dispatcher.Notify(ctx, notify.KindHearingReminder, notify.ReminderPayload{
			CaseNumber:  l.CaseNumber,
			Parties:     pstrings.Deref(l.Parties),
			HearingDate: ptime.FormatDate(l.Date),
			HearingTime: pstrings.Deref(l.Time),
			CourtRoom:   pstrings.Deref(l.CourtRoom),
			Judge:       pstrings.Deref(l.Judge),
		})
		if err != nil {
			res.Errors = append(res.Errors, cldom.RecordError{
				CaseNumber: l.CaseNumber,
				Error:      err.Error(),
			})
			continue
		}
		res.RemindersSent++
	}

	logger.C(ctx).Info().
		Str("reminder_date", res.ReminderDate).
		Int("total_hearings", res.TotalHearings).
		Int("reminders_sent", res.RemindersSent).
		Int("errors", len(res.Errors)).
		Msg("reminder sweep finished")
	return res, nil
}
