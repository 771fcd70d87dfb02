package service

import (
	"context"
	"testing"
	"time"

	"courtledger/internal/adapters/notify"
	perr "courtledger/internal/platform/errors"
	cldom "courtledger/internal/services/causelist/domain"
)

// fakeQuery serves canned listings per date
type fakeQuery struct {
	rows     []cldom.Listing
	err      error
	gotDate  time.Time
	gotStats []string
}

func (f *fakeQuery) ListForDate(_ context.Context, date time.Time, statuses []string) ([]cldom.Listing, error) {
	f.gotDate = date
	f.gotStats = statuses
	return f.rows, f.err
}

func (f *fakeQuery) QueryListings(context.Context, cldom.Filters, int, int) ([]cldom.Listing, int64, error) {
	return nil, 0, nil
}

func (f *fakeQuery) TrackCaseHistory(context.Context, string, int) ([]cldom.StatusTransition, error) {
	return nil, nil
}

// failingDispatcher fails for configured case numbers
type failingDispatcher struct {
	failFor map[string]bool
	sent    []string
}

func (d *failingDispatcher) Notify(_ context.Context, _ notify.Kind, payload any) error {
	p := payload.(notify.ReminderPayload)
	if d.failFor[p.CaseNumber] {
		return perr.Dispatchf("webhook down")
	}
	d.sent = append(d.sent, p.CaseNumber)
	return nil
}

func listing(caseNo, status string, date time.Time) cldom.Listing {
	return cldom.Listing{
		CourtType:  cldom.CourtHigh,
		Date:       date,
		CaseNumber: caseNo,
		Status:     status,
	}
}

func newTestScheduler(q *fakeQuery, d *failingDispatcher) *Service {
	if d == nil {
		d = &failingDispatcher{}
	}
	s := New(q, d, Config{})
	s.now = func() time.Time { return time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC) }
	return s
}

func TestScheduleRemindersTargetsDateAndStatuses(t *testing.T) {
	target := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	q := &fakeQuery{rows: []cldom.Listing{listing("WP 12345/2024", "Listed", target)}}
	d := &failingDispatcher{}
	s := newTestScheduler(q, d)

	res, err := s.ScheduleReminders(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !q.gotDate.Equal(target) {
		t.Fatalf("queried date = %v", q.gotDate)
	}
	if len(q.gotStats) != 3 {
		t.Fatalf("statuses = %v", q.gotStats)
	}
	if res.ReminderDate != "2024-12-02" || res.TotalHearings != 1 || res.RemindersSent != 1 {
		t.Fatalf("result = %+v", res)
	}
	if len(d.sent) != 1 || d.sent[0] != "WP 12345/2024" {
		t.Fatalf("sent = %v", d.sent)
	}
}

func TestScheduleRemindersPartialFailure(t *testing.T) {
	target := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	q := &fakeQuery{rows: []cldom.Listing{
		listing("WP 1/2024", "Listed", target),
		listing("WP 2/2024", "Part Heard", target),
		listing("WP 3/2024", "Adjourned", target),
	}}
	d := &failingDispatcher{failFor: map[string]bool{"WP 2/2024": true}}
	s := newTestScheduler(q, d)

	res, err := s.ScheduleReminders(context.Background(), 1)
	if err != nil {
		t.Fatalf("partial failure must not fail the sweep: %v", err)
	}
	if res.TotalHearings != 3 || res.RemindersSent != 2 {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Errors) != 1 || res.Errors[0].CaseNumber != "WP 2/2024" {
		t.Fatalf("errors = %+v", res.Errors)
	}
}

func TestScheduleRemindersDefaultHorizon(t *testing.T) {
	q := &fakeQuery{}
	s := newTestScheduler(q, nil)

	if _, err := s.ScheduleReminders(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if got := q.gotDate.Format("2006-01-02"); got != "2024-12-02" {
		t.Fatalf("default target = %s", got)
	}
}

func TestScheduleRemindersRejectsNegative(t *testing.T) {
	s := newTestScheduler(&fakeQuery{}, nil)
	_, err := s.ScheduleReminders(context.Background(), -1)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}

func TestScheduleRemindersQueryError(t *testing.T) {
	q := &fakeQuery{err: perr.DBf("down")}
	s := newTestScheduler(q, nil)
	_, err := s.ScheduleReminders(context.Background(), 1)
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}
