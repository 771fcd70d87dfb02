package service

import (
	"context"
	"strings"
	"testing"
	"time"

	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/store"
)

// queryableAudit extends fakeAudit with canned query results
type queryableAudit struct {
	fakeAudit
	lastSQL  string
	lastArgs []any
	result   [][]any
	queryErr error
}

func (a *queryableAudit) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	a.lastSQL = sql
	a.lastArgs = args
	if a.queryErr != nil {
		return nil, a.queryErr
	}
	return &cannedRows{data: a.result}, nil
}

type cannedRows struct {
	data [][]any
	i    int
}

func (r *cannedRows) Next() bool { r.i++; return r.i <= len(r.data) }
func (r *cannedRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *time.Time:
			*p = row[i].(time.Time)
		}
	}
	return nil
}
func (r *cannedRows) Err() error        { return nil }
func (r *cannedRows) Close()            {}
func (r *cannedRows) Columns() []string { return nil }

func TestRecentTransitionsNarrowsAndMaps(t *testing.T) {
	t.Parallel()

	observed := time.Date(2024, 12, 2, 6, 30, 0, 0, time.UTC)
	audit := &queryableAudit{result: [][]any{
		{"sweep-1", "high_court", day("2024-12-01"), "WP 100/2024", "Listed", "Adjourned", observed},
	}}
	svc := newTestService(newMemStorage(), nil, audit)

	out, err := svc.RecentTransitions(context.Background(), "high_court", 10)
	if err != nil {
		t.Fatalf("RecentTransitions: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	tr := out[0]
	if tr.SweepID != "sweep-1" || string(tr.CourtType) != "high_court" {
		t.Fatalf("row = %+v", tr)
	}
	if tr.OldStatus != "Listed" || tr.NewStatus != "Adjourned" || !tr.ObservedAt.Equal(observed) {
		t.Fatalf("row = %+v", tr)
	}

	if !strings.Contains(audit.lastSQL, "WHERE court_type = ?") {
		t.Fatalf("sql missing court filter: %s", audit.lastSQL)
	}
	if len(audit.lastArgs) != 1 || audit.lastArgs[0] != "high_court" {
		t.Fatalf("args = %v", audit.lastArgs)
	}
	if !strings.Contains(audit.lastSQL, "LIMIT 10") {
		t.Fatalf("sql missing limit: %s", audit.lastSQL)
	}
}

func TestRecentTransitionsUnfilteredDefaultsLimit(t *testing.T) {
	t.Parallel()

	audit := &queryableAudit{}
	svc := newTestService(newMemStorage(), nil, audit)

	if _, err := svc.RecentTransitions(context.Background(), "", 0); err != nil {
		t.Fatalf("RecentTransitions: %v", err)
	}
	if strings.Contains(audit.lastSQL, "WHERE") {
		t.Fatalf("unexpected filter: %s", audit.lastSQL)
	}
	if !strings.Contains(audit.lastSQL, "LIMIT 100") {
		t.Fatalf("sql missing default limit: %s", audit.lastSQL)
	}
}

func TestRecentTransitionsWithoutSink(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMemStorage(), nil, nil)

	_, err := svc.RecentTransitions(context.Background(), "", 10)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}
