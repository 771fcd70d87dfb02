package service

import (
	"context"
	"testing"
	"time"

	perr "courtledger/internal/platform/errors"
	cldom "courtledger/internal/services/causelist/domain"
)

// fakeFeed serves canned batches and fails for configured pairs
type fakeFeed struct {
	batches map[string][]cldom.RawListing
	failFor map[string]bool
	calls   []string
}

func pairKey(ct cldom.CourtType, date time.Time) string {
	return string(ct) + "|" + date.Format("2006-01-02")
}

func (f *fakeFeed) Fetch(_ context.Context, ct cldom.CourtType, date time.Time) ([]cldom.RawListing, error) {
	k := pairKey(ct, date)
	f.calls = append(f.calls, k)
	if f.failFor[k] {
		return nil, perr.Adapterf("portal unreachable")
	}
	return f.batches[k], nil
}

// fakeReconciler counts batches and returns canned results
type fakeReconciler struct {
	results map[string]cldom.ReconcileResult
	err     error
	calls   int
}

func (r *fakeReconciler) ReconcileBatch(
	_ context.Context,
	ct cldom.CourtType,
	date time.Time,
	_ []cldom.RawListing,
) (cldom.ReconcileResult, error) {
	r.calls++
	if r.err != nil {
		return cldom.ReconcileResult{}, r.err
	}
	return r.results[pairKey(ct, date)], nil
}

func newTestSweep(f *fakeFeed, r *fakeReconciler) *Service {
	s := New(f, r, Config{Delay: time.Millisecond})
	s.now = func() time.Time { return time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC) }
	return s
}

func TestSyncAllCoversCartesianProduct(t *testing.T) {
	f := &fakeFeed{}
	r := &fakeReconciler{}
	s := newTestSweep(f, r)

	res, err := s.SyncAll(context.Background(), nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	// 2 court types x 2 days
	if res.PairsTotal != 4 || res.PairsCompleted != 4 {
		t.Fatalf("pairs = %d/%d", res.PairsCompleted, res.PairsTotal)
	}
	if r.calls != 4 {
		t.Fatalf("reconcile calls = %d", r.calls)
	}
	if res.SweepID == "" {
		t.Fatal("sweep id not assigned")
	}
	want := map[string]bool{
		"high_court|2024-12-01":     true,
		"district_court|2024-12-01": true,
		"high_court|2024-12-02":     true,
		"district_court|2024-12-02": true,
	}
	for _, k := range f.calls {
		if !want[k] {
			t.Fatalf("unexpected pair %s", k)
		}
		delete(want, k)
	}
	if len(want) != 0 {
		t.Fatalf("missing pairs: %v", want)
	}
}

func TestSyncAllAggregatesResults(t *testing.T) {
	f := &fakeFeed{}
	r := &fakeReconciler{results: map[string]cldom.ReconcileResult{
		"high_court|2024-12-01": {
			NewCases: 3,
			Updates:  1,
			StatusChanges: []cldom.StatusTransition{
				{CaseNumber: "WP 12345/2024", OldStatus: "Listed", NewStatus: "Disposed"},
			},
		},
		"district_court|2024-12-01": {NewCases: 2},
	}}
	s := newTestSweep(f, r)

	res, err := s.SyncAll(context.Background(), nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.NewCases != 5 || res.Updates != 1 {
		t.Fatalf("totals = %+v", res)
	}
	if len(res.StatusChanges) != 1 {
		t.Fatalf("status_changes = %d", len(res.StatusChanges))
	}
}

func TestSyncAllPairFailureIsolated(t *testing.T) {
	f := &fakeFeed{failFor: map[string]bool{"high_court|2024-12-01": true}}
	r := &fakeReconciler{}
	s := newTestSweep(f, r)

	res, err := s.SyncAll(context.Background(), nil, 2)
	if err != nil {
		t.Fatalf("pair failure must not fail the sweep: %v", err)
	}
	if res.PairsCompleted != 3 {
		t.Fatalf("completed = %d", res.PairsCompleted)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %+v", res.Errors)
	}
	pe := res.Errors[0]
	if pe.CourtType != "high_court" || pe.Date != "2024-12-01" {
		t.Fatalf("pair error = %+v", pe)
	}
}

func TestSyncAllReconcileFailureIsolated(t *testing.T) {
	f := &fakeFeed{}
	r := &fakeReconciler{err: perr.DBf("write conflict")}
	s := newTestSweep(f, r)

	res, err := s.SyncAll(context.Background(), []cldom.CourtType{cldom.CourtHigh}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.PairsCompleted != 0 || len(res.Errors) != 1 {
		t.Fatalf("result = %+v", res)
	}
}

func TestSyncAllCancellationAtPairGranularity(t *testing.T) {
	f := &fakeFeed{}
	r := &fakeReconciler{}
	s := newTestSweep(f, r)

	ctx, cancel := context.WithCancel(context.Background())
	done := 0
	s.sleep = func(ctx context.Context, _ time.Duration) error {
		done++
		if done == 2 {
			cancel()
		}
		return ctx.Err()
	}

	res, err := s.SyncAll(ctx, nil, 2)
	if err == nil {
		t.Fatal("expected ctx error")
	}
	if !res.Cancelled {
		t.Fatal("result not marked cancelled")
	}
	// first two pairs committed before the cancel hit the inter-pair pause
	if res.PairsCompleted != 2 {
		t.Fatalf("completed = %d", res.PairsCompleted)
	}
	if res.PairsTotal != 4 {
		t.Fatalf("total = %d", res.PairsTotal)
	}
}

func TestSyncAllRejectsUnknownCourtType(t *testing.T) {
	s := newTestSweep(&fakeFeed{}, &fakeReconciler{})
	_, err := s.SyncAll(context.Background(), []cldom.CourtType{"tribunal"}, 1)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}

func TestSyncPair(t *testing.T) {
	f := &fakeFeed{}
	r := &fakeReconciler{results: map[string]cldom.ReconcileResult{
		"high_court|2024-12-01": {NewCases: 2},
	}}
	s := newTestSweep(f, r)

	res, err := s.SyncPair(context.Background(), cldom.CourtHigh, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if res.NewCases != 2 {
		t.Fatalf("result = %+v", res)
	}
}
