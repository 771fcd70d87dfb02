package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	cldom "courtledger/internal/services/causelist/domain"
)

type fakeReports struct {
	builds int
	stats  int
}

func (f *fakeReports) BuildReport(_ context.Context, courtType string, from, to time.Time, includeStats bool) (cldom.Report, error) {
	f.builds++
	return cldom.Report{CourtType: courtType, TotalCases: 3}, nil
}

func (f *fakeReports) Statistics(context.Context, cldom.Filters) (cldom.Statistics, error) {
	f.stats++
	return cldom.Statistics{Total: 3}, nil
}

type memCache struct {
	vals map[string]string
	err  error
	sets int
}

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.vals[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key, val string, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	if m.vals == nil {
		m.vals = map[string]string{}
	}
	m.vals[key] = val
	m.sets++
	return nil
}

func (m *memCache) Del(_ context.Context, keys ...string) error { return nil }
func (m *memCache) Close() error                                { return nil }

func window() (time.Time, time.Time) {
	return time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 7, 0, 0, 0, 0, time.UTC)
}

func TestBuildCachesSecondRead(t *testing.T) {
	reports := &fakeReports{}
	cache := &memCache{}
	svc := New(reports, cache, Config{CacheTTL: time.Minute})
	from, to := window()

	raw, err := svc.Build(context.Background(), "high_court", from, to, true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := svc.Build(context.Background(), "high_court", from, to, true); err != nil {
		t.Fatalf("build again: %v", err)
	}
	if reports.builds != 1 {
		t.Fatalf("builds = %d, want 1", reports.builds)
	}

	var rep cldom.Report
	if err := json.Unmarshal(raw, &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.TotalCases != 3 {
		t.Fatalf("report = %+v", rep)
	}
}

func TestBuildKeyVariesWithWindow(t *testing.T) {
	reports := &fakeReports{}
	cache := &memCache{}
	svc := New(reports, cache, Config{CacheTTL: time.Minute})
	from, to := window()

	if _, err := svc.Build(context.Background(), "high_court", from, to, true); err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := svc.Build(context.Background(), "high_court", from, to, false); err != nil {
		t.Fatalf("build without stats: %v", err)
	}
	if reports.builds != 2 {
		t.Fatalf("builds = %d, want 2", reports.builds)
	}
	for key := range cache.vals {
		if !strings.HasPrefix(key, "report:high_court:2024-12-01:2024-12-07:") {
			t.Fatalf("unexpected cache key %q", key)
		}
	}
}

func TestCacheFaultDegradesToFreshBuild(t *testing.T) {
	reports := &fakeReports{}
	cache := &memCache{err: context.DeadlineExceeded}
	svc := New(reports, cache, Config{CacheTTL: time.Minute})
	from, to := window()

	if _, err := svc.Build(context.Background(), "all", from, to, false); err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := svc.Build(context.Background(), "all", from, to, false); err != nil {
		t.Fatalf("build again: %v", err)
	}
	if reports.builds != 2 {
		t.Fatalf("builds = %d, want 2", reports.builds)
	}
}

func TestZeroTTLDisablesCaching(t *testing.T) {
	reports := &fakeReports{}
	cache := &memCache{}
	svc := New(reports, cache, Config{})
	from, to := window()

	if _, err := svc.Build(context.Background(), "high_court", from, to, false); err != nil {
		t.Fatalf("build: %v", err)
	}
	if cache.sets != 0 {
		t.Fatalf("sets = %d, want 0", cache.sets)
	}
}

func TestStatisticsCached(t *testing.T) {
	reports := &fakeReports{}
	cache := &memCache{}
	svc := New(reports, cache, Config{CacheTTL: time.Minute})
	from, to := window()
	f := cldom.Filters{CourtType: cldom.CourtHigh, DateFrom: from, DateTo: to}

	if _, err := svc.Statistics(context.Background(), f); err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if _, err := svc.Statistics(context.Background(), f); err != nil {
		t.Fatalf("statistics again: %v", err)
	}
	if reports.stats != 1 {
		t.Fatalf("stats = %d, want 1", reports.stats)
	}
}
