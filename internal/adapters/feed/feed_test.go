package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "courtledger/internal/platform/errors"
	"courtledger/internal/services/causelist/domain"
)

func TestParseRegistry(t *testing.T) {
	reg, err := ParseRegistry([]byte(`
courts:
  - court_type: high_court
    base_url: http://gateway:8080/hc
`))
	if err != nil {
		t.Fatal(err)
	}
	c, ok := reg.Lookup(domain.CourtHigh)
	if !ok {
		t.Fatal("high_court not registered")
	}
	if c.ListPath != "/cause-list" || c.CasePath != "/case" {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if _, ok := reg.Lookup(domain.CourtDistrict); ok {
		t.Fatal("district_court should be absent")
	}
}

func TestParseRegistryRejectsUnknownCourt(t *testing.T) {
	_, err := ParseRegistry([]byte(`
courts:
  - court_type: tribunal
    base_url: http://x
`))
	if !perr.IsCode(err, perr.ErrorCodeAdapter) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseRegistryRejectsEmpty(t *testing.T) {
	if _, err := ParseRegistry([]byte(`courts: []`)); err == nil {
		t.Fatal("empty registry accepted")
	}
}

func testRegistry(t *testing.T, baseURL string) *Registry {
	t.Helper()
	reg, err := ParseRegistry([]byte(`
courts:
  - court_type: high_court
    base_url: ` + baseURL + `
`))
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestGatewayFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cause-list" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2024-12-01" {
			t.Errorf("date = %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cases":[
			{"case_number":"WP 12345/2024","parties":"A vs B","status":"Listed"},
			{"case_number":"CWP 67890/2023","judge":"Justice Verma"}
		]}`))
	}))
	defer srv.Close()

	g := NewGateway(testRegistry(t, srv.URL), GatewayOptions{})
	out, err := g.Fetch(context.Background(), domain.CourtHigh, day("2024-12-01"))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("cases = %d", len(out))
	}
	if out[0].CaseNumber != "WP 12345/2024" || out[0].Status != "Listed" {
		t.Fatalf("first = %+v", out[0])
	}
	if out[1].Judge != "Justice Verma" {
		t.Fatalf("second = %+v", out[1])
	}
}

func TestGatewayFetchEmptyDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cases":[]}`))
	}))
	defer srv.Close()

	g := NewGateway(testRegistry(t, srv.URL), GatewayOptions{})
	out, err := g.Fetch(context.Background(), domain.CourtHigh, day("2024-12-01"))
	if err != nil {
		t.Fatalf("empty day is a valid response: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("cases = %d", len(out))
	}
}

func TestGatewayFetchUnregisteredCourt(t *testing.T) {
	g := NewGateway(testRegistry(t, "http://unused"), GatewayOptions{})
	_, err := g.Fetch(context.Background(), domain.CourtDistrict, day("2024-12-01"))
	if !perr.IsCode(err, perr.ErrorCodeAdapter) {
		t.Fatalf("err = %v", err)
	}
}

func TestGatewayBreakerOpens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGateway(testRegistry(t, srv.URL), GatewayOptions{BreakerFailures: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := g.Fetch(ctx, domain.CourtHigh, day("2024-12-01")); err == nil {
			t.Fatal("expected error")
		}
	}
	// breaker is now open: the next call must fail fast without hitting the server
	srv.Close()
	_, err := g.Fetch(ctx, domain.CourtHigh, day("2024-12-01"))
	if !perr.IsCode(err, perr.ErrorCodeAdapter) {
		t.Fatalf("err = %v", err)
	}
}

func TestGatewayFetchCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/case" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"case_type":"WP","case_number":"12345","year":2024,"case_status":"Pending"}`))
	}))
	defer srv.Close()

	g := NewGateway(testRegistry(t, srv.URL), GatewayOptions{})
	d, err := g.FetchCase(context.Background(), domain.CourtHigh, "WP", "12345", 2024)
	if err != nil {
		t.Fatal(err)
	}
	if d.CaseStatus != "Pending" || d.CourtType != "high_court" {
		t.Fatalf("details = %+v", d)
	}
}

func TestGatewayFetchCaseNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewGateway(testRegistry(t, srv.URL), GatewayOptions{})
	_, err := g.FetchCase(context.Background(), domain.CourtHigh, "WP", "99999", 2024)
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestFixtureDeterministic(t *testing.T) {
	f := NewFixture()
	a, err := f.Fetch(context.Background(), domain.CourtHigh, day("2024-12-01"))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := f.Fetch(context.Background(), domain.CourtHigh, day("2024-12-05"))
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("fixture sizes = %d, %d", len(a), len(b))
	}
	if a[0].CaseNumber != "WP 12345/2024" || a[1].CaseNumber != "CWP 67890/2023" {
		t.Fatalf("fixture cases = %+v", a)
	}
	if a[0] != b[0] {
		t.Fatal("fixture not deterministic")
	}
}
