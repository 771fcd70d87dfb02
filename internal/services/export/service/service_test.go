package service

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	perr "courtledger/internal/platform/errors"
	cldom "courtledger/internal/services/causelist/domain"
)

type fakeQuery struct {
	rows []cldom.Listing
	err  error
}

func (f *fakeQuery) QueryListings(context.Context, cldom.Filters, int, int) ([]cldom.Listing, int64, error) {
	return f.rows, int64(len(f.rows)), f.err
}

func (f *fakeQuery) TrackCaseHistory(context.Context, string, int) ([]cldom.StatusTransition, error) {
	return nil, nil
}

func (f *fakeQuery) ListForDate(context.Context, time.Time, []string) ([]cldom.Listing, error) {
	return nil, nil
}

type fakeWriter struct {
	path    string
	stamped int64
	err     error
}

func (f *fakeWriter) StampExportPath(_ context.Context, _ cldom.CourtType, _ time.Time, path string) (int64, error) {
	f.path = path
	return f.stamped, f.err
}

func strp(s string) *string { return &s }

func sampleRows() []cldom.Listing {
	d := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	return []cldom.Listing{
		{
			CourtType: cldom.CourtHigh, Date: d, CaseNumber: "WP 12345/2024", SrNo: 1,
			Parties: strp("State of Punjab vs Rajesh Kumar"), Judge: strp("Justice Sharma"),
			Status: "Listed",
		},
		{
			CourtType: cldom.CourtHigh, Date: d, CaseNumber: "CWP 67890/2023", SrNo: 2,
			Status: "Part Heard",
		},
	}
}

func TestExportCauseListWritesCSVAndStamps(t *testing.T) {
	dir := t.TempDir()
	q := &fakeQuery{rows: sampleRows()}
	w := &fakeWriter{stamped: 2}
	s := New(q, w, NewCSVRenderer(), Config{Dir: dir})

	res, err := s.ExportCauseList(context.Background(), cldom.CourtHigh, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows != 2 || res.Stamped != 2 || res.ExportID == "" {
		t.Fatalf("result = %+v", res)
	}
	if w.path != res.Path {
		t.Fatalf("stamped path %q != export path %q", w.path, res.Path)
	}
	if !strings.HasPrefix(filepath.Base(res.Path), "high_court_2024-12-01_") {
		t.Fatalf("path = %s", res.Path)
	}

	f, err := os.Open(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("csv rows = %d", len(recs))
	}
	if recs[1][1] != "WP 12345/2024" || recs[1][6] != "Justice Sharma" {
		t.Fatalf("first row = %v", recs[1])
	}
	// empty optional fields render as empty cells
	if recs[2][2] != "" || recs[2][7] != "Part Heard" {
		t.Fatalf("second row = %v", recs[2])
	}
}

func TestExportCauseListEmptyBatch(t *testing.T) {
	s := New(&fakeQuery{}, &fakeWriter{}, NewCSVRenderer(), Config{Dir: t.TempDir()})
	_, err := s.ExportCauseList(context.Background(), cldom.CourtHigh, time.Now())
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestExportCauseListRejectsUnknownCourt(t *testing.T) {
	s := New(&fakeQuery{}, &fakeWriter{}, NewCSVRenderer(), Config{Dir: t.TempDir()})
	_, err := s.ExportCauseList(context.Background(), "tribunal", time.Now())
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}

func TestExportCauseListStampFailure(t *testing.T) {
	q := &fakeQuery{rows: sampleRows()}
	w := &fakeWriter{err: perr.DBf("down")}
	s := New(q, w, NewCSVRenderer(), Config{Dir: t.TempDir()})

	_, err := s.ExportCauseList(context.Background(), cldom.CourtHigh, time.Now())
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}
