package store

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "courtledger/internal/platform/errors"
)

type cmdTag struct {
	s string
	n int64
}

func (c cmdTag) String() string      { return c.s }
func (c cmdTag) RowsAffected() int64 { return c.n }

type fakeRows struct {
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func newRows(cols []string, data [][]any) *fakeRows {
	return &fakeRows{cols: cols, data: data, idx: -1}
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.idx++
	return r.idx >= 0 && r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("scan out of bounds")
	}
	row := r.data[r.idx]
	if len(dest) != len(row) {
		return errors.New("arity mismatch")
	}
	for i := range dest {
		switch p := dest[i].(type) {
		case *any:
			*p = row[i]
		case *string:
			*p = row[i].(string)
		case *int:
			*p = row[i].(int)
		case *int64:
			*p = row[i].(int64)
		case *time.Time:
			*p = row[i].(time.Time)
		default:
			return errors.New("unsupported dest type in fake")
		}
	}
	return nil
}

func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     { r.closed = true }

type fakeRow struct {
	vals []any
	err  error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		if i >= len(r.vals) {
			break
		}
		switch p := dest[i].(type) {
		case *string:
			*p = r.vals[i].(string)
		case *int:
			*p = r.vals[i].(int)
		case *int64:
			*p = r.vals[i].(int64)
		}
	}
	return nil
}

type fakeQuerier struct {
	lastSQL  string
	lastArgs []any

	execTag CommandTag
	execErr error

	rows     Rows
	queryErr error

	row Row
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.rows, f.queryErr
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) Row {
	f.lastSQL, f.lastArgs = sql, args
	if f.row != nil {
		return f.row
	}
	return &fakeRow{}
}

func TestExecOne(t *testing.T) {
	q := &fakeQuerier{execTag: cmdTag{s: "UPDATE 1", n: 1}}
	if err := ExecOne(context.Background(), q, "UPDATE x SET y=1"); err != nil {
		t.Fatalf("ExecOne: %v", err)
	}

	q = &fakeQuerier{execTag: cmdTag{s: "UPDATE 3", n: 3}}
	if err := ExecOne(context.Background(), q, "UPDATE x SET y=1"); err == nil {
		t.Fatal("ExecOne should fail on 3 rows")
	}
}

func TestScalar(t *testing.T) {
	q := &fakeQuerier{row: &fakeRow{vals: []any{int64(7)}}}
	n, err := Scalar[int64](context.Background(), q, "SELECT count(*) FROM cause_listings")
	if err != nil || n != 7 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
}

func TestOneNotFound(t *testing.T) {
	q := &fakeQuerier{rows: newRows([]string{"case_number"}, nil)}
	_, err := One(context.Background(), q, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, "SELECT case_number FROM cause_listings WHERE 1=0")
	if !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOneRejectsMultipleRows(t *testing.T) {
	q := &fakeQuerier{rows: newRows([]string{"c"}, [][]any{{"WP 1/2024"}, {"WP 2/2024"}})}
	_, err := One(context.Background(), q, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, "SELECT c")
	if err == nil {
		t.Fatal("One should reject more than one row")
	}
}

func TestMany(t *testing.T) {
	q := &fakeQuerier{rows: newRows([]string{"c"}, [][]any{{"WP 1/2024"}, {"CWP 2/2023"}})}
	got, err := Many(context.Background(), q, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, "SELECT c")
	if err != nil {
		t.Fatalf("Many: %v", err)
	}
	if len(got) != 2 || got[0] != "WP 1/2024" || got[1] != "CWP 2/2023" {
		t.Fatalf("Many = %v", got)
	}
}

func TestStructsByName(t *testing.T) {
	type listing struct {
		CaseNumber string `db:"case_number"`
		Status     string `db:"status"`
		SrNo       int64  `db:"sr_no"`
	}
	q := &fakeQuerier{rows: newRows(
		[]string{"case_number", "status", "sr_no"},
		[][]any{{"WP 1/2024", "Listed", int64(1)}},
	)}
	got, err := StructsByName[listing](context.Background(), q, "SELECT ...")
	if err != nil {
		t.Fatalf("StructsByName: %v", err)
	}
	if len(got) != 1 || got[0].CaseNumber != "WP 1/2024" || got[0].Status != "Listed" || got[0].SrNo != 1 {
		t.Fatalf("StructsByName = %+v", got)
	}
}

func TestMapsClosesRows(t *testing.T) {
	rs := newRows([]string{"status"}, [][]any{{"Disposed"}})
	q := &fakeQuerier{rows: rs}
	out, err := Maps(context.Background(), q, "SELECT status")
	if err != nil {
		t.Fatalf("Maps: %v", err)
	}
	if len(out) != 1 || out[0]["status"] != "Disposed" {
		t.Fatalf("Maps = %v", out)
	}
	if !rs.closed {
		t.Fatal("rows not closed")
	}
}
