package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakePingSeam struct {
	fakeQuerier
	pingErr  error
	closed   bool
	closeErr error
}

func (f *fakePingSeam) Tx(_ context.Context, fn func(q RowQuerier) error) error {
	return fn(&f.fakeQuerier)
}
func (f *fakePingSeam) Ping(context.Context) error { return f.pingErr }
func (f *fakePingSeam) Close() error               { f.closed = true; return f.closeErr }

type fakeCH struct {
	pingErr error
	closed  bool
}

func (f *fakeCH) Insert(context.Context, string, []string, [][]any) error { return nil }
func (f *fakeCH) Query(context.Context, string, ...any) (Rows, error) {
	return newRows(nil, nil), nil
}
func (f *fakeCH) Ping(context.Context) error { return f.pingErr }
func (f *fakeCH) Close() error               { f.closed = true; return nil }

type fakeCache struct {
	closed bool
}

func (f *fakeCache) Get(context.Context, string) (string, bool, error)       { return "", false, nil }
func (f *fakeCache) Set(context.Context, string, string, time.Duration) error { return nil }
func (f *fakeCache) Del(context.Context, ...string) error                     { return nil }
func (f *fakeCache) Close() error                                             { f.closed = true; return nil }

func TestGuardNilStore(t *testing.T) {
	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatal("nil store must fail guard")
	}
}

func TestGuardAggregatesFailures(t *testing.T) {
	s := &Store{
		PG: &fakePingSeam{pingErr: errors.New("pg down")},
		CH: &fakeCH{pingErr: errors.New("ch down")},
	}
	err := s.Guard(context.Background())
	if err == nil {
		t.Fatal("guard should fail")
	}
	msg := err.Error()
	for _, want := range []string{"pg down", "ch down"} {
		if !strings.Contains(msg, want) {
			t.Errorf("guard error %q missing %q", msg, want)
		}
	}
}

func TestGuardPassesWithHealthySeams(t *testing.T) {
	s := &Store{PG: &fakePingSeam{}, CH: &fakeCH{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("guard: %v", err)
	}
}

func TestCloseAllBackends(t *testing.T) {
	pg := &fakePingSeam{}
	ch := &fakeCH{}
	rds := &fakeCache{}
	s := &Store{PG: pg, CH: ch, RDS: rds}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !pg.closed || !ch.closed || !rds.closed {
		t.Fatal("not all backends closed")
	}
}

func TestCloseJoinsErrors(t *testing.T) {
	pg := &fakePingSeam{closeErr: errors.New("pg close")}
	s := &Store{PG: pg, CH: &fakeCH{}}
	if err := s.Close(context.Background()); err == nil {
		t.Fatal("close should propagate pg error")
	}
}
