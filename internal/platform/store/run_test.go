package store

import (
	"context"
	"errors"
	"testing"

	perr "courtledger/internal/platform/errors"
)

type fakeTx struct {
	fakeQuerier
	errs  []error // returned in order; nil means commit
	calls int
}

func (f *fakeTx) Tx(_ context.Context, fn func(q RowQuerier) error) error {
	f.calls++
	if err := fn(&f.fakeQuerier); err != nil {
		return err
	}
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return err
	}
	return nil
}

func TestRunTxRetryReplaysRetryable(t *testing.T) {
	tx := &fakeTx{errs: []error{
		perr.Unavailablef("deadlock"),
		perr.Unavailablef("deadlock"),
		nil,
	}}
	err := RunTxRetry(context.Background(), tx, 5, func(RowQuerier) error { return nil })
	if err != nil {
		t.Fatalf("RunTxRetry: %v", err)
	}
	if tx.calls != 3 {
		t.Fatalf("calls = %d, want 3", tx.calls)
	}
}

func TestRunTxRetryStopsOnPermanentError(t *testing.T) {
	boom := perr.DuplicateKeyf("listing")
	tx := &fakeTx{errs: []error{boom, nil}}
	err := RunTxRetry(context.Background(), tx, 5, func(RowQuerier) error { return nil })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if tx.calls != 1 {
		t.Fatalf("calls = %d, want 1", tx.calls)
	}
}

func TestRunTxRetryExhaustsAttempts(t *testing.T) {
	tx := &fakeTx{errs: []error{
		perr.Unavailablef("busy"),
		perr.Unavailablef("busy"),
		perr.Unavailablef("busy"),
	}}
	err := RunTxRetry(context.Background(), tx, 3, func(RowQuerier) error { return nil })
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
	if tx.calls != 3 {
		t.Fatalf("calls = %d, want 3", tx.calls)
	}
}

func TestRunTxRetryClampsAttempts(t *testing.T) {
	tx := &fakeTx{errs: []error{nil}}
	if err := RunTxRetry(context.Background(), tx, 0, func(RowQuerier) error { return nil }); err != nil {
		t.Fatalf("RunTxRetry: %v", err)
	}
	if tx.calls != 1 {
		t.Fatalf("calls = %d, want 1", tx.calls)
	}
}
