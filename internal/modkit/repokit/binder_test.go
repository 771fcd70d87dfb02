package repokit

import (
	"testing"

	"courtledger/internal/platform/testkit"
)

func TestBindFuncCallsFunc(t *testing.T) {
	t.Parallel()

	var q Queryer // nil is fine; BindFunc doesn't use it
	b := BindFunc[string](func(_ Queryer) string { return "ok" })

	if got := b.Bind(q); got != "ok" {
		t.Fatalf("Bind = %q, want ok", got)
	}
}

func TestRequireQueryerPanicsOnNil(t *testing.T) {
	t.Parallel()

	var q Queryer
	testkit.MustPanic(t, func() { _ = RequireQueryer(q) })
}

func TestMustBindPanicsOnNilQueryer(t *testing.T) {
	t.Parallel()

	var q Queryer
	b := BindFunc[int](func(_ Queryer) int { return 42 })
	testkit.MustPanic(t, func() { _ = MustBind[int](b, q) })
}
