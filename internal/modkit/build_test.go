package modkit

import (
	"net/http"
	"testing"

	"courtledger/internal/modkit/httpkit"
)

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("hooks must default to no-ops")
	}
	// defaults must be callable
	var r httpkit.Router
	if got := b.Subrouter(r); got != r {
		t.Fatal("default subrouter should be identity")
	}
	b.Register(r)
}

func TestBuildAppliesOptions(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	registered := false

	b := Build(
		WithName("causelist"),
		WithPrefix("/causelist"),
		WithMiddlewares(mw),
		WithSwagger(true),
		WithPorts("ports-value"),
		WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "causelist" || b.Prefix != "/causelist" {
		t.Fatalf("built = %+v", b)
	}
	if len(b.Mw) != 1 || !b.SwaggerOn {
		t.Fatalf("built = %+v", b)
	}
	if b.Ports != "ports-value" {
		t.Fatalf("ports = %v", b.Ports)
	}
	b.Register(nil)
	if !registered {
		t.Fatal("register hook not wired")
	}
}
