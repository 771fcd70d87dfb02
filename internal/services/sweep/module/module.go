// Package module wires up the sweep service as a modkit.Module
package module

import (
	"courtledger/internal/adapters/feed"
	"courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	modreg "courtledger/internal/modkit/module"
	"courtledger/internal/services/sweep/domain"
	"courtledger/internal/services/sweep/service"
)

// Ports exposed by the sweep module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module for sweeps
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the sweep module.
// Callers pass the causelist reconciler via modkit.WithPorts(domain.Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("sweep"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("sweep module: expected WithPorts(sweep/domain.Ports)")
	}
	if ports.Reconciler == nil {
		panic("sweep module: Ports missing Reconciler")
	}

	o := FromConfig(deps.Cfg)
	svc := service.New(feed.FromConfig(deps.Cfg), ports.Reconciler, service.Config{
		Delay:      o.Delay,
		Days:       o.Days,
		CourtTypes: o.CourtTypes,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "sweep" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module; triggers live in the ops api module
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Register resolves the module into the shared registry
func Register(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := New(deps, opts...)
	modreg.Register(m.Name(), m.ports)
	return m
}
