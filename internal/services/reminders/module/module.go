// Package module wires up the reminders service as a modkit.Module
package module

import (
	"courtledger/internal/adapters/notify"
	"courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	modreg "courtledger/internal/modkit/module"
	"courtledger/internal/platform/config"
	"courtledger/internal/services/reminders/domain"
	"courtledger/internal/services/reminders/service"
)

// Options for the reminders module
type Options struct {
	DaysAhead int
}

// FromConfig reads configuration settings from the config.Conf
// CORE_REMINDERS_DAYS_AHEAD (default 1) is the default reminder horizon
func FromConfig(cfg config.Conf) Options {
	r := cfg.Prefix("CORE_REMINDERS_")
	return Options{
		DaysAhead: r.MayInt("DAYS_AHEAD", 1),
	}
}

// Ports exposed by the reminders module
type Ports struct {
	Scheduler domain.SchedulerPort
}

// Module implements modkit.Module for reminders
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the reminders module.
// Callers pass the causelist query port via modkit.WithPorts(domain.Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reminders"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("reminders module: expected WithPorts(reminders/domain.Ports)")
	}
	if ports.Query == nil {
		panic("reminders module: Ports missing Query")
	}

	o := FromConfig(deps.Cfg)
	svc := service.New(ports.Query, notify.FromConfig(deps.Cfg), service.Config{
		DaysAhead: o.DaysAhead,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Scheduler: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "reminders" }

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
