// Package module wires up the export service as a modkit.Module
package module

import (
	"courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	modreg "courtledger/internal/modkit/module"
	"courtledger/internal/platform/config"
	"courtledger/internal/services/export/domain"
	"courtledger/internal/services/export/service"
)

// Options for the export module
type Options struct {
	Dir string
}

// FromConfig reads configuration settings from the config.Conf
// CORE_EXPORT_DIR (default "exports") receives rendered documents
func FromConfig(cfg config.Conf) Options {
	e := cfg.Prefix("CORE_EXPORT_")
	return Options{
		Dir: e.MayString("DIR", "exports"),
	}
}

// Ports exposed by the export module
type Ports struct {
	Exporter domain.ExporterPort
}

// Module implements modkit.Module for exports
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the export module.
// Callers pass the causelist ports via modkit.WithPorts(domain.Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("export"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("export module: expected WithPorts(export/domain.Ports)")
	}
	if ports.Query == nil || ports.Writer == nil {
		panic("export module: Ports missing Query or Writer")
	}

	o := FromConfig(deps.Cfg)
	svc := service.New(ports.Query, ports.Writer, service.NewCSVRenderer(), service.Config{
		Dir: o.Dir,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Exporter: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "export" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module; HTTP surfaces live in the api modules
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Register resolves the module into the shared registry
func Register(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := New(deps, opts...)
	modreg.Register(m.Name(), m.ports)
	return m
}
