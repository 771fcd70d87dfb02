// Package module wires up the casequery service as a modkit.Module
package module

import (
	"courtledger/internal/adapters/feed"
	"courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	modreg "courtledger/internal/modkit/module"
	"courtledger/internal/modkit/repokit"
	"courtledger/internal/platform/config"
	"courtledger/internal/services/casequery/domain"
	"courtledger/internal/services/casequery/repo"
	"courtledger/internal/services/casequery/service"
)

// Options for the casequery module
type Options struct {
	RecentLimit int
}

// FromConfig reads configuration settings from the config.Conf
// CORE_CASEQUERY_RECENT_LIMIT (default 20) caps recent-search listings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_CASEQUERY_")
	return Options{
		RecentLimit: c.MayInt("RECENT_LIMIT", 20),
	}
}

// Ports exposed by the casequery module
type Ports struct {
	Query domain.QueryPort
}

// Module implements the casequery service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new casequery module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG(), feed.FromConfig(deps.Cfg), service.Config{
		RecentLimit: opts.RecentLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Query: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "casequery" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module; HTTP surfaces live in the api modules
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Register resolves the module into the shared registry
func Register(deps modkit.Deps) *Module {
	m := New(deps)
	modreg.Register(m.Name(), m.ports)
	return m
}
