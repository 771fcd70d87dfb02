// Package module wires up the causelist service as a modkit.Module
package module

import (
	"courtledger/internal/adapters/notify"
	"courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	modreg "courtledger/internal/modkit/module"
	"courtledger/internal/modkit/repokit"
	"courtledger/internal/platform/store"
	"courtledger/internal/services/causelist/domain"
	"courtledger/internal/services/causelist/repo"
	"courtledger/internal/services/causelist/service"
)

// Ports exposed by the causelist module
type Ports struct {
	Reconciler domain.ReconcilerPort
	Query      domain.QueryPort
	Report     domain.ReportPort
	Writer     domain.WriterPort
	Audit      domain.AuditPort
}

// Module implements the causelist service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new causelist module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var audit store.Clickhouse
	if opts.AuditTransitions {
		audit = deps.CH
	}

	svc := service.New(
		repokit.TxRunner(deps.PG),
		repo.NewPG(),
		notify.FromConfig(deps.Cfg),
		audit,
		service.Config{
			NotifiableStatuses: opts.NotifiableStatuses,
			QueryLimit:         opts.QueryLimit,
			TxAttempts:         opts.TxAttempts,
		},
	)

	m := &Module{deps: deps}
	m.ports = Ports{
		Reconciler: svc,
		Query:      svc,
		Report:     svc,
		Writer:     svc,
		Audit:      svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "causelist" }

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
