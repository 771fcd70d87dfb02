// Package module wires operational runs into the API using modkit
package module

import (
	"net/http"

	modkit "courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	str "courtledger/internal/platform/strings"
	opshttp "courtledger/internal/services/api/ops/http"
	cldom "courtledger/internal/services/causelist/domain"
	expdom "courtledger/internal/services/export/domain"
	remdom "courtledger/internal/services/reminders/domain"
	sweepdom "courtledger/internal/services/sweep/domain"
)

// Ports carries the run ports this module drives
type Ports struct {
	Runner    sweepdom.RunnerPort
	Scheduler remdom.SchedulerPort
	Exporter  expdom.ExporterPort
	Audit     cldom.AuditPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs an ops module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ops"), modkit.WithPrefix("/ops")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("ops module requires Ports{Runner, Scheduler, Exporter}")
	}
	if ports.Runner == nil || ports.Scheduler == nil || ports.Exporter == nil || ports.Audit == nil {
		panic("ops module requires runner, scheduler, exporter and audit ports")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		opshttp.Register(r, opshttp.Deps{
			Runner:    m.ports.Runner,
			Scheduler: m.ports.Scheduler,
			Exporter:  m.ports.Exporter,
			Audit:     m.ports.Audit,
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
