// Package module wires reports into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	str "courtledger/internal/platform/strings"
	reportshttp "courtledger/internal/services/api/reports/http"
	reportssvc "courtledger/internal/services/api/reports/service"
	cldom "courtledger/internal/services/causelist/domain"
)

// Ports carries the causelist report port this module serves
type Ports struct {
	Report cldom.ReportPort
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

	svc *reportssvc.Service
}

// New constructs a reports module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("reports"), modkit.WithPrefix("/reports")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("reports module requires Ports{Report}")
	}
	if ports.Report == nil {
		panic("reports module requires a report port")
	}

	ttl := deps.Cfg.Prefix("CORE_REPORTS_").MayDuration("CACHE_TTL", 5*time.Minute)
	svc := reportssvc.New(ports.Report, deps.RDS, reportssvc.Config{CacheTTL: ttl})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		reportshttp.Register(r, m.svc)
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
