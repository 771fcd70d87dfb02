// Package module wires cause-list queries into the API using modkit
package module

import (
	"net/http"

	modkit "courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	str "courtledger/internal/platform/strings"
	listingshttp "courtledger/internal/services/api/listings/http"
	cldom "courtledger/internal/services/causelist/domain"
)

// Ports carries the cause-list query port this module serves
type Ports struct {
	Query cldom.QueryPort
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

// New constructs a listings module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("listings"), modkit.WithPrefix("/cause-list")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("listings module requires Ports{Query}")
	}
	if ports.Query == nil {
		panic("listings module requires a cause-list query port")
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
		listingshttp.Register(r, m.ports.Query)
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
