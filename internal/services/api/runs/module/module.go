// Package module wires run history endpoints into the API using modkit
package module

import (
	"net/http"

	modkit "polesplit/internal/modkit"
	"polesplit/internal/modkit/httpkit"
	str "polesplit/internal/platform/strings"

	runshttp "polesplit/internal/services/api/runs/http"
	runsdom "polesplit/internal/services/runs/domain"
)

// Ports required by the runs API module
type Ports struct {
	Reader runsdom.ReaderPort
}

// Module implements the runs API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the runs API module
//
// A Reader port must be provided via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("runs"),
		modkit.WithPrefix("/runs"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Reader == nil {
		panic("runs api module requires a Reader port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		runshttp.Register(r, m.ports.Reader)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
