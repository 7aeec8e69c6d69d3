// Package module implements the runs service module
package module

import (
	"polesplit/internal/modkit"
	"polesplit/internal/modkit/httpkit"
	"polesplit/internal/modkit/repokit"
	"polesplit/internal/services/runs/domain"
	"polesplit/internal/services/runs/repo"
	"polesplit/internal/services/runs/service"
)

// Ports exposed by the runs module
type Ports struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
}

// Module implements the runs service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new runs module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		HardLimit: opts.HardLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Writer: svc,
		Reader: svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "runs" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
