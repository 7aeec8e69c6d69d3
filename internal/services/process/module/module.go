// Package module implements the process service module
package module

import (
	"polesplit/internal/modkit"
	"polesplit/internal/modkit/httpkit"
	"polesplit/internal/services/process/domain"
	"polesplit/internal/services/process/service"
	runsdom "polesplit/internal/services/runs/domain"
)

// Ports exposed by the process module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the process service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new process module
//
// runs may be nil when run history is not wired (no database)
func New(deps modkit.Deps, runs runsdom.WriterPort) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(runs, deps.Log, service.Config{
		Workers: opts.Workers,
		Prefix:  opts.Prefix,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "process" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
