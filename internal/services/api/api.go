// Package api provides the HTTP API for the application
package api

import (
	"polesplit/internal/platform/config"
	"polesplit/internal/platform/logger"
	phttp "polesplit/internal/platform/net/http"
	"polesplit/internal/platform/store"

	"polesplit/internal/modkit"
	"polesplit/internal/modkit/httpkit"
	"polesplit/internal/modkit/module"

	metamod "polesplit/internal/services/api/meta/module"
	apiprocmod "polesplit/internal/services/api/process/module"
	apirunsmod "polesplit/internal/services/api/runs/module"

	// Worker modules own the Runner and run-history ports
	procmod "polesplit/internal/services/process/module"
	runsmod "polesplit/internal/services/runs/module"

	runsdom "polesplit/internal/services/runs/domain"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
//
// The store is optional: without Postgres the run-history endpoints are
// not mounted and processing runs are simply not recorded
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	var mods []module.Module

	// Run history first so the process module can record into it
	var runsWriter runsdom.WriterPort
	if deps.PG != nil {
		workerRuns := runsmod.New(deps)
		ports := module.MustPortsOf[runsmod.Ports](workerRuns)
		runsWriter = ports.Writer

		apiRuns := apirunsmod.New(deps, modkit.WithPorts(apirunsmod.Ports{
			Reader: ports.Reader,
		}))
		mods = append(mods, workerRuns, apiRuns)
	}

	workerProc := procmod.New(deps, runsWriter)
	apiProc := apiprocmod.New(deps, modkit.WithPorts(apiprocmod.Ports{
		Runner: module.MustPortsOf[procmod.Ports](workerProc).Runner,
	}))

	mods = append(mods, workerProc, apiProc, metamod.New(deps))

	// versioned API with a common middleware stack
	httpkit.MountUnder(r, "/v1", httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
