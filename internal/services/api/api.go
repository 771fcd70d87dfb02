// Package api provides the HTTP API for the application
package api

import (
	"courtledger/internal/platform/config"
	"courtledger/internal/platform/logger"
	phttp "courtledger/internal/platform/net/http"
	"courtledger/internal/platform/store"

	"courtledger/internal/modkit"
	"courtledger/internal/modkit/httpkit"
	"courtledger/internal/modkit/module"
	"courtledger/internal/modkit/swaggerkit"

	casesmod "courtledger/internal/services/api/cases/module"
	listingsmod "courtledger/internal/services/api/listings/module"
	metamod "courtledger/internal/services/api/meta/module"
	opsmod "courtledger/internal/services/api/ops/module"
	reportsmod "courtledger/internal/services/api/reports/module"

	casequerymod "courtledger/internal/services/casequery/module"
	causelistmod "courtledger/internal/services/causelist/module"
	exportdom "courtledger/internal/services/export/domain"
	exportmod "courtledger/internal/services/export/module"
	remindersdom "courtledger/internal/services/reminders/domain"
	remindersmod "courtledger/internal/services/reminders/module"
	sweepdom "courtledger/internal/services/sweep/domain"
	sweepmod "courtledger/internal/services/sweep/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		RDS: opt.Store.RDS,
	}

	// Causelist owns the listing store. Every other module hangs off its ports
	causelist := causelistmod.New(deps)
	clPorts := causelist.Ports().(causelistmod.Ports)

	sweep := sweepmod.New(deps, modkit.WithPorts(sweepdom.Ports{
		Reconciler: clPorts.Reconciler,
	}))
	reminders := remindersmod.New(deps, modkit.WithPorts(remindersdom.Ports{
		Query: clPorts.Query,
	}))
	export := exportmod.New(deps, modkit.WithPorts(exportdom.Ports{
		Query:  clPorts.Query,
		Writer: clPorts.Writer,
	}))
	casequery := casequerymod.New(deps)

	runner := module.MustPortsOf[sweepdom.RunnerPort](sweep)
	scheduler := module.MustPortsOf[remindersdom.SchedulerPort](reminders)
	exporter := module.MustPortsOf[exportdom.ExporterPort](export)

	mods := []module.Module{
		metamod.New(deps),
		listingsmod.New(deps, modkit.WithPorts(listingsmod.Ports{
			Query: clPorts.Query,
		})),
		reportsmod.New(deps, modkit.WithPorts(reportsmod.Ports{
			Report: clPorts.Report,
		})),
		casesmod.New(deps, modkit.WithPorts(casesmod.Ports{
			Query: casequery.Ports().(casequerymod.Ports).Query,
		})),
		opsmod.New(deps, modkit.WithPorts(opsmod.Ports{
			Runner:    runner,
			Scheduler: scheduler,
			Exporter:  exporter,
			Audit:     clPorts.Audit,
		})),
		causelist, // include providers so their ports are registered
		sweep,
		reminders,
		export,
		casequery,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
