// Command courtledger-sweep runs cause list sweeps outside the API process
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"courtledger/internal/modkit"
	"courtledger/internal/modkit/module"
	"courtledger/internal/modkit/repokit"
	"courtledger/internal/platform/config"
	"courtledger/internal/platform/logger"
	"courtledger/internal/platform/store"

	cldom "courtledger/internal/services/causelist/domain"
	causelistmod "courtledger/internal/services/causelist/module"
	remindersdom "courtledger/internal/services/reminders/domain"
	remindersmod "courtledger/internal/services/reminders/module"
	sweepdom "courtledger/internal/services/sweep/domain"
	sweepmod "courtledger/internal/services/sweep/module"
)

func parseCourts(csv string) []cldom.CourtType {
	if csv == "" {
		return nil
	}
	var out []cldom.CourtType
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, cldom.CourtType(part))
		}
	}
	return out
}

func main() {
	// optional .env for local runs, real env wins
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "courtledger-sweep",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled:  chCfg.MayBool("ENABLED", false),
			URL:      chCfg.MayString("DBURL", ""),
			Database: chCfg.MayString("DATABASE", "courtledger"),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(context.Background(), st)

	// Flags
	var (
		fMode      = flag.String("mode", "once", "sweep mode: once | daemon | reminders")
		fCourts    = flag.String("courts", "", "comma-separated court types (default: all configured)")
		fDays      = flag.Int("days", 0, "calendar days to sweep starting today (0 = configured default)")
		fInterval  = flag.Duration("interval", time.Hour, "daemon mode: pause between sweeps")
		fDaysAhead = flag.Int("days-ahead", 0, "reminders mode: days ahead of today (0 = configured default)")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	causelist := causelistmod.Register(deps)
	clPorts := causelist.Ports().(causelistmod.Ports)

	sweep := sweepmod.Register(deps, modkit.WithPorts(sweepdom.Ports{
		Reconciler: clPorts.Reconciler,
	}))
	reminders := remindersmod.Register(deps, modkit.WithPorts(remindersdom.Ports{
		Query: clPorts.Query,
	}))

	runner := module.MustPortsOf[sweepdom.RunnerPort](sweep)
	scheduler := module.MustPortsOf[remindersdom.SchedulerPort](reminders)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	courts := parseCourts(*fCourts)

	switch *fMode {
	case "once":
		res, err := runner.SyncAll(ctx, courts, *fDays)
		if err != nil {
			l.Fatal().Err(err).Msg("sweep failed")
		}
		l.Info().
			Str("sweep_id", res.SweepID).
			Int("pairs", res.PairsCompleted).
			Int("new", res.NewCases).
			Int("updates", res.Updates).
			Int("status_changes", len(res.StatusChanges)).
			Msg("sweep complete")

	case "daemon":
		for {
			res, err := runner.SyncAll(ctx, courts, *fDays)
			if err != nil {
				l.Error().Err(err).Msg("sweep failed")
			} else {
				l.Info().
					Str("sweep_id", res.SweepID).
					Int("pairs", res.PairsCompleted).
					Int("status_changes", len(res.StatusChanges)).
					Msg("sweep complete")
			}
			select {
			case <-ctx.Done():
				l.Info().Msg("sweep daemon stopping")
				return
			case <-time.After(*fInterval):
			}
		}

	case "reminders":
		res, err := scheduler.ScheduleReminders(ctx, *fDaysAhead)
		if err != nil {
			l.Fatal().Err(err).Msg("reminder run failed")
		}
		l.Info().
			Str("date", res.ReminderDate).
			Int("hearings", res.TotalHearings).
			Int("sent", res.RemindersSent).
			Msg("reminders complete")

	default:
		l.Panic().Str("mode", *fMode).Msg("unknown -mode (expected: once | daemon | reminders)")
	}
}
