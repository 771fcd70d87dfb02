// @title         CourtLedger API
// @version       0.1.0
// @description   Cause list sync, status change tracking and hearing reminders

package main

import (
	"context"

	"github.com/joho/godotenv"

	"courtledger/internal/modkit/repokit"
	"courtledger/internal/platform/config"
	"courtledger/internal/platform/logger"
	phttp "courtledger/internal/platform/net/http"
	"courtledger/internal/platform/store"

	"courtledger/internal/services/api"
)

func main() {
	// optional .env for local runs, real env wins
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	rdsCfg := root.Prefix("SERVICE_REDIS_")     // rdsCfg lives under SERVICE_REDIS_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres + optional CH audit trail + optional redis cache)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "courtledger-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			CH: store.CHConfig{
				Enabled:  chCfg.MayBool("ENABLED", false),
				URL:      chCfg.MayString("DBURL", ""),
				Database: chCfg.MayString("DATABASE", "courtledger"),
			},
			RDS: store.RedisConfig{
				Enabled: rdsCfg.MayBool("ENABLED", false),
				Addr:    rdsCfg.MayString("ADDR", "127.0.0.1:6379"),
				DB:      rdsCfg.MayInt("DB", 0),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(context.Background(), st)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
