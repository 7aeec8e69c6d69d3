package main

import (
	"context"

	"polesplit/internal/modkit/repokit"
	"polesplit/internal/platform/config"
	"polesplit/internal/platform/logger"
	phttp "polesplit/internal/platform/net/http"
	"polesplit/internal/platform/store"

	"polesplit/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*
	// bring up logging early
	l := logger.Get()

	// Postgres is opt-in: without a DBURL the API runs without run history
	var st *store.Store
	if url := pgCfg.MayString("DBURL", ""); url != "" {
		var err error
		st, err = store.Open(
			context.Background(),
			store.Config{
				PG: store.PGConfig{
					Enabled:     true,
					URL:         url,
					MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
					SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
					LogSQL:      pgCfg.MayBool("LOG_SQL", true),
				},
			},
			store.WithLogger(*l),
		)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		repokit.MustGuard(context.Background(), st)
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
	} else {
		l.Warn().Msg("SERVICE_PGSQL_DBURL not set; run history disabled")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Store:  st,
			Logger: l,
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
