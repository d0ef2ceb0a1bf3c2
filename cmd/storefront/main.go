package main

import (
	"context"
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"GemsByMike/internal/catalog"
	"GemsByMike/internal/config"
	"GemsByMike/internal/i18n"
	"GemsByMike/internal/storefront"
	"GemsByMike/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.Load()
	if err != nil {
		kit.NewLogger(service, "info").Fatal("config", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, db, err := openCatalogStore(cfg)
	if err != nil {
		log.Fatal("catalog store", zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}

	products, err := catalog.Load(ctx, store)
	if err != nil {
		log.Fatal("load catalog", zap.Error(err))
	}

	strs, err := i18n.LoadEmbedded()
	if err != nil {
		log.Fatal("load locales", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sessions := storefront.NewMemStore()
	metrics := storefront.NewMetrics(reg, "gemsbymike")

	svc := storefront.NewService(products, strs, sessions, metrics, log)
	s := &storefront.Server{
		Service:       svc,
		DefaultLocale: cfg.Locale(),
		CreateLimiter: kit.NewIPRateLimiter(cfg.CreateLimitPerMin, storefront.CreateLimitWindow),
		Log:           log,
	}

	go sessions.RunSweeper(ctx, cfg.SweepInterval, cfg.SessionIdleTTL, func(n int) {
		if n > 0 {
			metrics.SessionsSwept.Add(float64(n))
			log.Info("idle sessions swept", zap.Int("removed", n))
		}
	})

	h := storefront.NewHandler(s, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		CatalogStore:   store,
	})

	log.Info("storefront ready",
		zap.Int("products", products.Len()),
		zap.String("default_locale", string(cfg.Locale())),
		zap.Bool("postgres", db != nil),
	)

	if err := kit.RunHTTPServer(cfg.Addr(), h, log, cfg.ShutdownTimeout); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func openCatalogStore(cfg config.Config) (catalog.Store, *sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return catalog.NewMemStore(), nil, nil
	}

	db, err := catalog.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return catalog.NewPostgresStore(db), db, nil
}
