package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/novalabs/nova-agent-backend/api/routes"
	"github.com/novalabs/nova-agent-backend/internal/barista"
	"github.com/novalabs/nova-agent-backend/internal/catalog"
	"github.com/novalabs/nova-agent-backend/internal/orders"
	"github.com/novalabs/nova-agent-backend/internal/session"
	"github.com/novalabs/nova-agent-backend/internal/tools"
	"github.com/novalabs/nova-agent-backend/internal/tutor"
	"github.com/novalabs/nova-agent-backend/internal/wellness"
	"github.com/novalabs/nova-agent-backend/pkg/config"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
	"github.com/novalabs/nova-agent-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "agent"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "agent",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	catalogRepo, err := catalog.NewRepository(cfg.Storage.CatalogPath, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog repository", err)
		os.Exit(1)
	}

	ledger, err := orders.NewLedger(cfg.Storage.OrdersPath, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create order ledger", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(ledger, logg, cfg.Agent.Currency, cfg.Agent.HistoryLimit)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	tutorService, err := tutor.NewService(cfg.Storage.TutorContentPath, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create tutor service", err)
		os.Exit(1)
	}

	baristaService, err := barista.NewService(cfg.Storage.CoffeeOrderPath, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create barista service", err)
		os.Exit(1)
	}

	journal, err := wellness.NewJournal(cfg.Storage.WellnessLogPath, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create wellness journal", err)
		os.Exit(1)
	}

	registry := tools.NewRegistry()
	if err := tools.RegisterCommerce(registry, catalogRepo, orderService, cfg.Agent); err != nil {
		logg.Error(context.Background(), "failed to register commerce tools", err)
		os.Exit(1)
	}
	if err := tools.RegisterTutor(registry, tutorService); err != nil {
		logg.Error(context.Background(), "failed to register tutor tools", err)
		os.Exit(1)
	}
	if err := tools.RegisterBarista(registry, baristaService); err != nil {
		logg.Error(context.Background(), "failed to register barista tools", err)
		os.Exit(1)
	}
	if err := tools.RegisterWellness(registry, journal); err != nil {
		logg.Error(context.Background(), "failed to register wellness tools", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	toolMetrics := metrics.NewToolMetrics(promRegistry)

	sessions := session.NewManager()

	if products := catalogRepo.Load(context.Background()); len(products) == 0 {
		logg.Warn(context.Background(), "catalog is empty or failed to load")
	} else {
		ctx := logg.WithField(context.Background(), "products", len(products))
		logg.Info(ctx, "catalog loaded")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting agent tool server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, sessions, registry, toolMetrics, promRegistry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "agent tool server stopped unexpectedly", err)
		os.Exit(1)
	}
}
