package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"

	"github.com/ratto/EDaemonCore/internal/catalog"
	"github.com/ratto/EDaemonCore/internal/eventlog"
	"github.com/ratto/EDaemonCore/internal/jwtauth"
	"github.com/ratto/EDaemonCore/internal/platform/config"
	"github.com/ratto/EDaemonCore/internal/platform/httpserver"
	"github.com/ratto/EDaemonCore/internal/platform/logger"
	"github.com/ratto/EDaemonCore/internal/platform/metrics"
	redisplatform "github.com/ratto/EDaemonCore/internal/platform/redis"
	"github.com/ratto/EDaemonCore/internal/skilltest"
	httptransport "github.com/ratto/EDaemonCore/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Stores: durable when a DSN is configured, in-memory otherwise.
	var (
		skillStore catalog.Store
		eventStore eventlog.Store
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		skillStore = catalog.NewPostgresStore(db)
		eventStore = eventlog.NewPostgresStore(db)
	} else {
		memCatalog := catalog.NewInMemoryStore()
		if err := catalog.SeedDefaultSkills(ctx, memCatalog); err != nil {
			log.Error("seed catalog", "error", err)
			os.Exit(1)
		}
		skillStore = memCatalog
		eventStore = eventlog.NewInMemoryStore()
	}

	// Optional Redis read-through cache in front of the catalog.
	redisClient, err := redisplatform.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		cached := catalog.NewCachedStore(skillStore, redisClient.Client, cfg.Redis.TTL,
			catalog.WithCacheLogger(log))
		if err := cached.Warm(ctx); err != nil {
			log.Warn("catalog cache warmup failed", "error", err)
		}
		skillStore = cached
	}

	// Event delivery: background persistence, plus Kafka when configured.
	worker, channelSink := eventlog.NewWorker(eventStore, 256, log)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("event worker stopped", "error", err)
		}
	}()

	sinks := []skilltest.EventSink{channelSink}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := eventlog.NewKafkaSink(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("connect kafka", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
	}

	roll := skilltest.NewRollService(
		skilltest.NewSeededSource(cfg.DiceSeed),
		skilltest.NewAggregator(),
	)
	engine, err := skilltest.New(skillStore, roll,
		skilltest.WithLogger(log),
		skilltest.WithMetrics(m),
		skilltest.WithEventSink(eventlog.NewFanoutSink(sinks...)),
	)
	if err != nil {
		log.Error("build engine", "error", err)
		os.Exit(1)
	}

	tokens := jwtauth.NewService(cfg.JWTSigningKey, "edaemon-core")
	router := httptransport.NewRouter(
		httptransport.NewSkillTestHandler(engine, eventStore, log),
		httptransport.NewCatalogHandler(skillStore, log),
		tokens,
		log,
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting edaemon-core", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
