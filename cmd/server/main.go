package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/config"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/db"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/handler"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/middleware"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/repository"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/router"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "govpool-api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Archive database is best-effort: the in-memory store stays
	// authoritative, so a missing database degrades rather than aborts.
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("archive database unavailable, running without archive")
		pool = nil
	} else {
		defer pool.Close()
	}

	var archive *repository.ArchiveRepo
	if pool != nil {
		archive = repository.NewArchiveRepo(pool)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	store := governance.NewStore()

	archiveWorker := service.NewArchiveWorker(store, archive)
	go archiveWorker.Start(ctx)

	expiryWorker := service.NewExpiryWorker(store, cache, archive, 30*time.Second)
	go expiryWorker.Start(ctx)
	defer expiryWorker.Stop()

	proposalSvc := service.NewProposalService(store, cache, archive)
	stakeSvc := service.NewStakeService(store, cache, archive, archiveWorker, cfg.BoostBase, cfg.BoostThreshold)
	tallySvc := service.NewTallyService(store, cache, archive)
	statsSvc := service.NewStatsService(store, archive)
	feedSvc := service.NewFeedService(archive)

	handler.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "GovPool API",
		ServerHeader: "GovPool",
	})

	h := &router.Handlers{
		Proposal: handler.NewProposalHandler(proposalSvc),
		Stake:    handler.NewStakeHandler(stakeSvc),
		Tally:    handler.NewTallyHandler(tallySvc),
		Stats:    handler.NewStatsHandler(statsSvc),
		Feed:     handler.NewFeedHandler(feedSvc),
		Health:   handler.NewHealthHandler(pool, cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins, cfg.IPHashSalt)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received, draining connections")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("forced shutdown")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("govpool backend starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
