package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/handler"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Proposal *handler.ProposalHandler
	Stake    *handler.StakeHandler
	Tally    *handler.TallyHandler
	Stats    *handler.StatsHandler
	Feed     *handler.FeedHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins, ipSalt string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger(ipSalt))
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (before API group, no rate limiting)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus scrape endpoint
	app.Get("/metrics", handler.MetricsHandler())

	// Per-route rate limiters
	createLimit := middleware.NewProposalCreateRateLimiter()
	readLimit := middleware.NewProposalReadRateLimiter()
	stakeLimit := middleware.NewStakeRateLimiter()
	tallyLimit := middleware.NewTallyRateLimiter()
	statsLimit := middleware.NewStatsRateLimiter()
	feedLimit := middleware.NewFeedRateLimiter()

	// API routes
	api := app.Group("/api")

	// Proposal routes
	api.Post("/proposals", h.Proposal.Create, createLimit.Handler())
	api.Get("/proposals", h.Proposal.ListActive, readLimit.Handler())
	api.Get("/proposals/:proposalId", h.Proposal.Get, readLimit.Handler())

	// Stake routes
	api.Post("/stakes", h.Stake.Cast, stakeLimit.Handler())
	api.Get("/proposals/:proposalId/voters", h.Stake.TopVoters, readLimit.Handler())

	// Tally routes
	api.Post("/proposals/:proposalId/tally", h.Tally.Run, tallyLimit.Handler())
	api.Get("/tiers", h.Tally.Tiers, readLimit.Handler())

	// Stats routes
	api.Get("/stats", h.Stats.GetStats, statsLimit.Handler())
	api.Get("/proposals/:proposalId/stats", h.Stats.Distribution, statsLimit.Handler())

	// Results feed
	api.Get("/results/delta", h.Feed.Delta, feedLimit.Handler())
}
