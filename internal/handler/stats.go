package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/middleware"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/service"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.svc.GetStats(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to fetch statistics")
	}

	return c.JSON(stats)
}

// Distribution handles GET /api/proposals/:proposalId/stats
func (h *StatsHandler) Distribution(c fiber.Ctx) error {
	proposalID, errMsg := middleware.ValidateProposalID(c.Params("proposalId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	dist, err := h.svc.Distribution(proposalID)
	if err != nil {
		return governanceError(c, err, "Failed to compute stake distribution")
	}

	return c.JSON(dist)
}
