package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/middleware"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/service"
)

type TallyHandler struct {
	svc *service.TallyService
}

func NewTallyHandler(svc *service.TallyService) *TallyHandler {
	return &TallyHandler{svc: svc}
}

// Run handles POST /api/proposals/:proposalId/tally
func (h *TallyHandler) Run(c fiber.Ctx) error {
	proposalID, errMsg := middleware.ValidateProposalID(c.Params("proposalId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	start := time.Now()
	result, err := h.svc.Run(c.Context(), proposalID)
	if err != nil {
		return governanceError(c, err, "Failed to tally proposal")
	}
	Metrics.TallyDuration.Observe(time.Since(start).Seconds())

	return c.JSON(result)
}

// Tiers handles GET /api/tiers — with ?yield= it resolves a single tier,
// otherwise it returns the full table.
func (h *TallyHandler) Tiers(c fiber.Ctx) error {
	yieldStr := fiber.Query[string](c, "yield")
	if yieldStr == "" {
		return c.JSON(fiber.Map{"tiers": governance.Tiers()})
	}

	yieldPercent := fiber.Query[float64](c, "yield", -1)
	if yieldPercent < 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM",
			"yield must be a non-negative number")
	}

	return c.JSON(h.svc.TierForYield(yieldPercent))
}
