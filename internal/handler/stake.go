package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/middleware"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/service"
)

type StakeHandler struct {
	svc *service.StakeService
}

func NewStakeHandler(svc *service.StakeService) *StakeHandler {
	return &StakeHandler{svc: svc}
}

// Cast handles POST /api/stakes
func (h *StakeHandler) Cast(c fiber.Ctx) error {
	var req model.CastStakeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	proposalID, errMsg := middleware.ValidateProposalID(req.ProposalID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.ProposalID = proposalID

	voter, errMsg := middleware.ValidateVoter(req.Voter)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Voter = voter

	option, errMsg := middleware.ValidateOptionName(req.Option)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Option = option

	resp, err := h.svc.Cast(c.Context(), req)
	if err != nil {
		return governanceError(c, err, "Failed to cast stake")
	}

	if resp.BoostMultiplier > 1 {
		Metrics.StakesTotal.WithLabelValues("eco").Inc()
	} else {
		Metrics.StakesTotal.WithLabelValues("standard").Inc()
	}

	return c.JSON(resp)
}

// TopVoters handles GET /api/proposals/:proposalId/voters
func (h *StakeHandler) TopVoters(c fiber.Ctx) error {
	proposalID, errMsg := middleware.ValidateProposalID(c.Params("proposalId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	limit := fiber.Query[int](c, "limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	voters, err := h.svc.TopVoters(proposalID, limit)
	if err != nil {
		return governanceError(c, err, "Failed to fetch top voters")
	}

	return c.JSON(model.TopVotersResponse{
		ProposalID: proposalID,
		Voters:     voters,
	})
}
