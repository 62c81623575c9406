package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/middleware"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/service"
)

type ProposalHandler struct {
	svc *service.ProposalService
}

func NewProposalHandler(svc *service.ProposalService) *ProposalHandler {
	return &ProposalHandler{svc: svc}
}

// Create handles POST /api/proposals
func (h *ProposalHandler) Create(c fiber.Ctx) error {
	var req model.CreateProposalRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title
	req.Description = middleware.ValidateDescription(req.Description)

	if len(req.Options) > middleware.MaxOptionCount {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "Too many options")
	}
	for i := range req.Options {
		name, errMsg := middleware.ValidateOptionName(req.Options[i].Name)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.Options[i].Name = name
		if len(req.Options[i].Params) > middleware.MaxParamKeys {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "Too many option params")
		}
	}

	proposal, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return governanceError(c, err, "Failed to create proposal")
	}

	return c.Status(fiber.StatusCreated).JSON(model.CreateProposalResponse{
		Success:    true,
		ProposalID: proposal.ID,
		ExpiresAt:  proposal.ExpiresAt,
	})
}

// Get handles GET /api/proposals/:proposalId
func (h *ProposalHandler) Get(c fiber.Ctx) error {
	proposalID, errMsg := middleware.ValidateProposalID(c.Params("proposalId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	proposal, err := h.svc.Get(c.Context(), proposalID)
	if err != nil {
		return governanceError(c, err, "Failed to fetch proposal")
	}

	return c.JSON(proposal)
}

// ListActive handles GET /api/proposals
func (h *ProposalHandler) ListActive(c fiber.Ctx) error {
	proposals := h.svc.ListActive()
	return c.JSON(fiber.Map{
		"proposals": proposals,
		"count":     len(proposals),
	})
}

// governanceError maps core errors onto HTTP error envelopes. Anything
// unrecognized is treated as internal.
func governanceError(c fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, governance.ErrProposalNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Proposal not found")
	case errors.Is(err, governance.ErrProposalExpired):
		return middleware.ErrorResponse(c, fiber.StatusConflict, "PROPOSAL_EXPIRED", "Proposal voting window has closed")
	case errors.Is(err, governance.ErrProposalClosed):
		return middleware.ErrorResponse(c, fiber.StatusConflict, "PROPOSAL_CLOSED", "Proposal has already been tallied")
	case errors.Is(err, governance.ErrInvalidProposal),
		errors.Is(err, governance.ErrInvalidOption),
		errors.Is(err, governance.ErrInvalidAmount),
		errors.Is(err, governance.ErrInvalidSentiment):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
