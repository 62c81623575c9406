package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/middleware"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/service"
)

type FeedHandler struct {
	svc *service.FeedService
}

func NewFeedHandler(svc *service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// Delta handles GET /api/results/delta?since=TIMESTAMP
func (h *FeedHandler) Delta(c fiber.Ctx) error {
	sinceStr := fiber.Query[string](c, "since")
	if sinceStr == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM",
			"since query parameter is required (RFC3339 timestamp)")
	}

	since, err := time.Parse(time.RFC3339, sinceStr)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM",
			"since must be a valid RFC3339 timestamp")
	}

	resp, err := h.svc.Delta(c.Context(), since)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to fetch tallied results")
	}

	return c.JSON(resp)
}
