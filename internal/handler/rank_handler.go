package handler

import (
	"github.com/gofiber/fiber/v2"

	"blog-community/internal/middleware"
	"blog-community/internal/service/rank"
)

type RankHandler struct {
	rankService rank.Service
}

func NewRankHandler(rankService rank.Service) *RankHandler {
	return &RankHandler{
		rankService: rankService,
	}
}

func (h *RankHandler) ListRanks(c *fiber.Ctx) error {
	ranks, err := h.rankService.ActiveRanks(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(ranks)
}

func (h *RankHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.rankService.ActiveRoles(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(roles)
}

// CheckRankUpgrade runs an on-demand rank evaluation for the caller. The
// same evaluation also runs opportunistically after comment and like
// events, so this endpoint mainly serves profile refreshes.
func (h *RankHandler) CheckRankUpgrade(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	result, err := h.rankService.Evaluate(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
