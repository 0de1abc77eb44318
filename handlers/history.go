package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/snap-gen/models"
)

func pagination(c *fiber.Ctx) (int, int) {
	return c.QueryInt("page", 1), c.QueryInt("per_page", models.DefaultPerPage)
}

func (h *Handler) History(c *fiber.Ctx) error {
	page, perPage := pagination(c)

	images, err := h.store.ListImages(c.UserContext(), page, perPage)
	if err != nil {
		h.log.Error().Err(err).Msg("error fetching history")
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch history")
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"images":       images.Items,
		"total":        images.Total,
		"pages":        images.Pages,
		"current_page": images.CurrentPage,
	})
}

func (h *Handler) VideoHistory(c *fiber.Ctx) error {
	page, perPage := pagination(c)

	videos, err := h.store.ListVideos(c.UserContext(), page, perPage)
	if err != nil {
		h.log.Error().Err(err).Msg("error fetching video history")
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch video history")
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"videos":       videos.Items,
		"total":        videos.Total,
		"pages":        videos.Pages,
		"current_page": videos.CurrentPage,
	})
}
