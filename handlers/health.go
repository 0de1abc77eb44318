package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/snap-gen/enhancer"
)

func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("health check failed")
		return errorResponse(c, fiber.StatusServiceUnavailable, "database unavailable")
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// Styles lists the style keys the enhancer understands for each media kind.
func (h *Handler) Styles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"image":  enhancer.Styles(enhancer.ImageStyles),
		"video":  enhancer.Styles(enhancer.VideoStyles),
	})
}
