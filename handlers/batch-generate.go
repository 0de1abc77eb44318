package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/snap-gen/enhancer"
	"github.com/krishkalaria12/snap-gen/middleware"
	"github.com/krishkalaria12/snap-gen/models"
)

type BatchGenerateRequest struct {
	Prompts    []string `json:"prompts"`
	Style      string   `json:"style"`
	Resolution string   `json:"resolution"`
	Format     string   `json:"format"`
}

type BatchResult struct {
	ID     uint   `json:"id"`
	Prompt string `json:"prompt"`
	Status string `json:"status"`
}

// BatchGenerate enrolls up to maxBatchSize prompts as image records. It does
// not start any generation.
func (h *Handler) BatchGenerate(c *fiber.Ctx) error {
	var req BatchGenerateRequest
	if err := c.BodyParser(&req); err != nil || len(req.Prompts) == 0 {
		return errorResponse(c, fiber.StatusBadRequest, "At least one prompt is required")
	}

	if len(req.Prompts) > maxBatchSize {
		return errorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Maximum %d prompts allowed per batch", maxBatchSize))
	}

	style := valueOr(req.Style, enhancer.DefaultImageStyle)
	resolution := valueOr(req.Resolution, defaultImageResolution)
	format := valueOr(req.Format, defaultImageFormat)

	records := make([]*models.GeneratedImage, 0, len(req.Prompts))
	for _, p := range req.Prompts {
		prompt, ok := validPrompt(p)
		if !ok {
			continue
		}
		records = append(records, &models.GeneratedImage{
			Prompt:     prompt,
			Style:      style,
			Resolution: resolution,
			Format:     format,
		})
	}

	if err := h.store.CreateImages(c.UserContext(), records); err != nil {
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("batch generation error")
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to start batch generation")
	}

	results := make([]BatchResult, 0, len(records))
	for _, r := range records {
		results = append(results, BatchResult{ID: r.ID, Prompt: r.Prompt, Status: "queued"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Batch generation started for %d images", len(results)),
		"results": results,
	})
}
