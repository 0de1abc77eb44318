package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/snap-gen/enhancer"
	"github.com/krishkalaria12/snap-gen/generator"
	"github.com/krishkalaria12/snap-gen/middleware"
	"github.com/krishkalaria12/snap-gen/models"
)

const (
	defaultImageResolution = "512x512"
	defaultImageFormat     = "PNG"
)

type GenerateImageRequest struct {
	Prompt     string `json:"prompt"`
	Style      string `json:"style"`
	Resolution string `json:"resolution"`
	Format     string `json:"format"`
}

func (h *Handler) GenerateImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.log.With().Str("request_id", middleware.GetRequestID(c)).Logger()

	var req GenerateImageRequest
	if err := c.BodyParser(&req); err != nil || req.Prompt == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Prompt is required")
	}

	prompt, ok := validPrompt(req.Prompt)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Prompt must be at least 3 characters long")
	}

	record := &models.GeneratedImage{
		Prompt:     prompt,
		Style:      valueOr(req.Style, enhancer.DefaultImageStyle),
		Resolution: valueOr(req.Resolution, defaultImageResolution),
		Format:     valueOr(req.Format, defaultImageFormat),
	}
	if err := h.store.CreateImage(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to create image record")
		return errorResponse(c, fiber.StatusInternalServerError, "An unexpected error occurred")
	}

	// From here on the record exists and every exit must leave it terminal.
	log = log.With().Uint("image_id", record.ID).Logger()

	enhanced := enhancer.Enhance(prompt, record.Style, enhancer.ImageStyles)
	log.Info().Str("prompt", enhanced).Msg("sending request to image generator")

	imageURL, err := h.images.GenerateImage(ctx, enhanced)
	if err != nil {
		failure, known := generator.Classify(err)
		if !known {
			failure = generator.Failure{
				RecordMessage: "Unexpected error: " + err.Error(),
				ClientMessage: "An unexpected error occurred",
			}
		}
		log.Error().Err(err).Msg("image generation failed")
		h.failImage(c, record.ID, failure.RecordMessage)
		return errorResponse(c, fiber.StatusInternalServerError, failure.ClientMessage)
	}

	if _, err := h.store.CompleteImage(ctx, record.ID, imageURL); err != nil {
		log.Error().Err(err).Msg("failed to store generated image")
		h.failImage(c, record.ID, "Unexpected error: "+err.Error())
		return errorResponse(c, fiber.StatusInternalServerError, "An unexpected error occurred")
	}

	log.Info().Str("image_url", imageURL).Msg("image generated")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"imageUrl":   imageURL,
		"id":         record.ID,
		"prompt":     prompt,
		"style":      record.Style,
		"resolution": record.Resolution,
		"format":     record.Format,
	})
}

func (h *Handler) failImage(c *fiber.Ctx, id uint, message string) {
	if _, err := h.store.FailImage(c.UserContext(), id, message); err != nil {
		h.log.Error().Err(err).Uint("image_id", id).Msg("failed to mark image as failed")
	}
}
