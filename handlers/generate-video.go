package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/snap-gen/enhancer"
	"github.com/krishkalaria12/snap-gen/generator"
	"github.com/krishkalaria12/snap-gen/middleware"
	"github.com/krishkalaria12/snap-gen/models"
)

const (
	defaultVideoDuration   = "5s"
	defaultVideoResolution = "720p"
	defaultVideoFPS        = 24
)

type GenerateVideoRequest struct {
	Prompt     string `json:"prompt"`
	Style      string `json:"style"`
	Duration   string `json:"duration"`
	Resolution string `json:"resolution"`
	FPS        *int   `json:"fps"`
}

func (h *Handler) GenerateVideo(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := h.log.With().Str("request_id", middleware.GetRequestID(c)).Logger()

	var req GenerateVideoRequest
	if err := c.BodyParser(&req); err != nil || req.Prompt == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Prompt is required")
	}

	prompt, ok := validPrompt(req.Prompt)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Prompt must be at least 3 characters long")
	}

	fps := defaultVideoFPS
	if req.FPS != nil {
		fps = *req.FPS
	}

	record := &models.GeneratedVideo{
		Prompt:     prompt,
		Style:      valueOr(req.Style, enhancer.DefaultVideoStyle),
		Duration:   valueOr(req.Duration, defaultVideoDuration),
		Resolution: valueOr(req.Resolution, defaultVideoResolution),
		FPS:        fps,
	}
	if err := h.store.CreateVideo(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to create video record")
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to generate video")
	}

	log = log.With().Uint("video_id", record.ID).Logger()

	enhanced := enhancer.Enhance(prompt, record.Style, enhancer.VideoStyles)
	log.Info().Str("prompt", enhanced).Msg("generating video")

	result, err := h.videos.GenerateVideo(ctx, record.ID, enhanced)
	if err != nil {
		failure, known := generator.Classify(err)
		if !known {
			failure = generator.Failure{
				RecordMessage: "Error: " + err.Error(),
				ClientMessage: "Failed to generate video",
			}
		}
		log.Error().Err(err).Msg("video generation failed")
		h.failVideo(c, record.ID, failure.RecordMessage)
		return errorResponse(c, fiber.StatusInternalServerError, failure.ClientMessage)
	}

	if _, err := h.store.CompleteVideo(ctx, record.ID, result); err != nil {
		log.Error().Err(err).Msg("failed to store generated video")
		h.failVideo(c, record.ID, "Error: "+err.Error())
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to generate video")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":       "success",
		"videoUrl":     result.VideoURL,
		"thumbnailUrl": result.ThumbnailURL,
		"id":           record.ID,
		"prompt":       prompt,
		"style":        record.Style,
		"duration":     record.Duration,
		"resolution":   record.Resolution,
		"fps":          record.FPS,
		"fileSize":     result.FileSize,
	})
}

func (h *Handler) failVideo(c *fiber.Ctx, id uint, message string) {
	if _, err := h.store.FailVideo(c.UserContext(), id, message); err != nil {
		h.log.Error().Err(err).Uint("video_id", id).Msg("failed to mark video as failed")
	}
}
