package handler

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/snap-gen/generator"
	"github.com/krishkalaria12/snap-gen/models"
	"github.com/rs/zerolog"
)

const (
	minPromptLength = 3
	maxBatchSize    = 5
)

// Store is the persistence the handlers depend on.
type Store interface {
	CreateImage(ctx context.Context, img *models.GeneratedImage) error
	CreateImages(ctx context.Context, imgs []*models.GeneratedImage) error
	CompleteImage(ctx context.Context, id uint, imageURL string) (*models.GeneratedImage, error)
	FailImage(ctx context.Context, id uint, message string) (*models.GeneratedImage, error)
	ListImages(ctx context.Context, page, perPage int) (models.Page[models.GeneratedImage], error)

	CreateVideo(ctx context.Context, video *models.GeneratedVideo) error
	CompleteVideo(ctx context.Context, id uint, result models.VideoResult) (*models.GeneratedVideo, error)
	FailVideo(ctx context.Context, id uint, message string) (*models.GeneratedVideo, error)
	ListVideos(ctx context.Context, page, perPage int) (models.Page[models.GeneratedVideo], error)

	Ping(ctx context.Context) error
}

type Handler struct {
	store  Store
	images generator.ImageGenerator
	videos generator.VideoGenerator
	log    zerolog.Logger
}

func New(store Store, images generator.ImageGenerator, videos generator.VideoGenerator, log zerolog.Logger) *Handler {
	return &Handler{
		store:  store,
		images: images,
		videos: videos,
		log:    log,
	}
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// validPrompt trims prompt and reports whether it is long enough to generate from.
func validPrompt(prompt string) (string, bool) {
	prompt = strings.TrimSpace(prompt)
	return prompt, utf8.RuneCountInString(prompt) >= minPromptLength
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
