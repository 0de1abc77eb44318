package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ContentGenerator is the slice of the genai client used for images.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Uploader stores image bytes and returns where they can be fetched.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, object, contentType string) (string, error)
}

// GeminiImageGenerator renders images with a Gemini image model and publishes
// them through an Uploader.
type GeminiImageGenerator struct {
	models   ContentGenerator
	uploader Uploader
	model    string
	timeout  time.Duration
}

func NewGeminiImageGenerator(models ContentGenerator, uploader Uploader, model string, timeout time.Duration) *GeminiImageGenerator {
	return &GeminiImageGenerator{
		models:   models,
		uploader: uploader,
		model:    model,
		timeout:  timeout,
	}
}

// NewGeminiClient builds a genai client for the Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return client, nil
}

func (g *GeminiImageGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &TransportError{Err: err}
	}

	data, mimeType, ok := firstImage(result)
	if !ok {
		return "", &ReportedError{Message: "No image data found in response"}
	}

	filename := fmt.Sprintf("generated_%d.%s", time.Now().UnixNano(), extension(mimeType))
	url, err := g.uploader.Upload(ctx, bytes.NewReader(data), filename, mimeType)
	if err != nil {
		return "", fmt.Errorf("upload generated image: %w", err)
	}

	return url, nil
}

func firstImage(result *genai.GenerateContentResponse) ([]byte, string, bool) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, "", false
	}

	content := result.Candidates[0].Content
	if content == nil {
		return nil, "", false
	}

	for _, part := range content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, part.InlineData.MIMEType, true
		}
	}

	return nil, "", false
}

func extension(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}
