package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/krishkalaria12/snap-gen/models"
)

// MockVideoFileSize is the size reported for every simulated render.
const MockVideoFileSize int64 = 5 * 1024 * 1024

// VideoGenerator renders a video for an already persisted record.
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, id uint, prompt string) (models.VideoResult, error)
}

// SimulatedVideo stands in for a real video service: it waits, then returns
// URLs derived from the record id.
type SimulatedVideo struct {
	Delay   time.Duration
	BaseURL string
}

func NewSimulatedVideo(delay time.Duration, baseURL string) *SimulatedVideo {
	return &SimulatedVideo{Delay: delay, BaseURL: baseURL}
}

func (v *SimulatedVideo) GenerateVideo(ctx context.Context, id uint, prompt string) (models.VideoResult, error) {
	if v.Delay > 0 {
		timer := time.NewTimer(v.Delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.VideoResult{}, ctx.Err()
		}
	}

	return models.VideoResult{
		VideoURL:     fmt.Sprintf("%s/video/%d.mp4", v.BaseURL, id),
		ThumbnailURL: fmt.Sprintf("%s/thumbnail/%d.jpg", v.BaseURL, id),
		FileSize:     MockVideoFileSize,
	}, nil
}
