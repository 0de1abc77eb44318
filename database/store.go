package database

import (
	"context"
	"errors"
	"time"

	"github.com/krishkalaria12/snap-gen/models"
	"gorm.io/gorm"
)

// ErrAlreadyTerminal is returned when a terminal update targets a record that
// is already completed or failed.
var ErrAlreadyTerminal = errors.New("generation already finished")

// Store persists generation records. Every method commits before returning.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateImage(ctx context.Context, img *models.GeneratedImage) error {
	img.Status = models.StatusGenerating
	return s.db.WithContext(ctx).Create(img).Error
}

// CreateImages enrolls a batch inside one transaction so either every record
// is stored or none is.
func (s *Store) CreateImages(ctx context.Context, imgs []*models.GeneratedImage) error {
	if len(imgs) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, img := range imgs {
			img.Status = models.StatusGenerating
			if err := tx.Create(img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) CompleteImage(ctx context.Context, id uint, imageURL string) (*models.GeneratedImage, error) {
	return finish[models.GeneratedImage](ctx, s.db, id, map[string]any{
		"status":    models.StatusCompleted,
		"image_url": imageURL,
	})
}

func (s *Store) FailImage(ctx context.Context, id uint, message string) (*models.GeneratedImage, error) {
	return finish[models.GeneratedImage](ctx, s.db, id, map[string]any{
		"status":        models.StatusFailed,
		"error_message": message,
	})
}

func (s *Store) ListImages(ctx context.Context, page, perPage int) (models.Page[models.GeneratedImage], error) {
	return list[models.GeneratedImage](ctx, s.db, page, perPage)
}

func (s *Store) CreateVideo(ctx context.Context, video *models.GeneratedVideo) error {
	video.Status = models.StatusGenerating
	return s.db.WithContext(ctx).Create(video).Error
}

func (s *Store) CompleteVideo(ctx context.Context, id uint, result models.VideoResult) (*models.GeneratedVideo, error) {
	return finish[models.GeneratedVideo](ctx, s.db, id, map[string]any{
		"status":        models.StatusCompleted,
		"video_url":     result.VideoURL,
		"thumbnail_url": result.ThumbnailURL,
		"file_size":     result.FileSize,
	})
}

func (s *Store) FailVideo(ctx context.Context, id uint, message string) (*models.GeneratedVideo, error) {
	return finish[models.GeneratedVideo](ctx, s.db, id, map[string]any{
		"status":        models.StatusFailed,
		"error_message": message,
	})
}

func (s *Store) ListVideos(ctx context.Context, page, perPage int) (models.Page[models.GeneratedVideo], error) {
	return list[models.GeneratedVideo](ctx, s.db, page, perPage)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// finish applies a terminal update to the record with the given id, only if
// it has not reached a terminal state yet, and returns the stored record.
func finish[T any](ctx context.Context, db *gorm.DB, id uint, updates map[string]any) (*T, error) {
	updates["updated_at"] = time.Now()

	db = db.WithContext(ctx)
	res := db.Model(new(T)).
		Where("id = ? AND status IN ?", id, models.OpenStatuses).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}

	var record T
	if err := db.First(&record, id).Error; err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		return &record, ErrAlreadyTerminal
	}
	return &record, nil
}

func list[T any](ctx context.Context, db *gorm.DB, page, perPage int) (models.Page[T], error) {
	page, perPage = models.NormalizePage(page, perPage)
	result := models.Page[T]{Items: []T{}, CurrentPage: page}

	var zero T
	if err := db.WithContext(ctx).Model(&zero).Count(&result.Total).Error; err != nil {
		return result, err
	}
	result.Pages = models.PageCount(result.Total, perPage)

	if int64((page-1)*perPage) >= result.Total {
		return result, nil
	}

	err := db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&result.Items).Error
	return result, err
}
