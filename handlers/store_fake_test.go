package handler_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/krishkalaria12/snap-gen/database"
	"github.com/krishkalaria12/snap-gen/models"
	"gorm.io/gorm"
)

// memStore mirrors database.Store semantics in memory.
type memStore struct {
	mu     sync.Mutex
	nextID uint
	clock  time.Time

	images map[uint]*models.GeneratedImage
	videos map[uint]*models.GeneratedVideo

	createErr   error
	completeErr error
	listErr     error
	pingErr     error

	terminalUpdates map[uint]int
}

func newMemStore() *memStore {
	return &memStore{
		clock:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		images:          map[uint]*models.GeneratedImage{},
		videos:          map[uint]*models.GeneratedVideo{},
		terminalUpdates: map[uint]int{},
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) CreateImage(ctx context.Context, img *models.GeneratedImage) error {
	return s.CreateImages(ctx, []*models.GeneratedImage{img})
}

func (s *memStore) CreateImages(ctx context.Context, imgs []*models.GeneratedImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	for _, img := range imgs {
		now := s.tick()
		s.nextID++
		img.ID = s.nextID
		img.Status = models.StatusGenerating
		img.CreatedAt, img.UpdatedAt = now, now
		stored := *img
		s.images[img.ID] = &stored
	}
	return nil
}

func (s *memStore) CompleteImage(ctx context.Context, id uint, imageURL string) (*models.GeneratedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	img, err := s.openImage(id)
	if err != nil {
		return nil, err
	}
	img.Status = models.StatusCompleted
	img.ImageURL = &imageURL
	img.UpdatedAt = s.tick()
	s.terminalUpdates[id]++
	out := *img
	return &out, nil
}

func (s *memStore) FailImage(ctx context.Context, id uint, message string) (*models.GeneratedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.openImage(id)
	if err != nil {
		return nil, err
	}
	img.Status = models.StatusFailed
	img.ErrorMessage = &message
	img.UpdatedAt = s.tick()
	s.terminalUpdates[id]++
	out := *img
	return &out, nil
}

func (s *memStore) openImage(id uint) (*models.GeneratedImage, error) {
	img, ok := s.images[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if img.Status.Terminal() {
		return nil, database.ErrAlreadyTerminal
	}
	return img, nil
}

func (s *memStore) ListImages(ctx context.Context, page, perPage int) (models.Page[models.GeneratedImage], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return models.Page[models.GeneratedImage]{}, s.listErr
	}
	all := make([]models.GeneratedImage, 0, len(s.images))
	for _, img := range s.images {
		all = append(all, *img)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return paginate(all, page, perPage), nil
}

func (s *memStore) CreateVideo(ctx context.Context, video *models.GeneratedVideo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	now := s.tick()
	s.nextID++
	video.ID = s.nextID
	video.Status = models.StatusGenerating
	video.CreatedAt, video.UpdatedAt = now, now
	stored := *video
	s.videos[video.ID] = &stored
	return nil
}

func (s *memStore) CompleteVideo(ctx context.Context, id uint, result models.VideoResult) (*models.GeneratedVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	video, err := s.openVideo(id)
	if err != nil {
		return nil, err
	}
	video.Status = models.StatusCompleted
	video.VideoURL = &result.VideoURL
	video.ThumbnailURL = &result.ThumbnailURL
	video.FileSize = &result.FileSize
	video.UpdatedAt = s.tick()
	s.terminalUpdates[id]++
	out := *video
	return &out, nil
}

func (s *memStore) FailVideo(ctx context.Context, id uint, message string) (*models.GeneratedVideo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	video, err := s.openVideo(id)
	if err != nil {
		return nil, err
	}
	video.Status = models.StatusFailed
	video.ErrorMessage = &message
	video.UpdatedAt = s.tick()
	s.terminalUpdates[id]++
	out := *video
	return &out, nil
}

func (s *memStore) openVideo(id uint) (*models.GeneratedVideo, error) {
	video, ok := s.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if video.Status.Terminal() {
		return nil, database.ErrAlreadyTerminal
	}
	return video, nil
}

func (s *memStore) ListVideos(ctx context.Context, page, perPage int) (models.Page[models.GeneratedVideo], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return models.Page[models.GeneratedVideo]{}, s.listErr
	}
	all := make([]models.GeneratedVideo, 0, len(s.videos))
	for _, v := range s.videos {
		all = append(all, *v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return paginate(all, page, perPage), nil
}

func (s *memStore) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s *memStore) image(id uint) models.GeneratedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.images[id]
}

func (s *memStore) video(id uint) models.GeneratedVideo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.videos[id]
}

func paginate[T any](all []T, page, perPage int) models.Page[T] {
	page, perPage = models.NormalizePage(page, perPage)
	out := models.Page[T]{
		Items:       []T{},
		Total:       int64(len(all)),
		Pages:       models.PageCount(int64(len(all)), perPage),
		CurrentPage: page,
	}
	start := (page - 1) * perPage
	if start >= len(all) {
		return out
	}
	end := min(start+perPage, len(all))
	out.Items = append(out.Items, all[start:end]...)
	return out
}

var errDatabaseDown = errors.New("database is down")
