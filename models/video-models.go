package models

import (
	"time"
)

type GeneratedVideo struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Prompt       string    `json:"prompt" gorm:"type:text;not null"`
	Style        string    `json:"style" gorm:"size:50;not null;default:'cinematic'"`
	Duration     string    `json:"duration" gorm:"size:10;not null;default:'5s'"`
	Resolution   string    `json:"resolution" gorm:"size:20;not null;default:'720p'"`
	FPS          int       `json:"fps" gorm:"column:fps;not null;default:24"`
	VideoURL     *string   `json:"video_url" gorm:"type:text"`
	ThumbnailURL *string   `json:"thumbnail_url" gorm:"type:text"`
	Status       Status    `json:"status" gorm:"size:20;not null;default:'pending';index"`
	ErrorMessage *string   `json:"error_message" gorm:"type:text"`
	FileSize     *int64    `json:"file_size"` // bytes
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VideoResult is what a finished video render hands back to the store.
type VideoResult struct {
	VideoURL     string
	ThumbnailURL string
	FileSize     int64
}
