package models

import (
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// OpenStatuses are the states a terminal update may start from.
var OpenStatuses = []Status{StatusPending, StatusGenerating}

type GeneratedImage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Prompt       string    `json:"prompt" gorm:"type:text;not null"`
	Style        string    `json:"style" gorm:"size:50;not null;default:'realistic'"`
	Resolution   string    `json:"resolution" gorm:"size:20;not null;default:'512x512'"`
	Format       string    `json:"format" gorm:"size:10;not null;default:'PNG'"`
	ImageURL     *string   `json:"image_url" gorm:"type:text"`
	Status       Status    `json:"status" gorm:"size:20;not null;default:'pending';index"`
	ErrorMessage *string   `json:"error_message" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time `json:"updated_at"`
}
