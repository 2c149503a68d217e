package domain

import (
	"errors"
	"time"

	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a resume id has no stored row.
var ErrNotFound = errors.New("resume not found")

// Resume is the persisted aggregate: one stored resume owned by a user,
// carrying the full editable document plus listing metadata.
type Resume struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Title     string         `json:"title"`
	ATSScore  int            `json:"ats_score"`
	Document  model.Document `json:"document"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ResumeSummary is the dashboard listing row; the document body stays behind.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	ATSScore  int       `json:"ats_score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
