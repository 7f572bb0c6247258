package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is an append-only product review. Creating one recomputes the owning
// product's AvgRating and ReviewCount from the full review set.
type Review struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	UserID       uuid.UUID
	Rating       int    // Whole stars, 1-5.
	Comment      string // Never empty.
	ReviewerName string // Display name joined from the author, read-only.
	CreatedAt    time.Time
}
