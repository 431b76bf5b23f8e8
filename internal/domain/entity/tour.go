package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty grades how demanding a tour is.
type Difficulty string

// Defines the supported difficulty grades.
const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// IsValid reports whether the difficulty is one of the known grades.
func (d Difficulty) IsValid() bool {
	return d == DifficultyEasy || d == DifficultyModerate || d == DifficultyHard
}

// DefaultMaxCapacity is applied when a tour is created without an explicit
// capacity.
const DefaultMaxCapacity = 20

// Tour represents a bookable catalog entry. Price is the per-person price at
// the time of booking; reservations snapshot it so later catalog edits never
// change what was agreed.
type Tour struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Duration       int         `json:"duration"`
	Price          float64     `json:"price"`
	AvailableDates []time.Time `json:"availableDates,omitempty"`
	Image          string      `json:"image,omitempty"`
	MaxCapacity    int         `json:"maxCapacity"`
	Destination    string      `json:"destination"`
	Includes       []string    `json:"includes,omitempty"`
	Difficulty     Difficulty  `json:"difficulty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// Summary projects the tour into the shape embedded in reservation responses.
func (t *Tour) Summary() *TourSummary {
	if t == nil {
		return nil
	}

	return &TourSummary{
		ID:          t.ID,
		Name:        t.Name,
		Destination: t.Destination,
		Duration:    t.Duration,
		Price:       t.Price,
	}
}
