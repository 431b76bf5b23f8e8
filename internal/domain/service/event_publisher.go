package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reservation event names published to the broker.
const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
)

// ReservationEvent is emitted on reservation lifecycle changes. It carries
// enough information for downstream consumers to log or trigger analytics
// without querying the primary database.
type ReservationEvent struct {
	Event          string    `json:"event"`
	ReservationID  uuid.UUID `json:"reservation_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	TourID         uuid.UUID `json:"tour_id"`
	TourName       string    `json:"tour_name,omitempty"`
	NumberOfPeople int       `json:"number_of_people"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing reservation events to a
// message queue. Publish failures must not fail the originating request.
type EventPublisher interface {
	// PublishReservationEvent publishes a reservation lifecycle event.
	PublishReservationEvent(ctx context.Context, event *ReservationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
