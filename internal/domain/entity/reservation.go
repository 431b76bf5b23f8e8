package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus tracks where a booking sits in its lifecycle.
type ReservationStatus string

// Defines the reservation lifecycle states.
const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCompleted, ReservationStatusCancelled:
		return true
	}

	return false
}

// CanTransitionTo reports whether the lifecycle permits moving from the
// current status to the target. Completed and cancelled are terminal.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case ReservationStatusPending:
		return target == ReservationStatusConfirmed || target == ReservationStatusCancelled
	case ReservationStatusConfirmed:
		return target == ReservationStatusCompleted || target == ReservationStatusCancelled
	default:
		return false
	}
}

// EmergencyContact is the person to reach if something goes wrong during a
// tour.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerSummary is the customer projection embedded in reservation
// responses.
type CustomerSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
}

// TourSummary is the tour projection embedded in reservation responses.
type TourSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`
}

// Reservation represents a booking of a tour by a customer. TotalPrice is
// computed once at creation from the tour's price and never recomputed, even
// when the tour or the party size changes afterwards. CustomerID and TourID
// may reference rows that have since been deleted; in that case the matching
// summary is simply absent.
type Reservation struct {
	ID              uuid.UUID         `json:"id"`
	CustomerID      uuid.UUID         `json:"customerId"`
	TourID          uuid.UUID         `json:"tourId"`
	Date            time.Time         `json:"date"`
	NumberOfPeople  int               `json:"numberOfPeople"`
	TotalPrice      float64           `json:"totalPrice"`
	Status          ReservationStatus `json:"status"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	ContactPhone    string            `json:"contactPhone"`
	Emergency       *EmergencyContact `json:"emergencyContact,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`

	// Populated on read from whatever referenced rows still exist.
	Customer *CustomerSummary `json:"customer,omitempty"`
	Tour     *TourSummary     `json:"tour,omitempty"`
}
