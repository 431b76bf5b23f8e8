package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{"pending to confirmed", ReservationStatusPending, ReservationStatusConfirmed, true},
		{"pending to cancelled", ReservationStatusPending, ReservationStatusCancelled, true},
		{"pending to completed skips confirmation", ReservationStatusPending, ReservationStatusCompleted, false},
		{"confirmed to completed", ReservationStatusConfirmed, ReservationStatusCompleted, true},
		{"confirmed to cancelled", ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{"confirmed back to pending", ReservationStatusConfirmed, ReservationStatusPending, false},
		{"completed is terminal", ReservationStatusCompleted, ReservationStatusCancelled, false},
		{"cancelled is terminal", ReservationStatusCancelled, ReservationStatusPending, false},
		{"no self transition", ReservationStatusPending, ReservationStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_IsValid(t *testing.T) {
	assert.True(t, ReservationStatusPending.IsValid())
	assert.True(t, ReservationStatusCancelled.IsValid())
	assert.False(t, ReservationStatus("archived").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}
