package model

import (
	"time"

	"tourdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ReservationModel mirrors the 'reservations' table. CustomerID and TourID
// carry no foreign-key constraints: the referenced rows may be deleted while
// the reservation survives, so references can dangle.
type ReservationModel struct {
	ID              uuid.UUID                `gorm:"type:uuid;primary_key"`
	CustomerID      uuid.UUID                `gorm:"type:uuid;not null;index"`
	TourID          uuid.UUID                `gorm:"type:uuid;not null;index"`
	Date            time.Time                `gorm:"not null"`
	NumberOfPeople  int                      `gorm:"not null"`
	TotalPrice      float64                  `gorm:"type:numeric(12,2);not null"`
	Status          string                   `gorm:"type:varchar(20);not null;default:'pending'"`
	SpecialRequests string                   `gorm:"type:text"`
	ContactPhone    string                   `gorm:"type:varchar(50);not null"`
	Emergency       *entity.EmergencyContact `gorm:"type:jsonb;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
