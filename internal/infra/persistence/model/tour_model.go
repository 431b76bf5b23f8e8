package model

import (
	"time"

	"github.com/google/uuid"
)

// TourModel mirrors the 'tours' table. Collection-valued columns are stored
// as jsonb through GORM's json serializer.
type TourModel struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key"`
	Name           string      `gorm:"type:varchar(255);not null"`
	Description    string      `gorm:"type:text;not null"`
	Duration       int         `gorm:"not null"`
	Price          float64     `gorm:"type:numeric(12,2);not null"`
	AvailableDates []time.Time `gorm:"type:jsonb;serializer:json"`
	Image          string      `gorm:"type:text"`
	MaxCapacity    int         `gorm:"not null;default:20"`
	Destination    string      `gorm:"type:varchar(255);not null;index"`
	Includes       []string    `gorm:"type:jsonb;serializer:json"`
	Difficulty     string      `gorm:"type:varchar(20);not null;default:'moderate'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (TourModel) TableName() string {
	return "tours"
}
