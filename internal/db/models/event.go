package models

import (
	"time"
)

// Event represents a foundation event shown on the public events page.
// Whether an event is upcoming or past is derived from StartsAt, it is not
// stored.
type Event struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required"`
	Description string    `json:"description"`
	Location    string    `gorm:"size:200" json:"location"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	StartsAt    time.Time `gorm:"index" json:"starts_at" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
