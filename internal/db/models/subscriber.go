package models

import (
	"time"
)

// Subscriber represents a newsletter subscriber.
type Subscriber struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;size:255;not null" json:"email" validate:"required,email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
