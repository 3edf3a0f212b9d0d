package models

import (
	"time"
)

// Volunteer status tags. Any status may be set from any other at any time
// via direct admin action, there is no enforced transition graph.
const (
	VolunteerStatusPending   = "pending"
	VolunteerStatusApproved  = "approved"
	VolunteerStatusContacted = "contacted"
	VolunteerStatusRejected  = "rejected"
)

// VolunteerStatuses lists the closed set of allowed status tags.
var VolunteerStatuses = []string{
	VolunteerStatusPending,
	VolunteerStatusApproved,
	VolunteerStatusContacted,
	VolunteerStatusRejected,
}

// Volunteer represents a volunteer application submitted via the public form.
type Volunteer struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name" validate:"required"`
	Email     string    `gorm:"size:255;not null" json:"email" validate:"required,email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Message   string    `json:"message"`
	Status    string    `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
