// Package event provides CRUD and date-window queries for events.
package event

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/db/controller/content"
	"github.com/beacon-foundation/beacon/internal/db/models"
)

var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all events ordered by start date, newest first.
func GetAll(db *gorm.DB) ([]models.Event, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var events []models.Event
	result := db.Order("starts_at DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Upcoming retrieves events starting at or after now, soonest first.
func Upcoming(db *gorm.DB, now time.Time) ([]models.Event, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var events []models.Event
	result := db.Where("starts_at >= ?", now).Order("starts_at ASC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Past retrieves events that started before now, most recent first.
func Past(db *gorm.DB, now time.Time) ([]models.Event, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var events []models.Event
	result := db.Where("starts_at < ?", now).Order("starts_at DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Get retrieves an event by its ID.
func Get(db *gorm.DB, id uint64) (*models.Event, error) {
	e, err := content.Get[models.Event](db, id)
	if errors.Is(err, content.ErrNotFound) {
		return nil, ErrEventNotFound
	}

	return e, err
}

// Create inserts a new event.
func Create(db *gorm.DB, e *models.Event) error {
	return content.Create(db, e)
}

// Update saves all fields of an existing event.
func Update(db *gorm.DB, id uint64, e *models.Event) error {
	err := content.Update(db, id, e)
	if errors.Is(err, content.ErrNotFound) {
		return ErrEventNotFound
	}

	return err
}

// Delete removes an event by ID.
func Delete(db *gorm.DB, id uint64) error {
	err := content.Delete[models.Event](db, id)
	if errors.Is(err, content.ErrNotFound) {
		return ErrEventNotFound
	}

	return err
}
