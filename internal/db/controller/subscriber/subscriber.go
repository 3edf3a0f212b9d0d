// Package subscriber provides CRUD and bulk operations for newsletter
// subscribers.
package subscriber

import (
	"errors"

	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/db/models"
)

var (
	// ErrSubscriberNotFound is returned when a subscriber is not found.
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrEmailEmpty is returned when subscribing with an empty email.
	ErrEmailEmpty = errors.New("subscriber email cannot be empty")
	// ErrAlreadySubscribed is returned when the email is already on the list.
	ErrAlreadySubscribed = errors.New("email is already subscribed")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all subscribers, newest first.
func GetAll(db *gorm.DB) ([]models.Subscriber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var subscribers []models.Subscriber
	result := db.Order("subscribed_at DESC").Find(&subscribers)
	if result.Error != nil {
		return nil, result.Error
	}

	return subscribers, nil
}

// Create adds a new subscriber.
func Create(db *gorm.DB, s *models.Subscriber) error {
	if db == nil {
		return ErrDBNil
	}
	if s == nil || s.Email == "" {
		return ErrEmailEmpty
	}

	var existing models.Subscriber
	result := db.Where("email = ?", s.Email).First(&existing)
	if result.Error == nil {
		return ErrAlreadySubscribed
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	return db.Create(s).Error
}

// Delete removes a subscriber by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Subscriber{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriberNotFound
	}

	return nil
}

// BulkDelete removes all subscribers whose id is in ids. Ids that are
// already gone are no-ops, not errors. Returns the number of rows removed.
func BulkDelete(db *gorm.DB, ids []uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	if len(ids) == 0 {
		return 0, nil
	}

	result := db.Delete(&models.Subscriber{}, ids)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
