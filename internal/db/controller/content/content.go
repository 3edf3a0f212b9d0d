// Package content provides generic CRUD operations shared by the plain
// content entities (programs, news posts, videos, team members, courses,
// history items). Entities with extra behavior (events, subscribers,
// volunteers, settings) have their own controller packages.
package content

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNilRecord is returned when a nil record is passed to a mutation.
	ErrNilRecord = errors.New("record cannot be nil")
)

// List retrieves all records of the entity type, in primary key order.
func List[T any](db *gorm.DB) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []T
	result := db.Order("id").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Get retrieves a record by its ID.
func Get[T any](db *gorm.DB, id uint64) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var item T
	result := db.First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &item, nil
}

// Create inserts a new record.
func Create[T any](db *gorm.DB, item *T) error {
	if db == nil {
		return ErrDBNil
	}
	if item == nil {
		return ErrNilRecord
	}

	return db.Create(item).Error
}

// Update saves all fields of an existing record. The record must exist.
func Update[T any](db *gorm.DB, id uint64, item *T) error {
	if db == nil {
		return ErrDBNil
	}
	if item == nil {
		return ErrNilRecord
	}

	// ensure the target row exists so a stale id does not turn into an insert
	var existing T
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return result.Error
	}

	return db.Model(&existing).Select("*").Omit("id", "created_at").Updates(item).Error
}

// Delete removes a record by ID. Deleting an id that is already gone
// returns ErrNotFound, callers decide whether that is an error or a no-op.
func Delete[T any](db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of records of the entity type.
func Count[T any](db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(new(T)).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
