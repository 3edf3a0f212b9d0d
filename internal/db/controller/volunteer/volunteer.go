// Package volunteer provides CRUD and status operations for volunteer
// applications.
package volunteer

import (
	"errors"
	"slices"

	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/db/models"
)

var (
	// ErrVolunteerNotFound is returned when a volunteer application is not found.
	ErrVolunteerNotFound = errors.New("volunteer application not found")
	// ErrInvalidStatus is returned when a status outside the allowed tag set is given.
	ErrInvalidStatus = errors.New("invalid volunteer status")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all volunteer applications, newest first.
func GetAll(db *gorm.DB) ([]models.Volunteer, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var volunteers []models.Volunteer
	result := db.Order("created_at DESC").Find(&volunteers)
	if result.Error != nil {
		return nil, result.Error
	}

	return volunteers, nil
}

// Create stores a new volunteer application with status pending.
func Create(db *gorm.DB, v *models.Volunteer) error {
	if db == nil {
		return ErrDBNil
	}

	if v.Status == "" {
		v.Status = models.VolunteerStatusPending
	}

	return db.Create(v).Error
}

// UpdateStatus sets the status tag on an application. Any allowed status may
// be set from any other, there is no transition graph.
func UpdateStatus(db *gorm.DB, id uint64, status string) (*models.Volunteer, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if !slices.Contains(models.VolunteerStatuses, status) {
		return nil, ErrInvalidStatus
	}

	var v models.Volunteer
	result := db.First(&v, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, result.Error
	}

	v.Status = status
	result = db.Save(&v)
	if result.Error != nil {
		return nil, result.Error
	}

	return &v, nil
}

// Delete removes a volunteer application by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Volunteer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVolunteerNotFound
	}

	return nil
}
