// Package volunteers provides the JSON API for volunteer applications.
// Application submission is public, the rest is admin-only.
package volunteers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	volunteerctl "github.com/beacon-foundation/beacon/internal/db/controller/volunteer"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/web/handler"
)

// Path is the base path of the volunteers API.
const Path = "/api/volunteers"

// Service is the volunteers API handler service.
type Service struct {
	db *gorm.DB
}

// Handler is the volunteers API handler.
var Handler = Service{}

// statusRequest is the body of a status update.
type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Init initializes the volunteers API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Apply)
		router.Patch("/:id/status", s.UpdateStatus)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns all volunteer applications, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	volunteers, err := volunteerctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list volunteers")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list volunteers")
	}

	return c.JSON(volunteers)
}

// Apply stores a new application from the public volunteer form. The status
// always starts as pending, whatever the client sent.
func (s *Service) Apply(c *fiber.Ctx) error {
	v := new(models.Volunteer)
	if err := c.BodyParser(v); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.Validate.Struct(v); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	v.ID = 0
	v.Status = models.VolunteerStatusPending

	if err := volunteerctl.Create(s.db, v); err != nil {
		log.Error().Err(err).Msg("failed to create volunteer application")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to submit application")
	}

	log.Info().Uint64("id", v.ID).Str("name", v.Name).Msg("volunteer application received")

	return c.Status(fiber.StatusCreated).JSON(v)
}

// UpdateStatus sets the status tag of an application and returns the stored
// record.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	req := new(statusRequest)
	if err = c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := volunteerctl.UpdateStatus(s.db, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, volunteerctl.ErrInvalidStatus):
			return handler.Error(c, fiber.StatusBadRequest, "invalid volunteer status")
		case errors.Is(err, volunteerctl.ErrVolunteerNotFound):
			return handler.Error(c, fiber.StatusNotFound, "volunteer application not found")
		default:
			log.Error().Err(err).Uint64("id", id).Msg("failed to update volunteer status")
			return handler.Error(c, fiber.StatusInternalServerError, "failed to update status")
		}
	}

	log.Info().Uint64("id", id).Str("status", req.Status).Msg("volunteer status updated")

	return c.JSON(updated)
}

// Delete removes a volunteer application by ID.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	if err = volunteerctl.Delete(s.db, id); err != nil {
		if errors.Is(err, volunteerctl.ErrVolunteerNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "volunteer application not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete volunteer application")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to delete application")
	}

	log.Info().Uint64("id", id).Msg("volunteer application deleted")

	return c.SendStatus(fiber.StatusNoContent)
}
