// Package events provides the JSON API for events, including the derived
// upcoming and past views.
package events

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	eventctl "github.com/beacon-foundation/beacon/internal/db/controller/event"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/web/handler"
)

// Path is the base path of the events API.
const Path = "/api/events"

// Service is the events API handler service.
type Service struct {
	db *gorm.DB

	// now is swappable so tests can pin the upcoming/past boundary.
	now func() time.Time
}

// Handler is the events API handler.
var Handler = Service{now: time.Now}

// Init initializes the events API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	if s.now == nil {
		s.now = time.Now
	}

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/upcoming", s.Upcoming)
		router.Get("/past", s.Past)
		router.Get("/:id", s.Get)
		router.Post(handler.RouterRootPath, s.Create)
		router.Put("/:id", s.Update)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns all events, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	events, err := eventctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list events")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list events")
	}

	return c.JSON(events)
}

// Upcoming returns events starting now or later, soonest first.
func (s *Service) Upcoming(c *fiber.Ctx) error {
	events, err := eventctl.Upcoming(s.db, s.now())
	if err != nil {
		log.Error().Err(err).Msg("failed to list upcoming events")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list events")
	}

	return c.JSON(events)
}

// Past returns events that already started, most recent first.
func (s *Service) Past(c *fiber.Ctx) error {
	events, err := eventctl.Past(s.db, s.now())
	if err != nil {
		log.Error().Err(err).Msg("failed to list past events")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list events")
	}

	return c.JSON(events)
}

// Get returns one event by ID.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	event, err := eventctl.Get(s.db, id)
	if err != nil {
		if errors.Is(err, eventctl.ErrEventNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "event not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to load event")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load event")
	}

	return c.JSON(event)
}

// Create inserts a new event and returns it.
func (s *Service) Create(c *fiber.Ctx) error {
	event := new(models.Event)
	if err := c.BodyParser(event); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.Validate.Struct(event); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	if err := eventctl.Create(s.db, event); err != nil {
		log.Error().Err(err).Msg("failed to create event")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to create event")
	}

	log.Info().Uint64("id", event.ID).Str("title", event.Title).Msg("event created")

	return c.Status(fiber.StatusCreated).JSON(event)
}

// Update overwrites an existing event and returns the stored version.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	event := new(models.Event)
	if err = c.BodyParser(event); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err = handler.Validate.Struct(event); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	if err = eventctl.Update(s.db, id, event); err != nil {
		if errors.Is(err, eventctl.ErrEventNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "event not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to update event")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to update event")
	}

	stored, err := eventctl.Get(s.db, id)
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to reload event")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load event")
	}

	return c.JSON(stored)
}

// Delete removes an event by ID.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	if err = eventctl.Delete(s.db, id); err != nil {
		if errors.Is(err, eventctl.ErrEventNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "event not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete event")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to delete event")
	}

	log.Info().Uint64("id", id).Msg("event deleted")

	return c.SendStatus(fiber.StatusNoContent)
}
