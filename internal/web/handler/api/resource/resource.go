// Package resource provides one generic JSON CRUD handler for the plain
// content entities. Each entity gets its own instance mounted under
// /api/<path>.
package resource

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/db/controller/content"
	"github.com/beacon-foundation/beacon/internal/web/handler"
)

// Service is a generic CRUD handler for one entity type.
type Service[T any] struct {
	path string
	db   *gorm.DB
}

// New creates a resource handler mounted under /api/<path>.
func New[T any](path string) *Service[T] {
	return &Service[T]{path: path}
}

// Init initializes the resource handler and registers its routes.
func (s *Service[T]) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db

	app.Route("/api/"+s.path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/:id", s.Get)
		router.Post(handler.RouterRootPath, s.Create)
		router.Put("/:id", s.Update)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns all records.
func (s *Service[T]) List(c *fiber.Ctx) error {
	items, err := content.List[T](s.db)
	if err != nil {
		log.Error().Err(err).Str("resource", s.path).Msg("list failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list records")
	}

	return c.JSON(items)
}

// Get returns a single record by ID.
func (s *Service[T]) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	item, err := content.Get[T](s.db, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "record not found")
		}

		log.Error().Err(err).Str("resource", s.path).Uint64("id", id).Msg("get failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load record")
	}

	return c.JSON(item)
}

// Create inserts a new record from the JSON body and returns it.
func (s *Service[T]) Create(c *fiber.Ctx) error {
	item := new(T)
	if err := c.BodyParser(item); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.Validate.Struct(item); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	if err := content.Create(s.db, item); err != nil {
		log.Error().Err(err).Str("resource", s.path).Msg("create failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to create record")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update overwrites an existing record and returns the stored version.
func (s *Service[T]) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	item := new(T)
	if err = c.BodyParser(item); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err = handler.Validate.Struct(item); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	if err = content.Update(s.db, id, item); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "record not found")
		}

		log.Error().Err(err).Str("resource", s.path).Uint64("id", id).Msg("update failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to update record")
	}

	stored, err := content.Get[T](s.db, id)
	if err != nil {
		log.Error().Err(err).Str("resource", s.path).Uint64("id", id).Msg("reload after update failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to load record")
	}

	return c.JSON(stored)
}

// Delete removes a record by ID.
func (s *Service[T]) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	if err = content.Delete[T](s.db, id); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "record not found")
		}

		log.Error().Err(err).Str("resource", s.path).Uint64("id", id).Msg("delete failed")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to delete record")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
