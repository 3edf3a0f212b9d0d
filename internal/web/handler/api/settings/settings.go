// Package settings provides the JSON API for site-wide settings.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	settingctl "github.com/beacon-foundation/beacon/internal/db/controller/setting"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/web/handler"
)

// Path is the base path of the settings API.
const Path = "/api/settings"

// Service is the settings API handler service.
type Service struct {
	db *gorm.DB
}

// Handler is the settings API handler.
var Handler = Service{}

// updateRequest is the body of a value update.
type updateRequest struct {
	Value string `json:"value"`
}

// Init initializes the settings API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/grouped", s.Grouped)
		router.Post(handler.RouterRootPath, s.Create)
		router.Patch("/:key", s.Update)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns all settings ordered by group and key.
func (s *Service) List(c *fiber.Ctx) error {
	settings, err := settingctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list settings")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list settings")
	}

	return c.JSON(settings)
}

// Grouped returns all settings bucketed by group tag.
func (s *Service) Grouped(c *fiber.Ctx) error {
	grouped, err := settingctl.GetGrouped(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to group settings")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list settings")
	}

	return c.JSON(grouped)
}

// Create inserts a new setting and returns it.
func (s *Service) Create(c *fiber.Ctx) error {
	setting := new(models.Setting)
	if err := c.BodyParser(setting); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.Validate.Struct(setting); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := settingctl.Create(s.db, setting)
	if err != nil {
		switch {
		case errors.Is(err, settingctl.ErrSettingKeyEmpty):
			return handler.Error(c, fiber.StatusBadRequest, "setting key cannot be empty")
		case errors.Is(err, settingctl.ErrSettingAlreadyExists):
			return handler.Error(c, fiber.StatusConflict, "setting already exists")
		default:
			log.Error().Err(err).Str("key", setting.Key).Msg("failed to create setting")
			return handler.Error(c, fiber.StatusInternalServerError, "failed to create setting")
		}
	}

	log.Info().Str("key", created.Key).Msg("setting created")

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update changes the value of the setting addressed by key and returns the
// stored record.
func (s *Service) Update(c *fiber.Ctx) error {
	key := c.Params("key")

	req := new(updateRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := settingctl.UpdateByKey(s.db, key, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, settingctl.ErrSettingKeyEmpty):
			return handler.Error(c, fiber.StatusBadRequest, "setting key cannot be empty")
		case errors.Is(err, settingctl.ErrSettingNotFound):
			return handler.Error(c, fiber.StatusNotFound, "setting not found")
		default:
			log.Error().Err(err).Str("key", key).Msg("failed to update setting")
			return handler.Error(c, fiber.StatusInternalServerError, "failed to update setting")
		}
	}

	log.Info().Str("key", key).Msg("setting updated")

	return c.JSON(updated)
}

// Delete removes a setting by its numeric ID.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	if err = settingctl.Delete(s.db, id); err != nil {
		if errors.Is(err, settingctl.ErrSettingNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "setting not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete setting")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to delete setting")
	}

	log.Info().Uint64("id", id).Msg("setting deleted")

	return c.SendStatus(fiber.StatusNoContent)
}
