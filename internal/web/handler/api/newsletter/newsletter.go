// Package newsletter provides the JSON API for newsletter subscribers,
// including bulk delete and CSV export.
package newsletter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	subscriberctl "github.com/beacon-foundation/beacon/internal/db/controller/subscriber"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/web/handler"
)

const (
	// Path is the base path of the newsletter API.
	Path = "/api/newsletter"

	// exportFilename is the attachment name of the CSV export.
	exportFilename = "subscribers.csv"

	// exportDateLayout formats the subscription date in the export.
	exportDateLayout = "2006-01-02 15:04"
)

// Service is the newsletter API handler service.
type Service struct {
	db *gorm.DB
}

// Handler is the newsletter API handler.
var Handler = Service{}

// bulkDeleteRequest is the body of a bulk delete.
type bulkDeleteRequest struct {
	IDs []uint64 `json:"ids"`
}

// Init initializes the newsletter API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/export", s.Export)
		router.Post(handler.RouterRootPath, s.Subscribe)
		router.Post("/bulk-delete", s.BulkDelete)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns all subscribers, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	subscribers, err := subscriberctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list subscribers")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to list subscribers")
	}

	return c.JSON(subscribers)
}

// Subscribe adds a new subscriber from the public signup form.
func (s *Service) Subscribe(c *fiber.Ctx) error {
	sub := new(models.Subscriber)
	if err := c.BodyParser(sub); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.Validate.Struct(sub); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	if sub.SubscribedAt.IsZero() {
		sub.SubscribedAt = time.Now()
	}

	if err := subscriberctl.Create(s.db, sub); err != nil {
		switch {
		case errors.Is(err, subscriberctl.ErrEmailEmpty):
			return handler.Error(c, fiber.StatusBadRequest, "email cannot be empty")
		case errors.Is(err, subscriberctl.ErrAlreadySubscribed):
			return handler.Error(c, fiber.StatusConflict, "email is already subscribed")
		default:
			log.Error().Err(err).Msg("failed to create subscriber")
			return handler.Error(c, fiber.StatusInternalServerError, "failed to subscribe")
		}
	}

	log.Info().Str("email", sub.Email).Msg("newsletter subscription added")

	return c.Status(fiber.StatusCreated).JSON(sub)
}

// Delete removes one subscriber by ID.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	if err = subscriberctl.Delete(s.db, id); err != nil {
		if errors.Is(err, subscriberctl.ErrSubscriberNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "subscriber not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete subscriber")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to delete subscriber")
	}

	log.Info().Uint64("id", id).Msg("subscriber deleted")

	return c.SendStatus(fiber.StatusNoContent)
}

// BulkDelete removes all subscribers whose id is in the request list and
// reports how many rows were removed. Missing ids are skipped silently.
func (s *Service) BulkDelete(c *fiber.Ctx) error {
	req := new(bulkDeleteRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	deleted, err := subscriberctl.BulkDelete(s.db, req.IDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to bulk delete subscribers")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to delete subscribers")
	}

	log.Info().Int64("deleted", deleted).Int("requested", len(req.IDs)).Msg("subscribers bulk deleted")

	return c.JSON(fiber.Map{"deleted": deleted})
}

// Export streams all subscribers as a CSV attachment.
func (s *Service) Export(c *fiber.Ctx) error {
	subscribers, err := subscriberctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to export subscribers")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to export subscribers")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"email", "subscribed_at"}}
	for _, sub := range subscribers {
		records = append(records, []string{sub.Email, sub.SubscribedAt.Format(exportDateLayout)})
	}

	if err = w.WriteAll(records); err != nil {
		log.Error().Err(err).Msg("failed to write subscriber csv")
		return handler.Error(c, fiber.StatusInternalServerError, "failed to export subscribers")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)

	return c.Send(buf.Bytes())
}
