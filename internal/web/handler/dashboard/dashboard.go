// Package dashboard renders the back office landing page.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/db/controller/content"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/web/handler"
)

const (
	// Path is the path to the dashboard page.
	Path = "/dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard"
)

// Service is the dashboard handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get renders the dashboard with per-entity record counts.
func (s *Service) Get(c *fiber.Ctx) error {
	counts := map[string]int64{
		"Events":      s.count(content.Count[models.Event]),
		"Programs":    s.count(content.Count[models.Program]),
		"News":        s.count(content.Count[models.NewsPost]),
		"Videos":      s.count(content.Count[models.Video]),
		"Team":        s.count(content.Count[models.TeamMember]),
		"Courses":     s.count(content.Count[models.Course]),
		"History":     s.count(content.Count[models.HistoryItem]),
		"Subscribers": s.count(content.Count[models.Subscriber]),
		"Volunteers":  s.count(content.Count[models.Volunteer]),
		"Settings":    s.count(content.Count[models.Setting]),
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":  s.cfg.Title,
		"Counts": counts,
	}, handler.BaseLayout)
}

// count swallows counting errors, a broken tile must not break the page.
func (s *Service) count(f func(db *gorm.DB) (int64, error)) int64 {
	n, err := f(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count records for dashboard")
		return 0
	}

	return n
}
