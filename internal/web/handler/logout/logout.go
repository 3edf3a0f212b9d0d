// Package logout ends the admin session.
package logout

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/web/handler"
	"github.com/beacon-foundation/beacon/internal/web/handler/login"
	"github.com/beacon-foundation/beacon/internal/web/session"
)

// Path is the path of the logout action.
const Path = "/logout"

// Service is the logout handler service.
type Service struct{}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	app.Get(Path, s.Get)

	return nil
}

// Get deletes the stored session and expires the cookie.
func (s *Service) Get(c *fiber.Ctx) error {
	if cookie := c.Cookies("session"); cookie != "" {
		_ = session.Store.Storage.Delete(cookie)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect(login.Path)
}
