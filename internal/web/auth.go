package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/beacon-foundation/beacon/internal/web/handler"
	"github.com/beacon-foundation/beacon/internal/web/handler/login"
	"github.com/beacon-foundation/beacon/internal/web/session"
)

// publicAPIPosts are the two unauthenticated write endpoints: the newsletter
// subscribe form and the volunteer application form on the public site.
var publicAPIPosts = map[string]bool{
	"/api/newsletter": true,
	"/api/volunteers": true,
}

// publicAPICollections are the collections the public site reads over GET.
// Subscribers and volunteers are deliberately absent: their records carry
// personal data and are read by the back office only.
var publicAPICollections = map[string]bool{
	"settings": true,
	"events":   true,
	"programs": true,
	"news":     true,
	"videos":   true,
	"team":     true,
	"courses":  true,
	"history":  true,
}

// IsPublic reports whether the request may pass without a session. The
// public site reads the content collections over GET and submits the two
// public forms, everything else belongs to the back office.
func IsPublic(c *fiber.Ctx) bool {
	p := strings.ToLower(c.Path())

	switch {
	case strings.HasPrefix(p, "/static"),
		strings.HasPrefix(p, "/checkalive"),
		strings.HasPrefix(p, "/metrics"),
		IsLoginPage(c):
		return true
	case strings.HasPrefix(p, "/api/"):
		if c.Method() == fiber.MethodGet {
			return publicAPICollections[apiCollection(p)]
		}

		return c.Method() == fiber.MethodPost && publicAPIPosts[strings.TrimSuffix(p, "/")]
	default:
		return false
	}
}

// apiCollection extracts the collection segment of an /api/ path, e.g.
// "events" from /api/events/upcoming.
func apiCollection(p string) string {
	rest := strings.TrimPrefix(p, "/api/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}

	return rest
}

// AuthMiddleware is a Fiber middleware that checks for admin authentication.
func AuthMiddleware(c *fiber.Ctx) error {
	var (
		isLoginPage   = IsLoginPage(c)
		sessDataValid bool
	)

	if IsPublic(c) && !isLoginPage {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies("session")

	// check session validity
	if loginCookie != "" {
		sessData := new(session.Data)
		_ = sessData.Read(loginCookie)

		// valid data in session
		if sessData.User.ID > 0 {
			sessDataValid = true
		}
	}

	if sessDataValid && isLoginPage {
		return c.Redirect("/dashboard")
	}

	if !sessDataValid && !isLoginPage {
		// API calls get the uniform JSON error, pages get the login redirect
		if strings.HasPrefix(strings.ToLower(c.Path()), "/api/") {
			return handler.Error(c, fiber.StatusUnauthorized, "authentication required")
		}

		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Path()), login.Path)
}
