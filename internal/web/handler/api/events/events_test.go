package events

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/db/models"
)

// fixedNow pins the upcoming/past boundary for the tests.
var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.Event{}))

	app := fiber.New()

	s := Service{now: func() time.Time { return fixedNow }}
	require.NoError(t, s.Init(app, &config.Config{}, db))

	return app, db
}

func createEvent(t *testing.T, db *gorm.DB, title string, startsAt time.Time) models.Event {
	t.Helper()

	e := models.Event{Title: title, StartsAt: startsAt}
	require.NoError(t, db.Create(&e).Error)

	return e
}

func TestUpcomingAndPastSplit(t *testing.T) {
	app, db := setupApp(t)

	createEvent(t, db, "long past", fixedNow.Add(-48*time.Hour))
	createEvent(t, db, "just past", fixedNow.Add(-time.Hour))
	createEvent(t, db, "at boundary", fixedNow)
	createEvent(t, db, "soon", fixedNow.Add(time.Hour))
	createEvent(t, db, "far future", fixedNow.Add(72*time.Hour))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/events/upcoming", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var upcoming []models.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&upcoming))
	require.Len(t, upcoming, 3)

	// soonest first, boundary event counts as upcoming
	assert.Equal(t, "at boundary", upcoming[0].Title)
	assert.Equal(t, "soon", upcoming[1].Title)
	assert.Equal(t, "far future", upcoming[2].Title)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/events/past", nil))
	require.NoError(t, err)

	var past []models.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&past))
	require.Len(t, past, 2)

	// most recent first
	assert.Equal(t, "just past", past[0].Title)
	assert.Equal(t, "long past", past[1].Title)
}

func TestCreate(t *testing.T) {
	app, _ := setupApp(t)

	body, _ := json.Marshal(fiber.Map{
		"title":     "Open day",
		"starts_at": fixedNow.Add(24 * time.Hour),
	})
	req := httptest.NewRequest(fiber.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Open day", created.Title)
}

func TestCreateRequiresTitle(t *testing.T) {
	app, _ := setupApp(t)

	body, _ := json.Marshal(fiber.Map{"starts_at": fixedNow})
	req := httptest.NewRequest(fiber.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdate(t *testing.T) {
	app, db := setupApp(t)

	e := createEvent(t, db, "before", fixedNow)

	body, _ := json.Marshal(fiber.Map{
		"title":     "after",
		"starts_at": fixedNow.Add(time.Hour),
	})
	req := httptest.NewRequest(fiber.MethodPut, "/api/events/1", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, e.ID, updated.ID)
	assert.Equal(t, "after", updated.Title)
}

func TestGetAndDeleteUnknownID(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/events/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/events/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/events/notanumber", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
