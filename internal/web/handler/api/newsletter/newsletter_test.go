package newsletter

import (
	"bytes"
	"encoding/json"
	"io"
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

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.Subscriber{}))

	app := fiber.New()

	s := Service{}
	require.NoError(t, s.Init(app, &config.Config{}, db))

	return app, db
}

func TestSubscribe(t *testing.T) {
	app, _ := setupApp(t)

	body, _ := json.Marshal(fiber.Map{"email": "dana@example.org"})
	req := httptest.NewRequest(fiber.MethodPost, "/api/newsletter", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Subscriber
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "dana@example.org", created.Email)
	assert.False(t, created.SubscribedAt.IsZero())
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	app, _ := setupApp(t)

	body, _ := json.Marshal(fiber.Map{"email": "not-an-email"})
	req := httptest.NewRequest(fiber.MethodPost, "/api/newsletter", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubscribeDuplicateConflicts(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&models.Subscriber{Email: "dana@example.org", SubscribedAt: time.Now()}).Error)

	body, _ := json.Marshal(fiber.Map{"email": "dana@example.org"})
	req := httptest.NewRequest(fiber.MethodPost, "/api/newsletter", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestBulkDelete(t *testing.T) {
	app, db := setupApp(t)

	subs := []models.Subscriber{
		{Email: "a@example.org", SubscribedAt: time.Now()},
		{Email: "b@example.org", SubscribedAt: time.Now()},
		{Email: "keep@example.org", SubscribedAt: time.Now()},
	}
	require.NoError(t, db.Create(&subs).Error)

	body, _ := json.Marshal(fiber.Map{"ids": []uint64{subs[0].ID, subs[1].ID, 99999}})
	req := httptest.NewRequest(fiber.MethodPost, "/api/newsletter/bulk-delete", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Deleted int64 `json:"deleted"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.EqualValues(t, 2, out.Deleted)

	var remaining int64
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestExportCSV(t *testing.T) {
	app, db := setupApp(t)

	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Subscriber{Email: "dana@example.org", SubscribedAt: when}).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/api/newsletter/export", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), exportFilename)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	csv := string(raw)
	assert.Contains(t, csv, "email,subscribed_at")
	assert.Contains(t, csv, "dana@example.org,2025-03-14 09:30")
}

func TestDelete(t *testing.T) {
	app, db := setupApp(t)

	sub := models.Subscriber{Email: "gone@example.org", SubscribedAt: time.Now()}
	require.NoError(t, db.Create(&sub).Error)

	req := httptest.NewRequest(fiber.MethodDelete, "/api/newsletter/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/newsletter/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
