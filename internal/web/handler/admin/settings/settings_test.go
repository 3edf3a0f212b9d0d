package settings

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/listview"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.Setting{}))

	engine := html.New("../../../templates", ".gohtml")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	engine.AddFunc("isEllipsis", func(p int) bool { return p == listview.Ellipsis })

	app := fiber.New(fiber.Config{Views: engine})

	s := Service{}
	require.NoError(t, s.Init(app, &config.Config{Title: "Beacon"}, db))

	return app, db
}

func seedSettings(t *testing.T, db *gorm.DB, n int) {
	t.Helper()

	settings := make([]models.Setting, 0, n)
	for i := 1; i <= n; i++ {
		settings = append(settings, models.Setting{
			Key:   fmt.Sprintf("setting-%02d", i),
			Label: fmt.Sprintf("Setting %02d", i),
			Group: "links",
		})
	}

	require.NoError(t, db.Create(&settings).Error)
}

func body(t *testing.T, resp io.Reader) string {
	t.Helper()

	raw, err := io.ReadAll(resp)
	require.NoError(t, err)

	return string(raw)
}

func TestGetRendersRequestedPage(t *testing.T) {
	app, db := setupApp(t)
	seedSettings(t, db, 25)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/settings?page=2&pageSize=10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := body(t, resp.Body)
	assert.Contains(t, page, "setting-11")
	assert.Contains(t, page, "setting-20")
	assert.NotContains(t, page, "setting-05")
	assert.NotContains(t, page, "setting-21")
	assert.Contains(t, page, "25 settings")
}

func TestGetClampsOutOfRangePage(t *testing.T) {
	app, db := setupApp(t)
	seedSettings(t, db, 25)

	// page 99 with size 10 lands on the last page, 3
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/settings?page=99&pageSize=10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := body(t, resp.Body)
	assert.Contains(t, page, "setting-21")
	assert.Contains(t, page, "setting-25")
	assert.NotContains(t, page, "setting-20")
}

func TestGetSearchFilters(t *testing.T) {
	app, db := setupApp(t)
	require.NoError(t, db.Create(&[]models.Setting{
		{Key: "donateUrl", Label: "Donation URL", Group: "links"},
		{Key: "facebookUrl", Label: "Facebook URL", Group: "social"},
	}).Error)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/settings?search=donat", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := body(t, resp.Body)
	assert.Contains(t, page, "donateUrl")
	assert.NotContains(t, page, "facebookUrl")
	assert.Contains(t, page, "1 settings")
}

func TestGetGroupFilter(t *testing.T) {
	app, db := setupApp(t)
	require.NoError(t, db.Create(&[]models.Setting{
		{Key: "donateUrl", Group: "links"},
		{Key: "facebookUrl", Group: "social"},
		{Key: "instagramUrl", Group: "social"},
	}).Error)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/settings?group=social", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := body(t, resp.Body)
	assert.Contains(t, page, "facebookUrl")
	assert.Contains(t, page, "instagramUrl")
	assert.Contains(t, page, "2 settings")
}

func TestGetEmptyTable(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := body(t, resp.Body)
	assert.Contains(t, page, "No settings match the current filter.")
}
