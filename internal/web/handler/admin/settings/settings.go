// Package settings renders the admin settings table with search, group
// filtering and pagination.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	settingctl "github.com/beacon-foundation/beacon/internal/db/controller/setting"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/listview"
	"github.com/beacon-foundation/beacon/internal/web/handler"
)

const (
	// Path is the path to the admin settings page.
	Path = "/admin/settings"

	// TemplateName is the name of the admin settings template.
	TemplateName = "admin/settings"

	// DefaultPageSize is the default number of settings per page.
	DefaultPageSize = 25

	// maxPageSize caps the pageSize query parameter.
	maxPageSize = 100
)

// searchFields are the setting fields covered by the free-text search.
var searchFields = []string{"key", "label", "value"}

// Service is the admin settings handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Data represents the data passed to the template.
type Data struct {
	Settings    []models.Setting
	CurrentPage int
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasPrevPage bool
	HasNextPage bool
	PrevPage    int
	NextPage    int
	PageNumbers []int
	SearchQuery string
	FilterGroup string
	Groups      []string
}

// Handler is the admin settings handler.
var Handler = Service{}

// Init initializes the admin settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// settingValue maps a setting and a field name to its string form for the
// shared filter.
func settingValue(s models.Setting, field string) string {
	switch field {
	case "key":
		return s.Key
	case "label":
		return s.Label
	case "value":
		return s.Value
	case "group":
		return s.Group
	case "type":
		return s.Type
	default:
		return ""
	}
}

// Get handles the settings table rendering with filter and pagination.
func (s *Service) Get(c *fiber.Ctx) error {
	page, pageSize := paginationParams(c)
	searchQuery := c.Query("search", "")
	filterGroup := c.Query("group", "")

	all, err := settingctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Title": s.cfg.Title,
			"Error": "Failed to load settings",
		}, handler.BaseLayout)
	}

	crit := listview.Criteria{
		Query: searchQuery,
		Exact: map[string]string{"group": filterGroup},
	}
	filtered := listview.Filter(all, crit, searchFields, settingValue)

	// a shrunken result list must land on the last valid page,
	// never on a silently empty one
	totalItems := len(filtered)
	totalPages := listview.TotalPages(totalItems, pageSize)
	page = listview.ClampPage(page, totalPages)
	paginated := listview.Paginate(filtered, page, pageSize)

	data := Data{
		Settings:    paginated,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
		PageNumbers: listview.Range(page, totalPages),
		SearchQuery: searchQuery,
		FilterGroup: filterGroup,
		Groups:      groupTags(all),
	}

	log.Info().
		Int("total_settings", totalItems).
		Int("page", page).
		Int("page_size", pageSize).
		Str("search", searchQuery).
		Str("group", filterGroup).
		Msg("admin settings table rendered")

	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
		"Data":  data,
	}, handler.BaseLayout)
}

// paginationParams parses and normalizes page and pageSize query parameters.
func paginationParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("pageSize", DefaultPageSize)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// groupTags returns the distinct group tags in display order.
func groupTags(settings []models.Setting) []string {
	seen := make(map[string]bool)

	var groups []string
	for _, s := range settings {
		if s.Group != "" && !seen[s.Group] {
			seen[s.Group] = true
			groups = append(groups, s.Group)
		}
	}

	return groups
}
