package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/settings"
)

// defaultSettings are created on first start so the admin UI has a complete
// settings table to edit. Values left empty fall back to hardcoded defaults
// on the public pages.
var defaultSettings = []models.Setting{
	{
		Key:         settings.KeyBrowseCoursesURL,
		Value:       settings.DefaultBrowseCoursesURL,
		Label:       "Browse courses URL",
		Description: "Target of the browse courses button on the courses page",
		Group:       "links",
		Type:        models.SettingTypeURL,
	},
	{
		Key:         settings.KeyDonateURL,
		Label:       "Donation URL",
		Description: "External donation page linked from the site header",
		Group:       "links",
		Type:        models.SettingTypeURL,
	},
	{
		Key:         settings.KeyContactEmail,
		Label:       "Contact email",
		Description: "Shown on the contact page",
		Group:       "contact",
		Type:        models.SettingTypeEmail,
	},
	{
		Key:         settings.KeyFacebookURL,
		Label:       "Facebook URL",
		Group:       "social",
		Type:        models.SettingTypeURL,
	},
	{
		Key:         settings.KeyInstagramURL,
		Label:       "Instagram URL",
		Group:       "social",
		Type:        models.SettingTypeURL,
	},
	{
		Key:         settings.KeyYoutubeURL,
		Label:       "YouTube URL",
		Group:       "social",
		Type:        models.SettingTypeURL,
	},
}

// seed creates the default admin account and settings on an empty database.
func seed(_ *config.Config, db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount == 0 {
		db.Create(
			&models.User{
				Username: "admin",
				Password: models.HashPassword("changeme"),
				Active:   true,
			},
		)

		log.Warn().Msg("seeded default admin account, change its password")
	}

	var settingCount int64
	db.Model(&models.Setting{}).Count(&settingCount)

	if settingCount == 0 {
		db.Create(&defaultSettings)

		log.Info().Int("settings", len(defaultSettings)).Msg("seeded default settings")
	}
}
