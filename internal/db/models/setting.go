package models

// Setting types hint the admin form how to render the value input.
const (
	SettingTypeText     = "text"
	SettingTypeTextarea = "textarea"
	SettingTypeURL      = "url"
	SettingTypeEmail    = "email"
)

// Setting represents a site-wide configuration value stored in the database.
// Settings are referenced by their stable Key throughout the UI; public pages
// resolve a value by key and fall back to a hardcoded default when the key
// is absent.
type Setting struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	// The column is named setting_key because KEY is a reserved word in MySQL.
	Key         string `gorm:"column:setting_key;unique;size:100;not null" json:"key"`
	Value       string `json:"value"`
	Label       string `gorm:"size:200" json:"label"`
	Description string `json:"description"`
	// Group tags the setting for tabbed display in the admin UI.
	Group string `gorm:"size:100;column:group_name" json:"group"`
	// Type is the render hint: text, textarea, url or email.
	Type string `gorm:"size:20;default:'text'" json:"type"`
}
