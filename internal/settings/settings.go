// Package settings resolves site-wide configuration values for the public
// pages. Consumers fetch the full settings list once and look individual
// values up by key; a missing key yields the caller-supplied fallback, so a
// half-seeded database never breaks a public page.
package settings

import (
	"github.com/beacon-foundation/beacon/internal/db/models"
)

// Well-known setting keys used by the public pages.
const (
	KeyBrowseCoursesURL = "browseCoursesUrl"
	KeyDonateURL        = "donateUrl"
	KeyContactEmail     = "contactEmail"
	KeyFacebookURL      = "facebookUrl"
	KeyInstagramURL     = "instagramUrl"
	KeyYoutubeURL       = "youtubeUrl"
)

// Hardcoded fallbacks for the well-known keys.
const (
	DefaultBrowseCoursesURL = "/programs"
)

// Resolve returns the value stored under key, or fallback when the key is
// absent or holds an empty value.
func Resolve(settings []models.Setting, key, fallback string) string {
	for _, s := range settings {
		if s.Key == key {
			if s.Value == "" {
				return fallback
			}

			return s.Value
		}
	}

	return fallback
}

// Lookup builds a key to value map from a settings list for repeated
// resolution without rescanning the slice.
func Lookup(settings []models.Setting) map[string]string {
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out
}
