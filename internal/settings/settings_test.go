package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/settings"
)

func TestResolve(t *testing.T) {
	list := []models.Setting{
		{Key: "browseCoursesUrl", Value: "/courses"},
		{Key: "donateUrl", Value: ""},
	}

	tests := []struct {
		name     string
		key      string
		fallback string
		want     string
	}{
		{
			name:     "present key wins",
			key:      settings.KeyBrowseCoursesURL,
			fallback: settings.DefaultBrowseCoursesURL,
			want:     "/courses",
		},
		{
			name:     "absent key yields fallback unchanged",
			key:      settings.KeyFacebookURL,
			fallback: "https://facebook.com/beacon",
			want:     "https://facebook.com/beacon",
		},
		{
			name:     "empty stored value yields fallback",
			key:      settings.KeyDonateURL,
			fallback: "/donate",
			want:     "/donate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, settings.Resolve(list, tt.key, tt.fallback))
		})
	}
}

func TestResolveEmptyList(t *testing.T) {
	got := settings.Resolve(nil, settings.KeyBrowseCoursesURL, settings.DefaultBrowseCoursesURL)
	assert.Equal(t, "/programs", got)
}

func TestLookup(t *testing.T) {
	list := []models.Setting{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
	}

	m := settings.Lookup(list)

	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, m)
}
