package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/amitsingh771/Numerology/internal/models"
)

func TestResolveProfile_DriverOne(t *testing.T) {
	profile := ResolveProfile(1)

	assert.Equal(t, "Sun", profile.RulingPlanet)
	assert.Equal(t, "Mars", profile.ContributingPlanet)
	assert.Equal(t, []int{1, 5, 6, 9}, profile.InfluencingNumbers)
	assert.Equal(t, []int{8}, profile.EnemyNumbers)
	assert.Equal(t, []string{"Sunday", "Tuesday", "Wednesday", "Friday"}, profile.FavourableDays)
	assert.Equal(t, []string{"Golden", "Yellow", "Blue", "Red"}, profile.FavourableColours)
	assert.Equal(t, []string{"Black", "Brown"}, profile.ColoursToAvoid)
	assert.Equal(t, "Gold", profile.FavourableMetal)
	assert.Equal(t, "Ruby", profile.FavourableGemstone)
	assert.Equal(t, []string{"A", "I", "J", "Q", "Y"}, profile.WonderLetters)
	assert.Equal(t, "North-East", profile.Direction)
	assert.Equal(t, "Fathers Pic always", profile.Notes[NoteMobileWallpaper])
}

func TestResolveProfile_Stubs(t *testing.T) {
	tests := []struct {
		driver int
		planet string
	}{
		{driver: 2, planet: "Moon"},
		{driver: 3, planet: "Jupiter"},
		{driver: 4, planet: "Rahu"},
		{driver: 5, planet: "Mercury"},
		{driver: 6, planet: "Venus"},
		{driver: 7, planet: "Ketu"},
		{driver: 8, planet: "Saturn"},
		{driver: 9, planet: "Mars"},
	}

	for _, tt := range tests {
		t.Run(tt.planet, func(t *testing.T) {
			profile := ResolveProfile(tt.driver)

			assert.Equal(t, tt.planet, profile.RulingPlanet)
			assert.Equal(t, []int{tt.driver}, profile.InfluencingNumbers)
			assert.Empty(t, profile.EnemyNumbers)
			assert.Empty(t, profile.FavourableDays)
			assert.Empty(t, profile.FavourableColours)
			assert.Empty(t, profile.ColoursToAvoid)
			assert.Empty(t, profile.WonderLetters)
			assert.Empty(t, profile.Notes)
			assert.Equal(t, "-", profile.FavourableMetal)
			assert.Equal(t, "-", profile.FavourableGemstone)
			assert.Equal(t, "-", profile.Direction)
			assert.NotNil(t, profile.FavourableDays, "lists serialise as [] rather than null")
		})
	}
}

func TestResolveProfile_Fallback(t *testing.T) {
	for _, driver := range []int{0, -1, 10} {
		profile := ResolveProfile(driver)
		assert.Equal(t, "-", profile.RulingPlanet)
		assert.Empty(t, profile.FavourableColours)
	}

	tests := []struct {
		name        string
		driver      int
		influencing []int
	}{
		{name: "underivable", driver: 0, influencing: []int{}},
		{name: "negative", driver: -1, influencing: []int{-1}},
		{name: "above nine", driver: 10, influencing: []int{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ResolveProfile(tt.driver)
			assert.Equal(t, tt.influencing, profile.InfluencingNumbers)
			assert.Equal(t, []int{}, profile.EnemyNumbers)
			assert.Equal(t, "-", profile.Direction)
		})
	}
}

func TestResolveProfile_ReturnsCopy(t *testing.T) {
	first := ResolveProfile(1)
	first.FavourableColours[0] = "Purple"
	first.Notes[NoteMobileWallpaper] = "changed"
	first.InfluencingNumbers = append(first.InfluencingNumbers[:0], 2)

	second := ResolveProfile(1)
	assert.Equal(t, "Golden", second.FavourableColours[0])
	assert.Equal(t, "Fathers Pic always", second.Notes[NoteMobileWallpaper])
	assert.Equal(t, []int{1, 5, 6, 9}, second.InfluencingNumbers)
}

func TestRulingPlanet(t *testing.T) {
	assert.Equal(t, "Sun", RulingPlanet(1))
	assert.Equal(t, "Ketu", RulingPlanet(7))
	assert.Equal(t, "-", RulingPlanet(0))
	assert.Equal(t, "-", RulingPlanet(11))
}
