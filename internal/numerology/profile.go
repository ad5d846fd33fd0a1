package numerology

import (
	"maps"
	"slices"

	. "github.com/amitsingh771/Numerology/internal/models"
)

const placeholder = "-"

// rulingPlanets maps each driver number to its ruling planet.
var rulingPlanets = [10]string{
	1: "Sun",
	2: "Moon",
	3: "Jupiter",
	4: "Rahu",
	5: "Mercury",
	6: "Venus",
	7: "Ketu",
	8: "Saturn",
	9: "Mars",
}

// profiles holds the fully described drivers. Drivers without an entry get a
// stub built from rulingPlanets.
var profiles = map[int]AttributeProfile{
	1: {
		RulingPlanet:       "Sun",
		ContributingPlanet: "Mars",
		InfluencingNumbers: []int{1, 5, 6, 9},
		EnemyNumbers:       []int{8},
		FavourableDays:     []string{"Sunday", "Tuesday", "Wednesday", "Friday"},
		FavourableColours:  []string{"Golden", "Yellow", "Blue", "Red"},
		ColoursToAvoid:     []string{"Black", "Brown"},
		FavourableMetal:    "Gold",
		FavourableGemstone: "Ruby",
		WonderLetters:      []string{"A", "I", "J", "Q", "Y"},
		Direction:          "North-East",
		Notes:              map[string]string{NoteMobileWallpaper: "Fathers Pic always"},
	},
}

// RulingPlanet returns the ruling planet for driver, or "-" outside 1-9.
func RulingPlanet(driver int) string {
	if driver < 1 || driver > 9 {
		return placeholder
	}
	return rulingPlanets[driver]
}

// ResolveProfile returns the attribute profile for driver. It never fails:
// drivers outside 1-9, including the 0 used for an underivable driver, get
// the default profile, which lists driver itself as influencing unless it is
// 0. The result is a copy and may be modified freely.
func ResolveProfile(driver int) AttributeProfile {
	if profile, ok := profiles[driver]; ok {
		return cloneProfile(profile)
	}
	return stubProfile(driver)
}

func stubProfile(driver int) AttributeProfile {
	influencing := []int{}
	if driver != 0 {
		influencing = append(influencing, driver)
	}

	return AttributeProfile{
		RulingPlanet:       RulingPlanet(driver),
		ContributingPlanet: placeholder,
		InfluencingNumbers: influencing,
		EnemyNumbers:       []int{},
		FavourableDays:     []string{},
		FavourableColours:  []string{},
		ColoursToAvoid:     []string{},
		FavourableMetal:    placeholder,
		FavourableGemstone: placeholder,
		WonderLetters:      []string{},
		Direction:          placeholder,
		Notes:              map[string]string{},
	}
}

func cloneProfile(p AttributeProfile) AttributeProfile {
	p.InfluencingNumbers = slices.Clone(p.InfluencingNumbers)
	p.EnemyNumbers = slices.Clone(p.EnemyNumbers)
	p.FavourableDays = slices.Clone(p.FavourableDays)
	p.FavourableColours = slices.Clone(p.FavourableColours)
	p.ColoursToAvoid = slices.Clone(p.ColoursToAvoid)
	p.WonderLetters = slices.Clone(p.WonderLetters)
	p.Notes = maps.Clone(p.Notes)
	return p
}
