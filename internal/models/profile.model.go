package models

type AttributeProfile struct {
	RulingPlanet       string            `json:"rulingPlanet"`
	ContributingPlanet string            `json:"contributingPlanet"`
	InfluencingNumbers []int             `json:"influencingNumbers"`
	EnemyNumbers       []int             `json:"enemyNumbers"`
	FavourableDays     []string          `json:"favourableDays"`
	FavourableColours  []string          `json:"favourableColours"`
	ColoursToAvoid     []string          `json:"coloursToAvoid"`
	FavourableMetal    string            `json:"favourableMetal"`
	FavourableGemstone string            `json:"favourableGemstone"`
	WonderLetters      []string          `json:"wonderLetters"`
	Direction          string            `json:"direction"`
	Notes              map[string]string `json:"notes"`
}

// Note keys understood by the renderers.
const (
	NoteMobileWallpaper = "mobileWallpaper"
)
