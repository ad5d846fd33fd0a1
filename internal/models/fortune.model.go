package models

import "fmt"

// FortuneRecord is one row of the combination fortune reference table.
// Position keeps the order of the source file so the first match wins.
type FortuneRecord struct {
	BaseModel       `json:"-"`
	Position        int    `gorm:"not null;index"                  json:"-"`
	Combination     string `gorm:"type:varchar(16);not null;index" json:"combination"`
	Description     string `gorm:"type:text"                       json:"description"`
	RolesProfession string `gorm:"type:text"                       json:"roles_profession"`
}

func (FortuneRecord) TableName() string {
	return "combination_fortunes"
}

// CombinationKey formats the lookup key for a driver/conductor pair.
func CombinationKey(driver, conductor int) string {
	return fmt.Sprintf("%d/%d", driver, conductor)
}
