package models

import "time"

// BaseModel carries the bookkeeping columns shared by the seeded reference
// tables. It is hidden from API payloads.
type BaseModel struct {
	ID        int       `gorm:"type:integer;primaryKey;autoIncrement" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime"                        json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                        json:"-"`
}
