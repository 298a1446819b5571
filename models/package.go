package models

// Package stores the display name in the title column; the API exposes it
// as "name". The rename happens in the handlers, both directions.
type Package struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"-"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	Features    StringList `gorm:"type:text" json:"features"`
	IsPopular   bool       `gorm:"default:false" json:"is_popular"`
}
