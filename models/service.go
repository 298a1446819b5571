package models

type Service struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon"`
	Price         string     `json:"price"`
	Features      StringList `gorm:"type:text" json:"features"`
	CoverImageURL string     `gorm:"column:cover_image_url" json:"cover_image_url"`
}
