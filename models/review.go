package models

import "time"

// Review.Approved gates public visibility: the public listing filters on
// approved = true, the admin listing does not.
type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Designation string    `json:"designation"`
	Company     string    `json:"company"`
	CompanyURL  string    `gorm:"column:company_url" json:"company_url"`
	Project     string    `json:"project"`
	Rating      int       `json:"rating"`
	Review      string    `json:"review"`
	ImageURL    string    `json:"image_url"`
	Approved    bool      `gorm:"default:false" json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
}
