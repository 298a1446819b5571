package models

// ContactInfo is a singleton row (id = 1) with upsert semantics.
type ContactInfo struct {
	ID            int     `gorm:"primaryKey" json:"id"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	BusinessHours string  `json:"business_hours"`
	SocialLinks   JSONMap `gorm:"type:text" json:"socialLinks"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}
