package models

// TeamMember.DisplayOrder is a dense sequence owned by the application:
// creation appends at max+1, the reorder endpoint rewrites the whole set.
// There is no DB constraint backing it.
type TeamMember struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Designation  string     `json:"designation"`
	ImageURL     string     `json:"image_url"`
	Bio          string     `json:"bio"`
	Specialties  StringList `gorm:"type:text" json:"specialties"`
	SocialURLA   string     `gorm:"column:social_url_a" json:"social_url_a"`
	SocialURLB   string     `gorm:"column:social_url_b" json:"social_url_b"`
	SocialURLC   string     `gorm:"column:social_url_c" json:"social_url_c"`
	DisplayOrder int        `json:"display_order"`
}
