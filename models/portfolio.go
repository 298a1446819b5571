package models

import "time"

// PortfolioCategory names are unique by convention only. Two concurrent
// project creates with the same new name can both insert; duplicates are
// tolerated rather than constrained away.
type PortfolioCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (PortfolioCategory) TableName() string {
	return "portfolio_categories"
}

type PortfolioProject struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"image_url"`
	ProjectImages StringList `gorm:"type:text" json:"project_images"`
	CategoryID    uint       `gorm:"index" json:"-"`
	AspectRatio   string     `json:"aspect_ratio"`
	URL           string     `json:"url"`
	GithubURL     string     `json:"github_url"`
	Technologies  StringList `gorm:"type:text" json:"technologies"`
	UpdatedAt     time.Time  `json:"-"`

	Category PortfolioCategory `gorm:"foreignKey:CategoryID" json:"-"`
}

func (PortfolioProject) TableName() string {
	return "portfolio_projects"
}
