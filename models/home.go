package models

// HomeContent is the singleton (id = 1) text block of the home page.
type HomeContent struct {
	ID              int    `gorm:"primaryKey" json:"-"`
	HeroTitle       string `json:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle"`
	HeroDescription string `json:"hero_description"`
	CtaTitle        string `json:"cta_title"`
	CtaSubtitle     string `json:"cta_subtitle"`
}

func (HomeContent) TableName() string {
	return "home_content"
}

// HeroImage, HomeStat and HomeServicePreview are the home page child
// collections. Writes replace them wholesale; see the home-page handler.
type HeroImage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type HomeStat struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Number       string `json:"number"`
	Label        string `json:"label"`
	IconName     string `json:"icon_name"`
	DisplayOrder int    `json:"display_order"`
}

type HomeServicePreview struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

func (HomeServicePreview) TableName() string {
	return "home_services_preview"
}
