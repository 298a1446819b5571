package models

// ReviewsStat is one headline number on the reviews page ("120+ projects").
// "order" is a reserved word in most SQL dialects, so the sort key lives in
// the sort_order column while the API keeps the historical "order" field.
type ReviewsStat struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SortOrder int    `gorm:"column:sort_order" json:"order"`
	Number    string `json:"number"`
	Label     string `json:"label"`
}
