package models

// Content is a keyed blob of page copy edited from the admin dashboard.
// Value holds serialized JSON; decoding happens at the handler boundary
// so a corrupt row degrades to a safe default instead of a 500.
type Content struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
