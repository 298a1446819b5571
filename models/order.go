package models

import "time"

// Order uses the client-supplied order_id as its identity; the site
// generates it before checkout so the confirmation page can reference it.
type Order struct {
	OrderID      string    `gorm:"primaryKey" json:"order_id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null" json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company"`
	Message      string    `json:"message"`
	Budget       string    `json:"budget"`
	Timeline     string    `json:"timeline"`
	PackageName  string    `json:"package_name"`
	PackagePrice string    `json:"package_price"`
	Status       string    `gorm:"default:pending" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
