package models

import "time"

type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"not null" json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Read       bool      `gorm:"default:false" json:"read"`
	ReceivedAt time.Time `json:"received_at"`
}
