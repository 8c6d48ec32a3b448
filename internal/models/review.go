package models

import (
	"time"
)

// Review is left by a user, optionally tied to one of their orders.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	OrderID    *uint     `json:"order_id"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"size:500"`
	ReviewDate time.Time `json:"review_date" gorm:"not null"`
}
