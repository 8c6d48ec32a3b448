package models

import (
	"time"
)

// Promo is a discount code. IsActive is an integer (0/1) rather than a bool
// to keep the column shape of the existing promos table.
type Promo struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Code         string     `json:"code" gorm:"size:50;uniqueIndex;not null"`
	Description  string     `json:"description" gorm:"size:200"`
	DiscountType string     `json:"discount_type" gorm:"size:20;not null"`
	Value        float64    `json:"value" gorm:"type:decimal(5,2);not null"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     int        `json:"is_active" gorm:"default:1"`
}

type DiscountType string

const (
	DiscountPercentage  DiscountType = "Percentage"
	DiscountFixedAmount DiscountType = "Fixed Amount"
)
