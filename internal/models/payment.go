package models

import (
	"time"
)

type Payment struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	OrderID           uint      `json:"order_id" gorm:"uniqueIndex;not null"`
	Amount            float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod     string    `json:"payment_method" gorm:"size:50"`
	TransactionStatus string    `json:"transaction_status" gorm:"size:50;default:'Completed'"`
	PaymentDate       time.Time `json:"payment_date" gorm:"not null"`
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentCash       PaymentMethod = "Cash"
	PaymentToken      PaymentMethod = "Token"
)
