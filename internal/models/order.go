package models

import (
	"time"
)

type Order struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null"`
	CustomerName   string    `json:"customer_name" gorm:"size:500"`
	Description    string    `json:"description" gorm:"size:300"`
	OrderDate      time.Time `json:"order_date" gorm:"not null"`
	TrackingNumber string    `json:"tracking_number" gorm:"size:50"`
	Status         string    `json:"status" gorm:"size:50;default:'Placed'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	OrderDetails []OrderDetail `json:"order_details,omitempty" gorm:"foreignKey:OrderID"`
	Payment      *Payment      `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
	Review       *Review       `json:"review,omitempty" gorm:"foreignKey:OrderID"`
	User         *User         `json:"-" gorm:"foreignKey:UserID"`
}

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "Placed"
	OrderPreparing OrderStatus = "Preparing"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)
