package models

type OrderDetail struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	OrderID    uint `json:"order_id" gorm:"not null"`
	SandwichID uint `json:"sandwich_id" gorm:"not null"`
	Amount     int  `json:"amount"`
}
