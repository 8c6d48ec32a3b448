package models

// Sandwich is a menu item. Its recipe ties it to the resources it consumes.
type Sandwich struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	SandwichName string  `json:"sandwich_name" gorm:"size:100;not null"`
	Price        float64 `json:"price" gorm:"type:decimal(6,2)"`

	Recipes []Recipe `json:"recipes,omitempty" gorm:"foreignKey:SandwichID"`
}

type Recipe struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	SandwichID uint `json:"sandwich_id" gorm:"not null"`
	ResourceID uint `json:"resource_id" gorm:"not null"`
	Amount     int  `json:"amount"`
}

// Resource is a raw ingredient tracked by stock amount.
type Resource struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Item   string `json:"item" gorm:"size:100;not null"`
	Amount int    `json:"amount"`
}
