package services

import (
	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"gorm.io/gorm"
)

// SandwichService provides read access to the sandwich menu
type SandwichService interface {
	// GetAllSandwiches retrieves all sandwiches on the menu
	GetAllSandwiches() ([]models.Sandwich, error)
	// GetSandwichByID retrieves a sandwich by its ID
	GetSandwichByID(id uint) (*models.Sandwich, error)
}

// sandwichService is the implementation of the SandwichService interface
type sandwichService struct {
	db *gorm.DB
}

// NewSandwichService creates a new instance of SandwichService
func NewSandwichService(db *gorm.DB) SandwichService {
	return &sandwichService{db: db}
}

func (s *sandwichService) GetAllSandwiches() ([]models.Sandwich, error) {
	var sandwiches []models.Sandwich
	if err := s.db.Find(&sandwiches).Error; err != nil {
		return nil, err
	}
	return sandwiches, nil
}

func (s *sandwichService) GetSandwichByID(id uint) (*models.Sandwich, error) {
	var sandwich models.Sandwich
	if err := s.db.Preload("Recipes").First(&sandwich, id).Error; err != nil {
		return nil, err
	}
	return &sandwich, nil
}
