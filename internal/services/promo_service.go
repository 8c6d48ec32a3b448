package services

import (
	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"gorm.io/gorm"
)

type PromoService interface {
	// GetAllPromos retrieves all promo codes
	GetAllPromos() ([]models.Promo, error)
	// GetActivePromos retrieves promos with is_active set
	GetActivePromos() ([]models.Promo, error)
	// GetPromoByID retrieves a promo by its ID
	GetPromoByID(id uint) (*models.Promo, error)
	// CreatePromo persists a new promo code
	CreatePromo(promo *models.Promo) error
	// UpdatePromo applies a partial update to the allow-listed columns
	UpdatePromo(id uint, updates map[string]interface{}) (*models.Promo, error)
	// DeletePromo removes a promo by its ID
	DeletePromo(id uint) error
}

type promoService struct {
	db *gorm.DB
}

// NewPromoService creates a new instance of PromoService
func NewPromoService(db *gorm.DB) PromoService {
	return &promoService{db: db}
}

func (s *promoService) GetAllPromos() ([]models.Promo, error) {
	var promos []models.Promo
	if err := s.db.Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

func (s *promoService) GetActivePromos() ([]models.Promo, error) {
	var promos []models.Promo
	if err := s.db.Where("is_active = ?", 1).Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

func (s *promoService) GetPromoByID(id uint) (*models.Promo, error) {
	var promo models.Promo
	if err := s.db.First(&promo, id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (s *promoService) CreatePromo(promo *models.Promo) error {
	return s.db.Create(promo).Error
}

func (s *promoService) UpdatePromo(id uint, updates map[string]interface{}) (*models.Promo, error) {
	var promo models.Promo
	if err := s.db.First(&promo, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&promo).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&promo, id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (s *promoService) DeletePromo(id uint) error {
	var promo models.Promo
	if err := s.db.First(&promo, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&promo).Error
}
