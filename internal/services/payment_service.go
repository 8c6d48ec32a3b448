package services

import (
	"time"

	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"gorm.io/gorm"
)

type PaymentService interface {
	// CreatePayment persists the payment for an order
	CreatePayment(payment *models.Payment) error
	// GetPaymentByOrderID retrieves the payment attached to an order
	GetPaymentByOrderID(orderID uint) (*models.Payment, error)
	// UpdatePayment applies a partial update to the allow-listed columns
	UpdatePayment(id uint, updates map[string]interface{}) (*models.Payment, error)
}

type paymentService struct {
	db *gorm.DB
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(db *gorm.DB) PaymentService {
	return &paymentService{db: db}
}

func (s *paymentService) CreatePayment(payment *models.Payment) error {
	payment.PaymentDate = time.Now()
	if payment.TransactionStatus == "" {
		payment.TransactionStatus = "Completed"
	}
	return s.db.Create(payment).Error
}

func (s *paymentService) GetPaymentByOrderID(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *paymentService) UpdatePayment(id uint, updates map[string]interface{}) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&payment).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
