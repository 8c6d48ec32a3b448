package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"gorm.io/gorm"
)

type OrderService interface {
	// GetAllOrders retrieves all orders with their line items
	GetAllOrders() ([]models.Order, error)
	// GetOrderByID retrieves an order by its ID with its line items
	GetOrderByID(id uint) (*models.Order, error)
	// GetOrdersByUserID retrieves all orders placed by a user
	GetOrdersByUserID(userID uint) ([]models.Order, error)
	// CreateOrder persists a new order followed by its line items
	CreateOrder(order *models.Order, details []models.OrderDetail) (*models.Order, error)
	// UpdateOrder applies a partial update to the allow-listed columns
	UpdateOrder(id uint, updates map[string]interface{}) (*models.Order, error)
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("OrderDetails").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("OrderDetails").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *orderService) GetOrdersByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("OrderDetails").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) CreateOrder(order *models.Order, details []models.OrderDetail) (*models.Order, error) {
	order.OrderDate = time.Now()
	order.Status = string(models.OrderPlaced)
	order.TrackingNumber = uuid.NewString()

	if err := s.db.Create(order).Error; err != nil {
		return nil, err
	}

	for i := range details {
		details[i].OrderID = order.ID
		if err := s.db.Create(&details[i]).Error; err != nil {
			return nil, err
		}
	}

	return s.GetOrderByID(order.ID)
}

func (s *orderService) UpdateOrder(id uint, updates map[string]interface{}) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&order).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetOrderByID(id)
}
