package services

import (
	"errors"
	"testing"

	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateOrderWithDetails(t *testing.T) {
	db := setupTestDB(t)
	userSvc := NewUserService(db)
	orderSvc := NewOrderService(db)

	user := newTestUser(t, userSvc, "buyer@x.com")

	order := &models.Order{
		UserID:       user.ID,
		CustomerName: "Buyer",
		Description:  "lunch run",
	}
	details := []models.OrderDetail{
		{SandwichID: 3, Amount: 2},
		{SandwichID: 1, Amount: 1},
	}

	created, err := orderSvc.CreateOrder(order, details)
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, string(models.OrderPlaced), created.Status)
	assert.NotEmpty(t, created.TrackingNumber)
	assert.False(t, created.OrderDate.IsZero())
	require.Len(t, created.OrderDetails, 2)
	assert.Equal(t, created.ID, created.OrderDetails[0].OrderID)
}

func TestGetOrdersByUserID(t *testing.T) {
	db := setupTestDB(t)
	userSvc := NewUserService(db)
	orderSvc := NewOrderService(db)

	buyer := newTestUser(t, userSvc, "buyer@x.com")
	other := newTestUser(t, userSvc, "other@x.com")

	created, err := orderSvc.CreateOrder(
		&models.Order{UserID: buyer.ID, CustomerName: "Buyer"},
		[]models.OrderDetail{{SandwichID: 1, Amount: 1}},
	)
	require.NoError(t, err)

	orders, err := orderSvc.GetOrdersByUserID(buyer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)

	orders, err = orderSvc.GetOrdersByUserID(other.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateOrderPartial(t *testing.T) {
	db := setupTestDB(t)
	userSvc := NewUserService(db)
	orderSvc := NewOrderService(db)

	user := newTestUser(t, userSvc, "buyer@x.com")
	created, err := orderSvc.CreateOrder(
		&models.Order{UserID: user.ID, CustomerName: "Buyer", Description: "original"},
		[]models.OrderDetail{{SandwichID: 1, Amount: 1}},
	)
	require.NoError(t, err)

	updated, err := orderSvc.UpdateOrder(created.ID, map[string]interface{}{"status": "Shipped"})
	require.NoError(t, err)

	assert.Equal(t, "Shipped", updated.Status)
	assert.Equal(t, "original", updated.Description)
	assert.Equal(t, created.TrackingNumber, updated.TrackingNumber)
	assert.Equal(t, created.UserID, updated.UserID)
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	orderSvc := NewOrderService(db)

	_, err := orderSvc.UpdateOrder(999, map[string]interface{}{"status": "Shipped"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestGetOrderByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	orderSvc := NewOrderService(db)

	_, err := orderSvc.GetOrderByID(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
