package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"github.com/sandwichshop/gin-sandwich-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Sandwich{},
		&models.Payment{},
		&models.Review{},
		&models.Promo{},
	)
	require.NoError(t, err)

	return db
}

// setupTestRouter wires the full route table against an in-memory store
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	userController := NewUserController(services.NewUserService(db))
	orderController := NewOrderController(services.NewOrderService(db))
	reviewController := NewReviewController(services.NewReviewService(db))
	promoController := NewPromoController(services.NewPromoService(db))
	sandwichController := NewSandwichController(services.NewSandwichService(db))
	paymentController := NewPaymentController(services.NewPaymentService(db))

	router := gin.New()
	router.GET("/users", userController.GetAllUsers)
	router.GET("/users/:id", userController.GetUserByID)
	router.POST("/users", userController.CreateUser)
	router.POST("/users/login", userController.Login)
	router.PUT("/users/:id", userController.UpdateUser)
	router.DELETE("/users/:id", userController.DeleteUser)

	router.GET("/orders", orderController.GetAllOrders)
	router.GET("/orders/:id", orderController.GetOrderByID)
	router.GET("/orders/user/:id", orderController.GetOrdersByUser)
	router.POST("/orders", orderController.CreateOrder)
	router.PUT("/orders/:id", orderController.UpdateOrder)

	router.GET("/reviews", reviewController.GetAllReviews)
	router.GET("/reviews/:id", reviewController.GetReviewByID)
	router.GET("/reviews/user/:id", reviewController.GetReviewsByUser)
	router.POST("/reviews", reviewController.CreateReview)
	router.PUT("/reviews/:id", reviewController.UpdateReview)
	router.DELETE("/reviews/:id", reviewController.DeleteReview)

	router.GET("/promos", promoController.GetAllPromos)
	router.GET("/promos/active", promoController.GetActivePromos)
	router.POST("/promos", promoController.CreatePromo)
	router.PUT("/promos/:id", promoController.UpdatePromo)
	router.DELETE("/promos/:id", promoController.DeletePromo)

	router.GET("/sandwiches", sandwichController.GetAllSandwiches)
	router.GET("/sandwiches/:id", sandwichController.GetSandwichByID)

	router.POST("/payments", paymentController.CreatePayment)
	router.GET("/payments/order/:order_id", paymentController.GetPaymentByOrder)
	router.PUT("/payments/:id", paymentController.UpdatePayment)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	router, _ := setupTestRouter(t)

	payload := map[string]interface{}{
		"name":     "A",
		"email":    "a@x.com",
		"password": "secret123",
	}

	w := doJSON(t, router, "POST", "/users", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotZero(t, response["id"])
	assert.Equal(t, "Customer", response["role"])
	assert.Contains(t, response, "token")
	assert.NotContains(t, response, "password")

	// Same email again is rejected before inserting a duplicate
	w = doJSON(t, router, "POST", "/users", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Malformed email never reaches the store
	w := doJSON(t, router, "POST", "/users", map[string]interface{}{
		"name":     "A",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin(t *testing.T) {
	router, _ := setupTestRouter(t)

	doJSON(t, router, "POST", "/users", map[string]interface{}{
		"name": "A", "email": "a@x.com", "password": "secret123",
	})

	w := doJSON(t, router, "POST", "/users/login", map[string]interface{}{
		"email": "a@x.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["token"], "token_")

	w = doJSON(t, router, "POST", "/users/login", map[string]interface{}{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "POST", "/users/login", map[string]interface{}{
		"email": "nobody@x.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateUserIgnoresAbsentFields(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/users", map[string]interface{}{
		"name": "A", "email": "a@x.com", "password": "secret123", "address": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "PUT", "/users/1", map[string]interface{}{"name": "B"})
	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "B", user.Name)
	assert.Equal(t, "1 Main St", user.Address)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestDeleteUser(t *testing.T) {
	router, _ := setupTestRouter(t)

	doJSON(t, router, "POST", "/users", map[string]interface{}{
		"name": "A", "email": "a@x.com", "password": "secret123",
	})

	w := doJSON(t, router, "DELETE", "/users/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, "GET", "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "DELETE", "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
