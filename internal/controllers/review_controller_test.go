package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReview(t *testing.T) {
	router, _ := setupTestRouter(t)

	doJSON(t, router, "POST", "/users", map[string]interface{}{
		"name": "A", "email": "a@x.com", "password": "secret123",
	})

	w := doJSON(t, router, "POST", "/reviews", map[string]interface{}{
		"user_id": 1,
		"rating":  5,
		"comment": "great sandwich",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	assert.NotZero(t, review.ID)
	assert.False(t, review.ReviewDate.IsZero())

	w = doJSON(t, router, "GET", "/reviews/user/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 1)
}

func TestSubmitReviewValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Rating outside 1..5 never reaches the store
	w := doJSON(t, router, "POST", "/reviews", map[string]interface{}{
		"user_id": 1,
		"rating":  6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMissingReview(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "DELETE", "/reviews/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Review not found", response["error"])
}

func TestPromoLifecycle(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/promos", map[string]interface{}{
		"code":          "LUNCH10",
		"discount_type": "Percentage",
		"value":         10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var promo models.Promo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &promo))
	assert.Equal(t, 1, promo.IsActive)

	// Duplicate code surfaces the store error as a 400
	w = doJSON(t, router, "POST", "/promos", map[string]interface{}{
		"code":          "LUNCH10",
		"discount_type": "Percentage",
		"value":         15,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "PUT", "/promos/1", map[string]interface{}{"is_active": 0})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/promos/active", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var active []models.Promo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	assert.Empty(t, active)

	w = doJSON(t, router, "DELETE", "/promos/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, "DELETE", "/promos/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentLifecycle(t *testing.T) {
	router, _ := setupTestRouter(t)

	doJSON(t, router, "POST", "/users", map[string]interface{}{
		"name": "A", "email": "a@x.com", "password": "secret123",
	})
	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"user_id":       1,
		"customer_name": "A",
		"order_details": []map[string]interface{}{{"sandwich_id": 1, "amount": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/payments", map[string]interface{}{
		"order_id":       1,
		"amount":         7.49,
		"payment_method": "Credit Card",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
	assert.Equal(t, "Completed", payment.TransactionStatus)

	w = doJSON(t, router, "GET", "/payments/order/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "PUT", "/payments/1", map[string]interface{}{"transaction_status": "Refunded"})
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
	assert.Equal(t, "Refunded", payment.TransactionStatus)

	w = doJSON(t, router, "GET", "/payments/order/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
