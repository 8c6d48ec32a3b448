package services

import (
	"errors"
	"testing"

	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePromoDuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPromoService(db)

	promo := &models.Promo{Code: "LUNCH10", DiscountType: "Percentage", Value: 10, IsActive: 1}
	require.NoError(t, svc.CreatePromo(promo))

	dup := &models.Promo{Code: "LUNCH10", DiscountType: "Fixed Amount", Value: 2}
	err := svc.CreatePromo(dup)
	assert.Error(t, err)

	var count int64
	db.Model(&models.Promo{}).Where("code = ?", "LUNCH10").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetActivePromos(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPromoService(db)

	active := &models.Promo{Code: "ACTIVE5", DiscountType: "Percentage", Value: 5, IsActive: 1}
	require.NoError(t, svc.CreatePromo(active))

	inactive := &models.Promo{Code: "OLD20", DiscountType: "Percentage", Value: 20, IsActive: 1}
	require.NoError(t, svc.CreatePromo(inactive))
	_, err := svc.UpdatePromo(inactive.ID, map[string]interface{}{"is_active": 0})
	require.NoError(t, err)

	promos, err := svc.GetActivePromos()
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "ACTIVE5", promos[0].Code)

	all, err := svc.GetAllPromos()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdatePromoPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPromoService(db)

	promo := &models.Promo{Code: "SAVE5", Description: "five off", DiscountType: "Fixed Amount", Value: 5, IsActive: 1}
	require.NoError(t, svc.CreatePromo(promo))

	updated, err := svc.UpdatePromo(promo.ID, map[string]interface{}{"value": 7.5})
	require.NoError(t, err)

	assert.Equal(t, 7.5, updated.Value)
	assert.Equal(t, "SAVE5", updated.Code)
	assert.Equal(t, "five off", updated.Description)
	assert.Equal(t, 1, updated.IsActive)
}

func TestDeletePromoNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPromoService(db)

	err := svc.DeletePromo(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
