package services

import (
	"errors"
	"testing"

	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetAllSandwiches(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSandwichService(db)

	require.NoError(t, db.Create(&models.Sandwich{SandwichName: "Classic BLT", Price: 7.49}).Error)
	require.NoError(t, db.Create(&models.Sandwich{SandwichName: "Turkey Club", Price: 8.99}).Error)

	sandwiches, err := svc.GetAllSandwiches()
	require.NoError(t, err)
	assert.Len(t, sandwiches, 2)
}

func TestGetSandwichByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSandwichService(db)

	sandwich := &models.Sandwich{SandwichName: "Veggie Delight", Price: 6.99}
	require.NoError(t, db.Create(sandwich).Error)

	found, err := svc.GetSandwichByID(sandwich.ID)
	require.NoError(t, err)
	assert.Equal(t, "Veggie Delight", found.SandwichName)

	_, err = svc.GetSandwichByID(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
