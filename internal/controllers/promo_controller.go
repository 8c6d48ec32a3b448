package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"github.com/sandwichshop/gin-sandwich-api/internal/schemas"
	"github.com/sandwichshop/gin-sandwich-api/internal/services"
	"gorm.io/gorm"
)

// PromoController handles HTTP requests related to promo codes
type PromoController interface {
	GetAllPromos(c *gin.Context)
	GetActivePromos(c *gin.Context)
	CreatePromo(c *gin.Context)
	UpdatePromo(c *gin.Context)
	DeletePromo(c *gin.Context)
}

type promoController struct {
	service services.PromoService
}

// NewPromoController creates a new instance of PromoController
func NewPromoController(service services.PromoService) PromoController {
	return &promoController{service: service}
}

// GetAllPromos godoc
// @Summary Get all promos
// @Description Get all promo codes, active or not
// @Tags promos
// @Accept json
// @Produce json
// @Success 200 {array} models.Promo
// @Failure 400 {object} map[string]string
// @Router /promos [get]
func (pc *promoController) GetAllPromos(ctx *gin.Context) {
	promos, err := pc.service.GetAllPromos()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, promos)
}

// GetActivePromos godoc
// @Summary Get active promos
// @Description Get promo codes currently flagged active
// @Tags promos
// @Accept json
// @Produce json
// @Success 200 {array} models.Promo
// @Failure 400 {object} map[string]string
// @Router /promos/active [get]
func (pc *promoController) GetActivePromos(ctx *gin.Context) {
	promos, err := pc.service.GetActivePromos()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, promos)
}

// CreatePromo godoc
// @Summary Create a promo code
// @Description Create a new promo code; the code must be unique
// @Tags promos
// @Accept json
// @Produce json
// @Param promo body schemas.PromoCreate true "Promo payload"
// @Success 201 {object} models.Promo
// @Failure 400 {object} map[string]string
// @Router /promos [post]
func (pc *promoController) CreatePromo(ctx *gin.Context) {
	var req schemas.PromoCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := 1
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	promo := &models.Promo{
		Code:         req.Code,
		Description:  req.Description,
		DiscountType: req.DiscountType,
		Value:        req.Value,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsActive:     isActive,
	}

	if err := pc.service.CreatePromo(promo); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, promo)
}

// UpdatePromo godoc
// @Summary Update a promo code
// @Description Apply a partial update to a promo; absent fields are left untouched
// @Tags promos
// @Accept json
// @Produce json
// @Param id path int true "Promo ID"
// @Param promo body schemas.PromoUpdate true "Fields to update"
// @Success 200 {object} models.Promo
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promos/{id} [put]
func (pc *promoController) UpdatePromo(ctx *gin.Context) {
	promoID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo ID format"})
		return
	}

	var req schemas.PromoUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	promo, err := pc.service.UpdatePromo(uint(promoID), req.Updates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Promo not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, promo)
}

// DeletePromo godoc
// @Summary Delete a promo code
// @Description Delete a promo by its ID
// @Tags promos
// @Accept json
// @Produce json
// @Param id path int true "Promo ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promos/{id} [delete]
func (pc *promoController) DeletePromo(ctx *gin.Context) {
	promoID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo ID format"})
		return
	}

	if err := pc.service.DeletePromo(uint(promoID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Promo not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
