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

// ReviewController handles HTTP requests related to reviews
type ReviewController interface {
	GetAllReviews(c *gin.Context)
	GetReviewByID(c *gin.Context)
	GetReviewsByUser(c *gin.Context)
	CreateReview(c *gin.Context)
	UpdateReview(c *gin.Context)
	DeleteReview(c *gin.Context)
}

type reviewController struct {
	service services.ReviewService
}

// NewReviewController creates a new instance of ReviewController
func NewReviewController(service services.ReviewService) ReviewController {
	return &reviewController{service: service}
}

// GetAllReviews godoc
// @Summary Get all reviews
// @Description Get all reviews, newest first
// @Tags reviews
// @Accept json
// @Produce json
// @Success 200 {array} models.Review
// @Failure 400 {object} map[string]string
// @Router /reviews [get]
func (rc *reviewController) GetAllReviews(ctx *gin.Context) {
	reviews, err := rc.service.GetAllReviews()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// GetReviewByID godoc
// @Summary Get review by ID
// @Description Get a single review by its ID
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Review
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [get]
func (rc *reviewController) GetReviewByID(ctx *gin.Context) {
	reviewID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID format"})
		return
	}

	review, err := rc.service.GetReviewByID(uint(reviewID))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// GetReviewsByUser godoc
// @Summary Get a user's reviews
// @Description Get all reviews left by the given user
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Review
// @Failure 400 {object} map[string]string
// @Router /reviews/user/{id} [get]
func (rc *reviewController) GetReviewsByUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	reviews, err := rc.service.GetReviewsByUserID(uint(userID))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary Submit a review
// @Description Create a review, optionally linked to an order
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body schemas.ReviewCreate true "Review payload"
// @Success 201 {object} models.Review
// @Failure 400 {object} map[string]string
// @Router /reviews [post]
func (rc *reviewController) CreateReview(ctx *gin.Context) {
	var req schemas.ReviewCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := &models.Review{
		UserID:  req.UserID,
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := rc.service.CreateReview(review); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, review)
}

// UpdateReview godoc
// @Summary Update a review
// @Description Apply a partial update to a review; absent fields are left untouched
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body schemas.ReviewUpdate true "Fields to update"
// @Success 200 {object} models.Review
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (rc *reviewController) UpdateReview(ctx *gin.Context) {
	reviewID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID format"})
		return
	}

	var req schemas.ReviewUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := rc.service.UpdateReview(uint(reviewID), req.Updates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Delete a review by its ID
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (rc *reviewController) DeleteReview(ctx *gin.Context) {
	reviewID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID format"})
		return
	}

	if err := rc.service.DeleteReview(uint(reviewID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
