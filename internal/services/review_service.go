package services

import (
	"time"

	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"gorm.io/gorm"
)

type ReviewService interface {
	// GetAllReviews retrieves all reviews, newest first
	GetAllReviews() ([]models.Review, error)
	// GetReviewByID retrieves a review by its ID
	GetReviewByID(id uint) (*models.Review, error)
	// GetReviewsByUserID retrieves all reviews left by a user
	GetReviewsByUserID(userID uint) ([]models.Review, error)
	// CreateReview persists a new review
	CreateReview(review *models.Review) error
	// UpdateReview applies a partial update to the allow-listed columns
	UpdateReview(id uint, updates map[string]interface{}) (*models.Review, error)
	// DeleteReview removes a review by its ID
	DeleteReview(id uint) error
}

type reviewService struct {
	db *gorm.DB
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(db *gorm.DB) ReviewService {
	return &reviewService{db: db}
}

func (s *reviewService) GetAllReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Order("review_date desc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *reviewService) GetReviewByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *reviewService) GetReviewsByUserID(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *reviewService) CreateReview(review *models.Review) error {
	review.ReviewDate = time.Now()
	return s.db.Create(review).Error
}

func (s *reviewService) UpdateReview(id uint, updates map[string]interface{}) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&review).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *reviewService) DeleteReview(id uint) error {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&review).Error
}
