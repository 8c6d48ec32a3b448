package services

import (
	"errors"

	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when a user with the requested email already exists
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login with an unknown email or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService interface {
	// GetAllUsers retrieves all users from the database
	GetAllUsers() ([]models.User, error)
	// GetUserByID retrieves a user by its ID
	GetUserByID(id uint) (*models.User, error)
	// CreateUser hashes the password and persists a new user
	CreateUser(user *models.User) error
	// UpdateUser applies a partial update to the allow-listed columns
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	// DeleteUser removes a user by its ID
	DeleteUser(id uint) error
	// Authenticate verifies an email/password pair
	Authenticate(email, password string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) CreateUser(user *models.User) error {
	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	}

	if err := user.HashPassword(); err != nil {
		return err
	}
	return s.db.Create(user).Error
}

func (s *userService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// Reload so the caller sees exactly what was persisted
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) DeleteUser(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&user).Error
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
