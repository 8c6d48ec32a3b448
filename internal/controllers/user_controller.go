package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"github.com/sandwichshop/gin-sandwich-api/internal/schemas"
	"github.com/sandwichshop/gin-sandwich-api/internal/services"
	"gorm.io/gorm"
)

// UserController handles HTTP requests related to users
type UserController interface {
	// GetAllUsers retrieves all users
	GetAllUsers(c *gin.Context)
	// GetUserByID retrieves a user by its ID
	GetUserByID(c *gin.Context)
	// CreateUser registers a new user
	CreateUser(c *gin.Context)
	// UpdateUser updates an existing user
	UpdateUser(c *gin.Context)
	// DeleteUser deletes a user by its ID
	DeleteUser(c *gin.Context)
	// Login verifies credentials and returns the user with a token
	Login(c *gin.Context)
}

type userController struct {
	service services.UserService
}

// NewUserController creates a new instance of UserController
func NewUserController(service services.UserService) UserController {
	return &userController{service: service}
}

// generateToken builds the caller-visible token. It is a plain composite of
// the user id and the current timestamp, not a credential.
func generateToken(userID uint) string {
	return fmt.Sprintf("token_%d_%d", userID, time.Now().Unix())
}

func userResponse(user *models.User, token string) schemas.UserResponse {
	return schemas.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Email:       user.Email,
		Role:        user.Role,
		Token:       token,
	}
}

// GetAllUsers godoc
// @Summary Get all users
// @Description Get a list of all registered users
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {array} models.User
// @Failure 400 {object} map[string]string
// @Router /users [get]
func (uc *userController) GetAllUsers(ctx *gin.Context) {
	users, err := uc.service.GetAllUsers()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUserByID godoc
// @Summary Get user by ID
// @Description Get a single user by its ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (uc *userController) GetUserByID(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	user, err := uc.service.GetUserByID(uint(userID))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary Register a new user
// @Description Create a user account and return it with a session token
// @Tags users
// @Accept json
// @Produce json
// @Param user body schemas.UserCreate true "User payload"
// @Success 201 {object} schemas.UserResponse
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (uc *userController) CreateUser(ctx *gin.Context) {
	var req schemas.UserCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = string(models.RoleCustomer)
	}

	user := &models.User{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Email:       req.Email,
		Password:    req.Password,
		Role:        role,
	}

	if err := uc.service.CreateUser(user); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, userResponse(user, generateToken(user.ID)))
}

// UpdateUser godoc
// @Summary Update a user
// @Description Apply a partial update to a user; absent fields are left untouched
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body schemas.UserUpdate true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [put]
func (uc *userController) UpdateUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req schemas.UserUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.service.UpdateUser(uint(userID), req.Updates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Delete a user by its ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (uc *userController) DeleteUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	if err := uc.service.DeleteUser(uint(userID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// Login godoc
// @Summary Log a user in
// @Description Verify email and password and return the user with a token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body schemas.UserLogin true "Login payload"
// @Success 200 {object} schemas.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/login [post]
func (uc *userController) Login(ctx *gin.Context) {
	var req schemas.UserLogin
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.service.Authenticate(req.Email, req.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	ctx.JSON(http.StatusOK, userResponse(user, generateToken(user.ID)))
}
