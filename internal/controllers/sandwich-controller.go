package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sandwichshop/gin-sandwich-api/internal/services"
)

// SandwichController handles HTTP requests related to the sandwich menu
type SandwichController interface {
	// GetAllSandwiches retrieves all sandwiches
	GetAllSandwiches(c *gin.Context)
	// GetSandwichByID retrieves a sandwich by its ID
	GetSandwichByID(c *gin.Context)
}

type sandwichController struct {
	service services.SandwichService
}

// NewSandwichController creates a new instance of SandwichController
func NewSandwichController(service services.SandwichService) SandwichController {
	return &sandwichController{service: service}
}

// GetAllSandwiches godoc
// @Summary Get the menu
// @Description Get a list of all sandwiches on the menu
// @Tags sandwiches
// @Accept json
// @Produce json
// @Success 200 {array} models.Sandwich
// @Failure 400 {object} map[string]string
// @Router /sandwiches [get]
func (sc *sandwichController) GetAllSandwiches(ctx *gin.Context) {
	sandwiches, err := sc.service.GetAllSandwiches()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, sandwiches)
}

// GetSandwichByID godoc
// @Summary Get sandwich by ID
// @Description Get a single sandwich with its recipe
// @Tags sandwiches
// @Accept json
// @Produce json
// @Param id path int true "Sandwich ID"
// @Success 200 {object} models.Sandwich
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sandwiches/{id} [get]
func (sc *sandwichController) GetSandwichByID(ctx *gin.Context) {
	sandwichID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sandwich ID format"})
		return
	}

	sandwich, err := sc.service.GetSandwichByID(uint(sandwichID))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Sandwich not found"})
		return
	}
	ctx.JSON(http.StatusOK, sandwich)
}
