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

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetAllOrders retrieves all orders
	GetAllOrders(c *gin.Context)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(c *gin.Context)
	// GetOrdersByUser retrieves all orders placed by a user
	GetOrdersByUser(c *gin.Context)
	// CreateOrder places a new order with its line items
	CreateOrder(c *gin.Context)
	// UpdateOrder updates an existing order
	UpdateOrder(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get a list of all orders with their line items
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {array} models.Order
// @Failure 400 {object} map[string]string
// @Router /orders [get]
func (oc *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := oc.service.GetAllOrders()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get a single order with its line items
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (oc *orderController) GetOrderByID(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, err := oc.service.GetOrderByID(uint(orderID))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// GetOrdersByUser godoc
// @Summary Get a user's orders
// @Description Get all orders placed by the given user
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Order
// @Failure 400 {object} map[string]string
// @Router /orders/user/{id} [get]
func (oc *orderController) GetOrdersByUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	orders, err := oc.service.GetOrdersByUserID(uint(userID))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// CreateOrder godoc
// @Summary Place a new order
// @Description Create an order and its line items; status starts as Placed
// @Tags orders
// @Accept json
// @Produce json
// @Param order body schemas.OrderCreate true "Order payload"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func (oc *orderController) CreateOrder(ctx *gin.Context) {
	var req schemas.OrderCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := &models.Order{
		UserID:       req.UserID,
		CustomerName: req.CustomerName,
		Description:  req.Description,
	}
	details := make([]models.OrderDetail, 0, len(req.OrderDetails))
	for _, d := range req.OrderDetails {
		details = append(details, models.OrderDetail{
			SandwichID: d.SandwichID,
			Amount:     d.Amount,
		})
	}

	created, err := oc.service.CreateOrder(order, details)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateOrder godoc
// @Summary Update an order
// @Description Apply a partial update to an order; absent fields are left untouched
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body schemas.OrderUpdate true "Fields to update"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [put]
func (oc *orderController) UpdateOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req schemas.OrderUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := oc.service.UpdateOrder(uint(orderID), req.Updates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, order)
}
