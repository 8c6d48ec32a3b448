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

// PaymentController handles HTTP requests related to payments
type PaymentController interface {
	CreatePayment(c *gin.Context)
	GetPaymentByOrder(c *gin.Context)
	UpdatePayment(c *gin.Context)
}

type paymentController struct {
	service services.PaymentService
}

// NewPaymentController creates a new instance of PaymentController
func NewPaymentController(service services.PaymentService) PaymentController {
	return &paymentController{service: service}
}

// CreatePayment godoc
// @Summary Record a payment
// @Description Record the payment for an order; one payment per order
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body schemas.PaymentCreate true "Payment payload"
// @Success 201 {object} models.Payment
// @Failure 400 {object} map[string]string
// @Router /payments [post]
func (pc *paymentController) CreatePayment(ctx *gin.Context) {
	var req schemas.PaymentCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := &models.Payment{
		OrderID:           req.OrderID,
		Amount:            req.Amount,
		PaymentMethod:     req.PaymentMethod,
		TransactionStatus: req.TransactionStatus,
	}

	if err := pc.service.CreatePayment(payment); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, payment)
}

// GetPaymentByOrder godoc
// @Summary Get an order's payment
// @Description Get the payment recorded for the given order
// @Tags payments
// @Accept json
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {object} models.Payment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/order/{order_id} [get]
func (pc *paymentController) GetPaymentByOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("order_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	payment, err := pc.service.GetPaymentByOrderID(uint(orderID))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	ctx.JSON(http.StatusOK, payment)
}

// UpdatePayment godoc
// @Summary Update a payment
// @Description Apply a partial update to a payment; absent fields are left untouched
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param payment body schemas.PaymentUpdate true "Fields to update"
// @Success 200 {object} models.Payment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [put]
func (pc *paymentController) UpdatePayment(ctx *gin.Context) {
	paymentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID format"})
		return
	}

	var req schemas.PaymentUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := pc.service.UpdatePayment(uint(paymentID), req.Updates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, payment)
}
