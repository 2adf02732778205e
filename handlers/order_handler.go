package handlers

import (
	"errors"
	"net/http"

	"phone-store-backend/models"
	"phone-store-backend/orders"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *orders.Service
}

func NewOrderHandler(service *orders.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	placed, err := h.service.Place(c.Request.Context(), req)
	if err != nil {
		var invalidProduct *orders.InvalidProductError
		var insufficientStock *orders.InsufficientStockError
		switch {
		case errors.As(err, &invalidProduct):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INVALID_PRODUCT",
				Message: invalidProduct.Error(),
			})
		case errors.As(err, &insufficientStock):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INSUFFICIENT_STOCK",
				Message: insufficientStock.Error(),
			})
		default:
			storeError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, models.CreateOrderResponse{
		OrderID: placed.OrderID,
		Total:   placed.Total,
		Status:  "success",
	})
}
