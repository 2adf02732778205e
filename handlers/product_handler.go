package handlers

import (
	"errors"
	"net/http"

	"phone-store-backend/catalog"
	"phone-store-backend/models"
	"phone-store-backend/store"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// List handles GET /api/phones?q=
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get handles GET /api/phones/{id}
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid id",
		})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Not found",
		})
	case err != nil:
		storeError(c, err)
	default:
		c.JSON(http.StatusOK, product)
	}
}

// storeError maps store-level failures to 500s.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotConfigured) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "STORE_UNAVAILABLE",
			Message: "Database not configured",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "INTERNAL",
		Message: "Unexpected error",
		Details: err.Error(),
	})
}
