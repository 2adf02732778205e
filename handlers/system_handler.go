package handlers

import (
	"net/http"

	"phone-store-backend/catalog"
	"phone-store-backend/models"
	"phone-store-backend/store"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves liveness, diagnostics and demo-data seeding.
type SystemHandler struct {
	store        store.Store
	catalog      *catalog.Catalog
	databaseURL  string
	databaseName string
}

func NewSystemHandler(st store.Store, cat *catalog.Catalog, databaseURL, databaseName string) *SystemHandler {
	return &SystemHandler{
		store:        st,
		catalog:      cat,
		databaseURL:  databaseURL,
		databaseName: databaseName,
	}
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Phone Store Backend Running"})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Test handles GET /test: a connectivity report for the document store.
func (h *SystemHandler) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      h.databaseURL != "",
		"database_name":     h.databaseName != "",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if err := h.store.Ping(c.Request.Context()); err == nil {
		response["database"] = "connected"
		response["connection_status"] = "Connected"
		if collections, err := h.store.Collections(c.Request.Context()); err == nil {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			response["collections"] = collections
		} else {
			response["database"] = "connected but error: " + err.Error()
		}
	}

	c.JSON(http.StatusOK, response)
}

// Seed handles POST /seed: inserts the demo catalog if empty.
func (h *SystemHandler) Seed(c *gin.Context) {
	ids, err := h.catalog.Seed(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	if ids == nil {
		c.JSON(http.StatusOK, models.SeedResponse{Inserted: 0, Message: "Already seeded"})
		return
	}
	c.JSON(http.StatusOK, models.SeedResponse{Inserted: len(ids), IDs: ids})
}
