package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires all routes onto a gin engine with permissive CORS.
func NewRouter(system *SystemHandler, products *ProductHandler, orders *OrderHandler) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = false
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/", system.Root)
	router.GET("/health", system.Health)
	router.GET("/test", system.Test)
	router.POST("/seed", system.Seed)

	api := router.Group("/api")
	api.GET("/phones", products.List)
	api.GET("/phones/:id", products.Get)
	api.POST("/orders", orders.Create)

	return router
}
