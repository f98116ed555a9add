package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ekviron/orders-api/internal/platform/metrics"
	"github.com/ekviron/orders-api/internal/shared/middleware"
)

// NewRouter builds the gin engine with the order routes mounted under
// /api/v1 plus the liveness and metrics endpoints. Extra middleware (e.g.
// tracing) must be passed here so it is installed before routes register.
func NewRouter(api OrderAPI, httpMetrics *metrics.HTTPMetrics, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	if httpMetrics != nil {
		router.Use(httpMetrics.Middleware())
	}
	router.Use(extra...)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/orders", api.GetOrders)
		v1.GET("/orders/:id", api.GetOrderByID)
		v1.POST("/orders", api.CreateOrder)
		v1.DELETE("/orders/:id", api.DeleteOrder)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
