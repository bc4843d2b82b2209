package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the page, JSON and live routes plus the health probes.
func NewRouter(h *Handler, upstream string) (*gin.Engine, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(RequestLogger(h.Log), gin.Recovery())
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ready",
			"upstream":      upstream,
			"live_sessions": h.Hub.Count(),
		})
	})

	h.RegisterRoutes(router)

	h.Log.Debug("routes registered", zap.Int("routes", len(router.Routes())))
	return router, nil
}
