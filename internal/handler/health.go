package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmoretti/payment-link-gateway/internal/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Health(c *gin.Context) {
	modes := []string{"live"}
	if h.cfg.TestModeEnabled() {
		modes = append(modes, "test")
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"modes":  modes,
	})
}
