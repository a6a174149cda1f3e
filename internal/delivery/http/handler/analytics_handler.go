package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzeria-backend/internal/usecase"
)

type AnalyticsHandler struct {
	analyticsUseCase *usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUseCase: analyticsUseCase}
}

// GET /api/admin/analytics?period=7d|30d|90d|1y
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analyticsUseCase.Overview(c.Request.Context(), c.DefaultQuery("period", "7d"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GET /api/admin/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.analyticsUseCase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
