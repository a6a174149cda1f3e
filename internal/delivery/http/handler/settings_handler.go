package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/usecase"
)

type SettingsHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settingsUseCase: settingsUseCase}
}

// GET /api/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsUseCase.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// PUT /api/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings entities.RestaurantSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	updated, err := h.settingsUseCase.UpdateSettings(c.Request.Context(), &settings)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GET /api/pricing, the storefront's pricing source for cart totals.
func (h *SettingsHandler) Pricing(c *gin.Context) {
	pricing, err := h.settingsUseCase.Pricing(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pricing)
}
