package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzeria-backend/internal/cart"
	"pizzeria-backend/internal/usecase"
)

// CartHandler prices a cart snapshot server-side so the storefront can show
// totals computed with the same policy checkout will enforce.
type CartHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewCartHandler(settingsUseCase *usecase.SettingsUseCase) *CartHandler {
	return &CartHandler{settingsUseCase: settingsUseCase}
}

type quoteRequest struct {
	Lines []cart.Line `json:"lines"`
}

// POST /api/cart/quote
func (h *CartHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	pricing, err := h.settingsUseCase.Pricing(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	state := cart.State{}
	for _, line := range req.Lines {
		state = cart.Reduce(state, cart.AddItem{
			Product: cart.Product{
				ID:       line.ProductID,
				Name:     line.Name,
				Price:    line.UnitPrice,
				Category: line.Category,
				Image:    line.Image,
			},
			Quantity: line.Quantity,
		})
	}

	snap := state.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"snapshot": snap,
		"totals":   pricing.Totals(snap),
	})
}
