package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzeria-backend/internal/usecase"
)

type SpecialHandler struct {
	specialUseCase *usecase.SpecialUseCase
}

func NewSpecialHandler(specialUseCase *usecase.SpecialUseCase) *SpecialHandler {
	return &SpecialHandler{specialUseCase: specialUseCase}
}

// GET /api/admin/specials
func (h *SpecialHandler) List(c *gin.Context) {
	specials, err := h.specialUseCase.ListSpecials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"specials": specials})
}

// POST /api/admin/specials
func (h *SpecialHandler) Create(c *gin.Context) {
	var input usecase.SpecialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	special, err := h.specialUseCase.CreateSpecial(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, special)
}

// PUT /api/admin/specials/:id
func (h *SpecialHandler) Update(c *gin.Context) {
	var input usecase.SpecialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	special, err := h.specialUseCase.UpdateSpecial(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, special)
}

// DELETE /api/admin/specials/:id
func (h *SpecialHandler) Delete(c *gin.Context) {
	if err := h.specialUseCase.DeleteSpecial(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "special deleted"})
}
