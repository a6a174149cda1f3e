package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/usecase"
)

type MenuHandler struct {
	menuUseCase *usecase.MenuUseCase
}

func NewMenuHandler(menuUseCase *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{menuUseCase: menuUseCase}
}

// GET /api/menu. The storefront listing only shows available items.
func (h *MenuHandler) ListPublic(c *gin.Context) {
	h.list(c, true)
}

// GET /api/admin/menu
func (h *MenuHandler) List(c *gin.Context) {
	h.list(c, false)
}

func (h *MenuHandler) list(c *gin.Context, onlyAvailable bool) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	query := repositories.ListMenuQuery{
		Category:      c.Query("category"),
		Search:        c.Query("search"),
		OnlyAvailable: onlyAvailable,
		Page:          page,
		Limit:         limit,
	}

	items, total, err := h.menuUseCase.ListItems(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"pagination": newPagination(query.Page, query.Limit, total),
	})
}

// GET /api/menu/categories
func (h *MenuHandler) Categories(c *gin.Context) {
	categories, err := h.menuUseCase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GET /api/admin/menu/:id
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.menuUseCase.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// POST /api/admin/menu
func (h *MenuHandler) Create(c *gin.Context) {
	var input usecase.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	item, err := h.menuUseCase.CreateItem(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PUT /api/admin/menu/:id
func (h *MenuHandler) Update(c *gin.Context) {
	var input usecase.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	item, err := h.menuUseCase.UpdateItem(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /api/admin/menu/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.menuUseCase.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}
