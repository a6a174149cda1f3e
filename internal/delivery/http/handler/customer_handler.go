package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/usecase"
)

type CustomerHandler struct {
	customerUseCase *usecase.CustomerUseCase
}

func NewCustomerHandler(customerUseCase *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{customerUseCase: customerUseCase}
}

// GET /api/admin/customers
func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	query := repositories.ListCustomersQuery{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	customers, total, err := h.customerUseCase.ListCustomers(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":  customers,
		"pagination": newPagination(query.Page, query.Limit, total),
	})
}

// GET /api/admin/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerUseCase.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// POST /api/admin/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var input usecase.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	customer, err := h.customerUseCase.CreateCustomer(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// PUT /api/admin/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	var input usecase.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	customer, err := h.customerUseCase.UpdateCustomer(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DELETE /api/admin/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerUseCase.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
