package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/usecase"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUseCase}
}

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var input usecase.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderUseCase.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderUseCase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /api/admin/orders
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	query := repositories.ListOrdersQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	orders, total, err := h.orderUseCase.ListOrders(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": newPagination(query.Page, query.Limit, total),
	})
}

// PATCH /api/admin/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	var input usecase.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderUseCase.UpdateOrder(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /api/admin/orders/export
func (h *OrderHandler) Export(c *gin.Context) {
	query := repositories.ListOrdersQuery{
		Status: c.Query("status"),
		Page:   1,
		Limit:  10000,
	}

	orders, _, err := h.orderUseCase.ListOrders(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sheet"})
		return
	}

	headers := []string{
		"OrderNumber", "Customer", "Email", "Phone", "Type", "Status",
		"PaymentStatus", "Subtotal", "Tax", "DeliveryFee", "Total", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		headerRow.AddCell().SetValue(header)
	}

	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(order.OrderNumber)
		row.AddCell().SetValue(order.CustomerInfo.Name)
		row.AddCell().SetValue(order.CustomerInfo.Email)
		row.AddCell().SetValue(order.CustomerInfo.Phone)
		row.AddCell().SetValue(order.OrderType)
		row.AddCell().SetValue(order.Status)
		row.AddCell().SetValue(order.PaymentStatus)
		row.AddCell().SetValue(order.Subtotal)
		row.AddCell().SetValue(order.Tax)
		row.AddCell().SetValue(order.DeliveryFee)
		row.AddCell().SetValue(order.Total)
		row.AddCell().SetValue(order.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write export"})
		return
	}
}
