package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/usecase"
)

// Pagination mirrors the shape the admin pages page through.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func newPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

var badRequestErrors = []error{
	usecase.ErrInvalidOrderID,
	usecase.ErrEmptyItems,
	usecase.ErrInvalidItem,
	usecase.ErrInvalidStatus,
	usecase.ErrInvalidPaymentStatus,
	usecase.ErrInvalidOrderType,
	usecase.ErrMissingCustomerInfo,
	usecase.ErrMissingDeliveryAddress,
	usecase.ErrBelowMinimumOrder,
	usecase.ErrTotalMismatch,
	usecase.ErrInvalidMenuItemID,
	usecase.ErrMissingMenuItemName,
	usecase.ErrInvalidMenuItemPrice,
	usecase.ErrMissingMenuItemCategory,
	usecase.ErrInvalidCustomerID,
	usecase.ErrMissingCustomerFields,
	usecase.ErrInvalidSpecialID,
	usecase.ErrMissingSpecialFields,
	usecase.ErrInvalidTaxRate,
	usecase.ErrInvalidDeliveryConfig,
	usecase.ErrInvalidPeriod,
}

var notFoundErrors = []error{
	repositories.ErrOrderNotFound,
	repositories.ErrMenuItemNotFound,
	repositories.ErrCustomerNotFound,
	repositories.ErrSpecialNotFound,
}

var conflictErrors = []error{
	repositories.ErrOrderAlreadyExists,
	repositories.ErrCustomerAlreadyExists,
}

// respondError maps usecase and repository sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
