package repositories

import (
	"context"
	"time"

	"pizzeria-backend/internal/domain/entities"
)

// ListOrdersQuery filters and paginates the admin order listing.
type ListOrdersQuery struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// OrderUpdate carries the mutable fields of a persisted order. Item list and
// monetary fields are immutable after creation; they are deliberately absent.
type OrderUpdate struct {
	Status           *string
	PaymentStatus    *string
	Notes            *string
	EstimatedReadyAt *time.Time
	ActualReadyAt    *time.Time
	DeliveredAt      *time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	List(ctx context.Context, query ListOrdersQuery) ([]*entities.Order, int64, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]*entities.Order, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, orderID string, update OrderUpdate) error
}

var (
	ErrOrderNotFound      = &RepositoryError{"order not found"}
	ErrOrderAlreadyExists = &RepositoryError{"order already exists"}
)

type RepositoryError struct {
	message string
}

func (e *RepositoryError) Error() string {
	return e.message
}
