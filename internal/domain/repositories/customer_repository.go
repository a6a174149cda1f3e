package repositories

import (
	"context"
	"time"

	"pizzeria-backend/internal/domain/entities"
)

type ListCustomersQuery struct {
	Search string
	Page   int
	Limit  int
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entities.Customer, error)
	List(ctx context.Context, query ListCustomersQuery) ([]*entities.Customer, int64, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountReturning(ctx context.Context) (int64, error)
	Update(ctx context.Context, customer *entities.Customer) error
	Delete(ctx context.Context, id string) error
	// RecordOrder bumps the customer's order counters after a checkout.
	RecordOrder(ctx context.Context, id string, total float64, at time.Time) error
}

var (
	ErrCustomerNotFound      = &RepositoryError{"customer not found"}
	ErrCustomerAlreadyExists = &RepositoryError{"customer already exists"}
)
