package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"

	"github.com/google/uuid"
)

type CustomerInput struct {
	Name        string                       `json:"name"`
	Email       string                       `json:"email"`
	Phone       string                       `json:"phone"`
	Addresses   []entities.CustomerAddress   `json:"addresses,omitempty"`
	Preferences *entities.CustomerPreferences `json:"preferences,omitempty"`
}

// CustomerWithOrders is the admin listing row: the customer plus their most
// recent orders.
type CustomerWithOrders struct {
	*entities.Customer
	RecentOrders []*entities.Order `json:"recent_orders"`
}

type CustomerUseCase struct {
	customerRepo repositories.CustomerRepository
	orderRepo    repositories.OrderRepository
	logger       *logger.Logger
	now          func() time.Time
}

func NewCustomerUseCase(
	customerRepo repositories.CustomerRepository,
	orderRepo repositories.OrderRepository,
	log *logger.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       log,
		now:          time.Now,
	}
}

func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CustomerInput) (*entities.Customer, error) {
	if input.Name == "" || input.Email == "" {
		return nil, ErrMissingCustomerFields
	}

	for i := range input.Addresses {
		if input.Addresses[i].ID == "" {
			input.Addresses[i].ID = uuid.New().String()
		}
	}

	customer := &entities.Customer{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Addresses: input.Addresses,
		CreatedAt: uc.now(),
	}
	if customer.Addresses == nil {
		customer.Addresses = []entities.CustomerAddress{}
	}
	if input.Preferences != nil {
		customer.Preferences = *input.Preferences
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	uc.logger.Info("Customer created", "id", customer.ID, "email", customer.Email)
	return customer, nil
}

func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*entities.Customer, error) {
	if id == "" {
		return nil, ErrInvalidCustomerID
	}

	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// ListCustomers returns a page of customers, each enriched with their five
// most recent orders for the admin view.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, query repositories.ListCustomersQuery) ([]*CustomerWithOrders, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	customers, total, err := uc.customerRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	enriched := make([]*CustomerWithOrders, len(customers))
	for i, customer := range customers {
		recent, err := uc.orderRepo.ListByCustomer(ctx, customer.ID, 5)
		if err != nil {
			uc.logger.Warn("Failed to load recent orders for customer",
				"customer_id", customer.ID,
				"error", err)
			recent = []*entities.Order{}
		}
		enriched[i] = &CustomerWithOrders{Customer: customer, RecentOrders: recent}
	}

	return enriched, total, nil
}

func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, input CustomerInput) (*entities.Customer, error) {
	if id == "" {
		return nil, ErrInvalidCustomerID
	}
	if input.Name == "" || input.Email == "" {
		return nil, ErrMissingCustomerFields
	}

	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	if input.Addresses != nil {
		for i := range input.Addresses {
			if input.Addresses[i].ID == "" {
				input.Addresses[i].ID = uuid.New().String()
			}
		}
		customer.Addresses = input.Addresses
	}
	if input.Preferences != nil {
		customer.Preferences = *input.Preferences
	}

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	uc.logger.Info("Customer updated", "id", id)
	return customer, nil
}

func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidCustomerID
	}

	if err := uc.customerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	uc.logger.Info("Customer deleted", "id", id)
	return nil
}

var (
	ErrInvalidCustomerID     = errors.New("invalid customer ID")
	ErrMissingCustomerFields = errors.New("customer name and email are required")
)
