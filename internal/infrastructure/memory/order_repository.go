package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
)

// OrderRepositoryMemory is a map-backed order store for local development
// and tests. Semantics mirror the MongoDB repository.
type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
}

func NewOrderRepositoryMemory() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{
		orders: make(map[string]*entities.Order),
	}
}

func (r *OrderRepositoryMemory) Create(ctx context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.OrderID]; exists {
		return repositories.ErrOrderAlreadyExists
	}

	orderCopy := *order
	r.orders[order.OrderID] = &orderCopy
	return nil
}

func (r *OrderRepositoryMemory) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[orderID]
	if !exists {
		return nil, repositories.ErrOrderNotFound
	}

	orderCopy := *order
	return &orderCopy, nil
}

func (r *OrderRepositoryMemory) List(ctx context.Context, query repositories.ListOrdersQuery) ([]*entities.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entities.Order
	for _, order := range r.orders {
		if query.Status != "" && query.Status != "all" && order.Status != query.Status {
			continue
		}
		if query.Search != "" && !matchesSearch(order, query.Search) {
			continue
		}
		orderCopy := *order
		matched = append(matched, &orderCopy)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	page, limit := query.Page, query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(matched) {
		return []*entities.Order{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *OrderRepositoryMemory) ListBetween(ctx context.Context, from, to time.Time) ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.Order{}
	for _, order := range r.orders {
		if order.CreatedAt.Before(from) || !order.CreatedAt.Before(to) {
			continue
		}
		orderCopy := *order
		result = append(result, &orderCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *OrderRepositoryMemory) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.Order{}
	for _, order := range r.orders {
		if order.CustomerID != customerID {
			continue
		}
		orderCopy := *order
		result = append(result, &orderCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *OrderRepositoryMemory) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

func (r *OrderRepositoryMemory) Update(ctx context.Context, orderID string, update repositories.OrderUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.orders[orderID]
	if !exists {
		return repositories.ErrOrderNotFound
	}

	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.PaymentStatus != nil {
		order.PaymentStatus = *update.PaymentStatus
	}
	if update.Notes != nil {
		order.Notes = *update.Notes
	}
	if update.EstimatedReadyAt != nil {
		order.EstimatedReadyAt = update.EstimatedReadyAt
	}
	if update.ActualReadyAt != nil {
		order.ActualReadyAt = update.ActualReadyAt
	}
	if update.DeliveredAt != nil {
		order.DeliveredAt = update.DeliveredAt
	}
	order.UpdatedAt = time.Now()
	return nil
}

func matchesSearch(order *entities.Order, search string) bool {
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(order.OrderNumber), search) ||
		strings.Contains(strings.ToLower(order.CustomerInfo.Name), search) ||
		strings.Contains(strings.ToLower(order.CustomerInfo.Email), search)
}
