package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"
	"pizzeria-backend/internal/infrastructure/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, item *entities.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) List(ctx context.Context, query repositories.ListMenuQuery) ([]*entities.MenuItem, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MenuItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockMenuRepository) ListAll(ctx context.Context) ([]*entities.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *entities.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestResolveWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period   string
		wantFrom time.Time
	}{
		{"", now.AddDate(0, 0, -7)},
		{"7d", now.AddDate(0, 0, -7)},
		{"30d", now.AddDate(0, 0, -30)},
		{"90d", now.AddDate(0, 0, -90)},
		{"1y", now.AddDate(-1, 0, 0)},
	}

	for _, tt := range tests {
		window, err := ResolveWindow(tt.period, now)
		assert.NoError(t, err, tt.period)
		assert.Equal(t, tt.wantFrom, window.From, tt.period)
		assert.Equal(t, now, window.To, tt.period)
	}

	_, err := ResolveWindow("14d", now)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestAnalyticsWindow_Previous(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	window := AnalyticsWindow{From: now.AddDate(0, 0, -7), To: now}

	previous := window.Previous()

	assert.Equal(t, window.From, previous.To)
	assert.Equal(t, now.AddDate(0, 0, -14), previous.From)
}

func seedOrder(t *testing.T, repo *memory.OrderRepositoryMemory, n int, total float64, status string, at time.Time, items ...entities.OrderItem) {
	t.Helper()
	err := repo.Create(context.Background(), &entities.Order{
		OrderID:     fmt.Sprintf("order-%d", n),
		OrderNumber: fmt.Sprintf("ORD-%06d", n),
		Total:       total,
		Status:      status,
		Items:       items,
		CreatedAt:   at,
	})
	assert.NoError(t, err)
}

func TestAnalyticsUseCase_Overview(t *testing.T) {
	orderRepo := memory.NewOrderRepositoryMemory()
	mockCustomers := new(MockCustomerRepository)
	mockMenu := new(MockMenuRepository)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Two orders inside the 7d window, one in the preceding window.
	seedOrder(t, orderRepo, 1, 30.0, entities.StatusDelivered, now.AddDate(0, 0, -1),
		entities.OrderItem{MenuItemID: "pizza-1", Name: "Margherita", UnitPrice: 10.0, Quantity: 3})
	seedOrder(t, orderRepo, 2, 20.0, entities.StatusPending, now.AddDate(0, 0, -2),
		entities.OrderItem{MenuItemID: "drink-1", Name: "Chinotto", UnitPrice: 3.0, Quantity: 1})
	seedOrder(t, orderRepo, 3, 25.0, entities.StatusDelivered, now.AddDate(0, 0, -10))

	mockMenu.On("ListAll", mock.Anything).Return([]*entities.MenuItem{
		{ID: "pizza-1", Category: "pizza"},
		{ID: "drink-1", Category: "beverages"},
	}, nil)
	mockCustomers.On("Count", mock.Anything).Return(int64(40), nil)
	mockCustomers.On("CountCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(5), nil)
	mockCustomers.On("CountReturning", mock.Anything).Return(int64(12), nil)

	useCase := NewAnalyticsUseCase(orderRepo, mockCustomers, mockMenu, time.UTC, logger.NewLogger())
	useCase.now = func() time.Time { return now }

	overview, err := useCase.Overview(context.Background(), "7d")

	assert.NoError(t, err)
	assert.Equal(t, "7d", overview.Period)
	assert.InDelta(t, 50.0, overview.Revenue.Total, 0.001)
	assert.InDelta(t, 100.0, overview.Revenue.Change, 0.001) // 50 vs 25
	assert.Len(t, overview.Revenue.Daily, 8)

	assert.Equal(t, 2, overview.Orders.Total)
	assert.Equal(t, 1, overview.Orders.ByStatus[entities.StatusDelivered])
	assert.Equal(t, 1, overview.Orders.ByStatus[entities.StatusPending])

	assert.Len(t, overview.PopularItems, 2)
	assert.Equal(t, "pizza-1", overview.PopularItems[0].MenuItemID)
	assert.Equal(t, 3, overview.PopularItems[0].QuantitySold)

	assert.Len(t, overview.Categories, 2)
	assert.Equal(t, "pizza", overview.Categories[0].Category)

	assert.Equal(t, int64(40), overview.Customers.Total)
	assert.Equal(t, int64(5), overview.Customers.New)
	assert.Equal(t, int64(12), overview.Customers.Returning)

	mockMenu.AssertExpectations(t)
	mockCustomers.AssertExpectations(t)
}

func TestAnalyticsUseCase_Overview_InvalidPeriod(t *testing.T) {
	useCase := NewAnalyticsUseCase(memory.NewOrderRepositoryMemory(), new(MockCustomerRepository), new(MockMenuRepository), time.UTC, logger.NewLogger())

	_, err := useCase.Overview(context.Background(), "yesterday")

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestAnalyticsUseCase_Dashboard(t *testing.T) {
	orderRepo := memory.NewOrderRepositoryMemory()
	mockCustomers := new(MockCustomerRepository)
	mockMenu := new(MockMenuRepository)

	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	// Today: one pending, one delivered, one preparing.
	seedOrder(t, orderRepo, 1, 20.0, entities.StatusPending, now.Add(-2*time.Hour))
	seedOrder(t, orderRepo, 2, 30.0, entities.StatusDelivered, now.Add(-4*time.Hour))
	seedOrder(t, orderRepo, 3, 15.0, entities.StatusPreparing, now.Add(-1*time.Hour))
	// Earlier this month.
	seedOrder(t, orderRepo, 4, 35.0, entities.StatusDelivered, now.AddDate(0, 0, -5))
	// Last month.
	seedOrder(t, orderRepo, 5, 50.0, entities.StatusDelivered, now.AddDate(0, -1, 0))

	mockCustomers.On("Count", mock.Anything).Return(int64(40), nil)

	useCase := NewAnalyticsUseCase(orderRepo, mockCustomers, mockMenu, time.UTC, logger.NewLogger())
	useCase.now = func() time.Time { return now }

	stats, err := useCase.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Today.Orders)
	assert.InDelta(t, 65.0, stats.Today.Revenue, 0.001)
	assert.Equal(t, 1, stats.Today.Pending)
	assert.Equal(t, 1, stats.Today.Completed)

	assert.Equal(t, 4, stats.Month.Orders)
	assert.InDelta(t, 100.0, stats.Month.Revenue, 0.001)
	assert.InDelta(t, 100.0, stats.Month.RevenueChange, 0.001) // 100 vs 50
	assert.InDelta(t, 300.0, stats.Month.OrdersChange, 0.001)  // 4 vs 1

	assert.Equal(t, int64(40), stats.TotalCustomers)
	assert.Len(t, stats.RecentOrders, 5)

	mockCustomers.AssertExpectations(t)
}
