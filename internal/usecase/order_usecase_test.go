package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, query repositories.ListOrdersQuery) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entities.Order, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*entities.Order, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, orderID string, update repositories.OrderUpdate) error {
	args := m.Called(ctx, orderID, update)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, query repositories.ListCustomersQuery) ([]*entities.Customer, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) CountReturning(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entities.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) RecordOrder(ctx context.Context, id string, total float64, at time.Time) error {
	args := m.Called(ctx, id, total, at)
	return args.Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*entities.RestaurantSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantSettings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *entities.RestaurantSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() {
	m.Called()
}

func newTestOrderUseCase(
	orderRepo *MockOrderRepository,
	customerRepo *MockCustomerRepository,
	settingsRepo *MockSettingsRepository,
	publisher EventPublisher,
) *OrderUseCase {
	return NewOrderUseCase(orderRepo, customerRepo, settingsRepo, publisher, logger.NewLogger())
}

func pickupInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
		Items: []entities.OrderItem{
			{MenuItemID: "item-1", Name: "Margherita", UnitPrice: 10.0, Quantity: 2},
			{MenuItemID: "item-2", Name: "Tiramisu", UnitPrice: 5.0, Quantity: 1},
		},
		OrderType: entities.OrderTypePickup,
	}
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockCustomers := new(MockCustomerRepository)
	mockSettings := new(MockSettingsRepository)
	mockPublisher := new(MockEventPublisher)

	useCase := newTestOrderUseCase(mockRepo, mockCustomers, mockSettings, mockPublisher)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)
	mockRepo.On("Count", mock.Anything).Return(int64(41), nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entities.Order)
			assert.Equal(t, "ORD-000042", order.OrderNumber)
			assert.Equal(t, entities.StatusPending, order.Status)
			assert.Equal(t, entities.PaymentPending, order.PaymentStatus)
			assert.InDelta(t, 25.0, order.Subtotal, 0.001)
			assert.InDelta(t, 5.5, order.Tax, 0.001)
			assert.Equal(t, 0.0, order.DeliveryFee)
			assert.InDelta(t, 30.5, order.Total, 0.001)
		})

	mockPublisher.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	order, err := useCase.CreateOrder(ctx, pickupInput())

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, entities.StatusPending, order.Status)
	assert.InDelta(t, 30.5, order.Total, 0.001)
	assert.Len(t, order.Items, 2)

	wg.Wait()

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
	mockCustomers.AssertNotCalled(t, "RecordOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUseCase_CreateOrder_DeliveryFee(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockCustomers := new(MockCustomerRepository)
	mockSettings := new(MockSettingsRepository)

	useCase := newTestOrderUseCase(mockRepo, mockCustomers, mockSettings, nil)
	ctx := context.Background()

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Order")).Return(nil)
	mockCustomers.On("RecordOrder", mock.Anything, "cust-1", mock.AnythingOfType("float64"), mock.AnythingOfType("time.Time")).Return(nil)

	input := CreateOrderInput{
		CustomerID:   "cust-1",
		CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
		Items: []entities.OrderItem{
			{MenuItemID: "item-1", Name: "Margherita", UnitPrice: 10.0, Quantity: 2},
		},
		OrderType:       entities.OrderTypeDelivery,
		DeliveryAddress: &entities.DeliveryAddress{Street: "Via Garibaldi 5", City: "Milano", PostalCode: "20121"},
	}

	order, err := useCase.CreateOrder(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.InDelta(t, 20.0, order.Subtotal, 0.001)
	assert.InDelta(t, 4.4, order.Tax, 0.001)
	assert.InDelta(t, 3.5, order.DeliveryFee, 0.001)
	assert.InDelta(t, 27.9, order.Total, 0.001)

	mockRepo.AssertExpectations(t)
	mockCustomers.AssertExpectations(t)
}

func TestOrderUseCase_CreateOrder_FreeDeliveryAboveThreshold(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockCustomers := new(MockCustomerRepository)
	mockSettings := new(MockSettingsRepository)

	useCase := newTestOrderUseCase(mockRepo, mockCustomers, mockSettings, nil)
	ctx := context.Background()

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Order")).Return(nil)

	input := CreateOrderInput{
		CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
		Items: []entities.OrderItem{
			{MenuItemID: "item-1", Name: "Margherita", UnitPrice: 10.0, Quantity: 4},
		},
		OrderType:       entities.OrderTypeDelivery,
		DeliveryAddress: &entities.DeliveryAddress{Street: "Via Garibaldi 5", City: "Milano", PostalCode: "20121"},
	}

	order, err := useCase.CreateOrder(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, order.DeliveryFee)
	assert.InDelta(t, 48.8, order.Total, 0.001)

	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_CreateOrder_LinksGuestByEmail(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockCustomers := new(MockCustomerRepository)
	mockSettings := new(MockSettingsRepository)

	useCase := newTestOrderUseCase(mockRepo, mockCustomers, mockSettings, nil)
	ctx := context.Background()

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Order")).Return(nil)
	mockCustomers.On("GetByEmail", mock.Anything, "mario@example.com").
		Return(&entities.Customer{ID: "cust-9", Email: "mario@example.com"}, nil)
	mockCustomers.On("RecordOrder", mock.Anything, "cust-9", mock.AnythingOfType("float64"), mock.AnythingOfType("time.Time")).Return(nil)

	input := pickupInput()
	input.CustomerInfo.Email = "mario@example.com"

	order, err := useCase.CreateOrder(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, "cust-9", order.CustomerID)

	mockCustomers.AssertExpectations(t)
}

func TestOrderUseCase_CreateOrder_PublishErrorNotFatal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockCustomers := new(MockCustomerRepository)
	mockSettings := new(MockSettingsRepository)
	mockPublisher := new(MockEventPublisher)

	useCase := newTestOrderUseCase(mockRepo, mockCustomers, mockSettings, mockPublisher)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Order")).Return(nil)

	mockPublisher.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(errors.New("nats connection failed")).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	order, err := useCase.CreateOrder(ctx, pickupInput())

	assert.NoError(t, err)
	assert.NotNil(t, order)

	wg.Wait()

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderUseCase_CreateOrder_InvalidInput(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockCustomers := new(MockCustomerRepository)
	mockSettings := new(MockSettingsRepository)

	useCase := newTestOrderUseCase(mockRepo, mockCustomers, mockSettings, nil)
	ctx := context.Background()

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)

	tests := []struct {
		name    string
		input   CreateOrderInput
		wantErr string
	}{
		{
			name: "missing customer name",
			input: CreateOrderInput{
				CustomerInfo: entities.CustomerInfo{Phone: "+39 333 1234567"},
				Items:        []entities.OrderItem{{MenuItemID: "item-1", UnitPrice: 10.0, Quantity: 1}},
				OrderType:    entities.OrderTypePickup,
			},
			wantErr: "customer name and phone are required",
		},
		{
			name: "empty items",
			input: CreateOrderInput{
				CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
				Items:        []entities.OrderItem{},
				OrderType:    entities.OrderTypePickup,
			},
			wantErr: "items list cannot be empty",
		},
		{
			name: "unknown order type",
			input: CreateOrderInput{
				CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
				Items:        []entities.OrderItem{{MenuItemID: "item-1", UnitPrice: 10.0, Quantity: 1}},
				OrderType:    "drone_drop",
			},
			wantErr: "invalid order type",
		},
		{
			name: "delivery without address",
			input: CreateOrderInput{
				CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
				Items:        []entities.OrderItem{{MenuItemID: "item-1", UnitPrice: 10.0, Quantity: 2}},
				OrderType:    entities.OrderTypeDelivery,
			},
			wantErr: "delivery orders require a delivery address",
		},
		{
			name: "item without menu item id",
			input: CreateOrderInput{
				CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
				Items:        []entities.OrderItem{{UnitPrice: 10.0, Quantity: 1}},
				OrderType:    entities.OrderTypePickup,
			},
			wantErr: "item 0 has no menu item id",
		},
		{
			name: "invalid quantity",
			input: CreateOrderInput{
				CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
				Items:        []entities.OrderItem{{MenuItemID: "item-1", UnitPrice: 10.0, Quantity: 0}},
				OrderType:    entities.OrderTypePickup,
			},
			wantErr: "item 0 has invalid quantity",
		},
		{
			name: "invalid price",
			input: CreateOrderInput{
				CustomerInfo: entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
				Items:        []entities.OrderItem{{MenuItemID: "item-1", UnitPrice: -10.0, Quantity: 1}},
				OrderType:    entities.OrderTypePickup,
			},
			wantErr: "item 0 has invalid price",
		},
		{
			name: "delivery below minimum order",
			input: CreateOrderInput{
				CustomerInfo:    entities.CustomerInfo{Name: "Mario Rossi", Phone: "+39 333 1234567"},
				Items:           []entities.OrderItem{{MenuItemID: "item-1", UnitPrice: 10.0, Quantity: 1}},
				OrderType:       entities.OrderTypeDelivery,
				DeliveryAddress: &entities.DeliveryAddress{Street: "Via Garibaldi 5", City: "Milano", PostalCode: "20121"},
			},
			wantErr: "below the delivery minimum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := useCase.CreateOrder(ctx, tt.input)
			assert.Error(t, err)
			assert.Nil(t, order)
			assert.Contains(t, err.Error(), tt.wantErr)

			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderUseCase_CreateOrder_TotalMismatch(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockCustomers := new(MockCustomerRepository)
	mockSettings := new(MockSettingsRepository)

	useCase := newTestOrderUseCase(mockRepo, mockCustomers, mockSettings, nil)
	ctx := context.Background()

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)

	// Server computes 30.50 for this cart; the client claims 25.00.
	staleTotal := 25.0
	input := pickupInput()
	input.ClientTotal = &staleTotal

	order, err := useCase.CreateOrder(ctx, input)

	assert.ErrorIs(t, err, ErrTotalMismatch)
	assert.Nil(t, order)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUseCase_CreateOrder_ClientTotalWithinTolerance(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockCustomers := new(MockCustomerRepository)
	mockSettings := new(MockSettingsRepository)

	useCase := newTestOrderUseCase(mockRepo, mockCustomers, mockSettings, nil)
	ctx := context.Background()

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Order")).Return(nil)

	roundedTotal := 30.50
	input := pickupInput()
	input.ClientTotal = &roundedTotal

	order, err := useCase.CreateOrder(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	expectedOrder := &entities.Order{
		OrderID:     "test-order",
		OrderNumber: "ORD-000007",
		Status:      entities.StatusPending,
	}

	mockRepo.On("GetByID", mock.Anything, "test-order").Return(expectedOrder, nil)

	order, err := useCase.GetOrder(ctx, "test-order")

	assert.NoError(t, err)
	assert.Equal(t, expectedOrder, order)
	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_GetOrder_NotFound(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	mockRepo.On("GetByID", mock.Anything, "non-existent").Return((*entities.Order)(nil), repositories.ErrOrderNotFound)

	order, err := useCase.GetOrder(ctx, "non-existent")

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "order not found")
	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_ListOrders_Defaults(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	expected := repositories.ListOrdersQuery{Status: "all", Page: 1, Limit: 20}
	mockRepo.On("List", mock.Anything, expected).Return([]*entities.Order{}, int64(0), nil)

	_, total, err := useCase.ListOrders(ctx, repositories.ListOrdersQuery{Status: "all"})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_ListOrders_InvalidStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	_, _, err := useCase.ListOrders(ctx, repositories.ListOrdersQuery{Status: "teleported"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestOrderUseCase_UpdateOrder_ReadyStampsTimestamp(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	status := entities.StatusReady
	updated := &entities.Order{OrderID: "test-order", Status: entities.StatusReady}

	mockRepo.On("Update", mock.Anything, "test-order", mock.AnythingOfType("repositories.OrderUpdate")).
		Return(nil).
		Run(func(args mock.Arguments) {
			update := args.Get(2).(repositories.OrderUpdate)
			assert.Equal(t, entities.StatusReady, *update.Status)
			assert.NotNil(t, update.ActualReadyAt)
			assert.Nil(t, update.DeliveredAt)
		})
	mockRepo.On("GetByID", mock.Anything, "test-order").Return(updated, nil)

	order, err := useCase.UpdateOrder(ctx, "test-order", UpdateOrderInput{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, entities.StatusReady, order.Status)
	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_UpdateOrder_DeliveredStampsTimestamp(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	status := entities.StatusDelivered
	updated := &entities.Order{OrderID: "test-order", Status: entities.StatusDelivered}

	mockRepo.On("Update", mock.Anything, "test-order", mock.AnythingOfType("repositories.OrderUpdate")).
		Return(nil).
		Run(func(args mock.Arguments) {
			update := args.Get(2).(repositories.OrderUpdate)
			assert.NotNil(t, update.DeliveredAt)
			assert.Nil(t, update.ActualReadyAt)
		})
	mockRepo.On("GetByID", mock.Anything, "test-order").Return(updated, nil)

	order, err := useCase.UpdateOrder(ctx, "test-order", UpdateOrderInput{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, entities.StatusDelivered, order.Status)
	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_UpdateOrder_InvalidStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	status := "INVALID_STATUS"
	_, err := useCase.UpdateOrder(ctx, "test-order", UpdateOrderInput{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUseCase_UpdateOrder_InvalidPaymentStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	payment := "iou"
	_, err := useCase.UpdateOrder(ctx, "test-order", UpdateOrderInput{PaymentStatus: &payment})

	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUseCase_UpdateOrder_NotFound(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	useCase := newTestOrderUseCase(mockRepo, new(MockCustomerRepository), new(MockSettingsRepository), nil)
	ctx := context.Background()

	notes := "ring the bell"
	mockRepo.On("Update", mock.Anything, "non-existent", mock.AnythingOfType("repositories.OrderUpdate")).
		Return(repositories.ErrOrderNotFound)

	_, err := useCase.UpdateOrder(ctx, "non-existent", UpdateOrderInput{Notes: &notes})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order not found")
	mockRepo.AssertExpectations(t)
}
