package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"pizzeria-backend/internal/cart"
	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"

	"github.com/google/uuid"
)

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *entities.Order) error
	Close()
}

type CreateOrderInput struct {
	CustomerID       string                    `json:"customer_id,omitempty"`
	CustomerInfo     entities.CustomerInfo     `json:"customer_info"`
	Items            []entities.OrderItem      `json:"items"`
	OrderType        string                    `json:"order_type"`
	DeliveryAddress  *entities.DeliveryAddress `json:"delivery_address,omitempty"`
	PaymentMethod    string                    `json:"payment_method,omitempty"`
	Notes            string                    `json:"notes,omitempty"`
	EstimatedReadyAt *time.Time                `json:"estimated_ready_at,omitempty"`
	// ClientTotal is the total the storefront displayed at checkout. When
	// set, it must match the server-side computation within a cent.
	ClientTotal *float64 `json:"client_total,omitempty"`
}

type UpdateOrderInput struct {
	Status           *string    `json:"status,omitempty"`
	PaymentStatus    *string    `json:"payment_status,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	EstimatedReadyAt *time.Time `json:"estimated_ready_at,omitempty"`
}

type OrderUseCase struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	settingsRepo repositories.SettingsRepository
	publisher    EventPublisher
	logger       *logger.Logger
	now          func() time.Time
}

func NewOrderUseCase(
	orderRepo repositories.OrderRepository,
	customerRepo repositories.CustomerRepository,
	settingsRepo repositories.SettingsRepository,
	publisher EventPublisher,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		publisher:    publisher,
		logger:       log,
		now:          time.Now,
	}
}

// CreateOrder validates the checkout payload, prices it against the current
// restaurant settings, persists the order and publishes an order.created
// event. Monetary fields are always computed server-side; a client total
// that drifts from the computation is rejected rather than trusted.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*entities.Order, error) {
	if input.CustomerInfo.Name == "" || input.CustomerInfo.Phone == "" {
		return nil, ErrMissingCustomerInfo
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if !entities.ValidOrderType(input.OrderType) {
		return nil, ErrInvalidOrderType
	}
	if input.OrderType == entities.OrderTypeDelivery && input.DeliveryAddress == nil {
		return nil, ErrMissingDeliveryAddress
	}

	subtotal := 0.0
	for i, item := range input.Items {
		if item.MenuItemID == "" {
			return nil, fmt.Errorf("%w: item %d has no menu item id", ErrInvalidItem, i)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d has invalid quantity", ErrInvalidItem, i)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: item %d has invalid price", ErrInvalidItem, i)
		}
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant settings: %w", err)
	}

	if input.OrderType == entities.OrderTypeDelivery && subtotal < settings.Delivery.MinimumOrder {
		return nil, fmt.Errorf("%w: minimum is %s", ErrBelowMinimumOrder, cart.FormatPrice(settings.Delivery.MinimumOrder))
	}

	tax := subtotal * settings.Payment.TaxRate
	deliveryFee := 0.0
	if input.OrderType == entities.OrderTypeDelivery && subtotal < settings.Delivery.FreeDeliveryThreshold {
		deliveryFee = settings.Delivery.Fee
	}
	total := subtotal + tax + deliveryFee

	if input.ClientTotal != nil && math.Abs(*input.ClientTotal-total) > 0.01 {
		uc.logger.Warn("Checkout total mismatch",
			"client_total", *input.ClientTotal,
			"server_total", total)
		return nil, ErrTotalMismatch
	}

	count, err := uc.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	// Guest checkouts that carry a known email get linked to the existing
	// customer profile.
	customerID := input.CustomerID
	if customerID == "" && input.CustomerInfo.Email != "" {
		if customer, err := uc.customerRepo.GetByEmail(ctx, input.CustomerInfo.Email); err == nil {
			customerID = customer.ID
		}
	}

	now := uc.now()
	order := &entities.Order{
		OrderID:          uuid.New().String(),
		OrderNumber:      fmt.Sprintf("ORD-%06d", count+1),
		CustomerID:       customerID,
		CustomerInfo:     input.CustomerInfo,
		Items:            input.Items,
		Subtotal:         subtotal,
		Tax:              tax,
		DeliveryFee:      deliveryFee,
		Total:            total,
		Status:           entities.StatusPending,
		OrderType:        input.OrderType,
		DeliveryAddress:  input.DeliveryAddress,
		PaymentStatus:    entities.PaymentPending,
		PaymentMethod:    input.PaymentMethod,
		Notes:            input.Notes,
		EstimatedReadyAt: input.EstimatedReadyAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if customerID != "" {
		if err := uc.customerRepo.RecordOrder(ctx, customerID, total, now); err != nil {
			// Order stands even if the stats bump fails.
			uc.logger.Warn("Failed to record order on customer profile",
				"customer_id", customerID,
				"order_id", order.OrderID,
				"error", err)
		}
	}

	if uc.publisher != nil {
		go func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.publisher.PublishOrderCreated(pubCtx, order); err != nil {
				uc.logger.Warn("Failed to publish order.created event",
					"order_id", order.OrderID,
					"error", err)
			}
		}()
	}

	uc.logger.Info("Order created",
		"order_id", order.OrderID,
		"order_number", order.OrderNumber,
		"total", order.Total)
	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, query repositories.ListOrdersQuery) ([]*entities.Order, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}
	if query.Status != "" && query.Status != "all" && !entities.ValidStatus(query.Status) {
		return nil, 0, ErrInvalidStatus
	}

	orders, total, err := uc.orderRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

// UpdateOrder applies status, payment and note changes to a persisted order.
// Item list and monetary fields never change after creation. Reaching the
// ready and delivered states stamps the corresponding timestamps.
func (uc *OrderUseCase) UpdateOrder(ctx context.Context, orderID string, input UpdateOrderInput) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	update := repositories.OrderUpdate{
		PaymentStatus:    input.PaymentStatus,
		Notes:            input.Notes,
		EstimatedReadyAt: input.EstimatedReadyAt,
	}

	if input.Status != nil {
		if !entities.ValidStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		update.Status = input.Status

		now := uc.now()
		switch *input.Status {
		case entities.StatusReady:
			update.ActualReadyAt = &now
		case entities.StatusDelivered:
			update.DeliveredAt = &now
		}
	}
	if input.PaymentStatus != nil && !entities.ValidPaymentStatus(*input.PaymentStatus) {
		return nil, ErrInvalidPaymentStatus
	}

	if err := uc.orderRepo.Update(ctx, orderID, update); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated order: %w", err)
	}

	uc.logger.Info("Order updated", "order_id", orderID, "status", order.Status)
	return order, nil
}

var (
	ErrInvalidOrderID         = errors.New("invalid order ID")
	ErrEmptyItems             = errors.New("items list cannot be empty")
	ErrInvalidItem            = errors.New("invalid item")
	ErrInvalidStatus          = errors.New("invalid order status")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status")
	ErrInvalidOrderType       = errors.New("invalid order type")
	ErrMissingCustomerInfo    = errors.New("customer name and phone are required")
	ErrMissingDeliveryAddress = errors.New("delivery orders require a delivery address")
	ErrBelowMinimumOrder      = errors.New("order is below the delivery minimum")
	ErrTotalMismatch          = errors.New("checkout total does not match server computation")
)
