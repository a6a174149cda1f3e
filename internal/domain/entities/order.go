package entities

import "time"

type Order struct {
	OrderID          string           `json:"order_id"`
	OrderNumber      string           `json:"order_number"`
	CustomerID       string           `json:"customer_id,omitempty"`
	CustomerInfo     CustomerInfo     `json:"customer_info"`
	Items            []OrderItem      `json:"items"`
	Subtotal         float64          `json:"subtotal"`
	Tax              float64          `json:"tax"`
	DeliveryFee      float64          `json:"delivery_fee"`
	Total            float64          `json:"total"`
	Status           string           `json:"status"`
	OrderType        string           `json:"order_type"`
	DeliveryAddress  *DeliveryAddress `json:"delivery_address,omitempty"`
	PaymentStatus    string           `json:"payment_status"`
	PaymentMethod    string           `json:"payment_method,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	EstimatedReadyAt *time.Time       `json:"estimated_ready_at,omitempty"`
	ActualReadyAt    *time.Time       `json:"actual_ready_at,omitempty"`
	DeliveredAt      *time.Time       `json:"delivered_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type OrderItem struct {
	MenuItemID          string  `json:"menu_item_id"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unit_price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type DeliveryAddress struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Instructions string `json:"instructions,omitempty"`
}

const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

func ValidStatus(status string) bool {
	validStatuses := map[string]bool{
		StatusPending:        true,
		StatusConfirmed:      true,
		StatusPreparing:      true,
		StatusReady:          true,
		StatusOutForDelivery: true,
		StatusDelivered:      true,
		StatusCancelled:      true,
	}
	return validStatuses[status]
}

func ValidPaymentStatus(status string) bool {
	validStatuses := map[string]bool{
		PaymentPending:  true,
		PaymentPaid:     true,
		PaymentFailed:   true,
		PaymentRefunded: true,
	}
	return validStatuses[status]
}

func ValidOrderType(orderType string) bool {
	return orderType == OrderTypePickup || orderType == OrderTypeDelivery
}
