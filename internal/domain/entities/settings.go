package entities

import "time"

type RestaurantSettings struct {
	ID            string               `json:"id,omitempty"`
	Restaurant    RestaurantInfo       `json:"restaurant"`
	Delivery      DeliverySettings     `json:"delivery"`
	Payment       PaymentSettings      `json:"payment"`
	Notifications NotificationSettings `json:"notifications"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type RestaurantInfo struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Address     RestaurantAddress       `json:"address"`
	Contact     RestaurantContact       `json:"contact"`
	Hours       map[string]OpeningHours `json:"hours"`
}

type RestaurantAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type RestaurantContact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

type OpeningHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type DeliverySettings struct {
	Enabled               bool    `json:"enabled"`
	Radius                float64 `json:"radius"`
	MinimumOrder          float64 `json:"minimum_order"`
	Fee                   float64 `json:"fee"`
	FreeDeliveryThreshold float64 `json:"free_delivery_threshold"`
}

type PaymentSettings struct {
	AcceptCash   bool    `json:"accept_cash"`
	AcceptCard   bool    `json:"accept_card"`
	AcceptOnline bool    `json:"accept_online"`
	TaxRate      float64 `json:"tax_rate"`
}

type NotificationSettings struct {
	EmailOrders    bool `json:"email_orders"`
	SMSOrders      bool `json:"sms_orders"`
	EmailMarketing bool `json:"email_marketing"`
}

// DefaultSettings seeds the restaurant_settings collection on first read.
func DefaultSettings() *RestaurantSettings {
	return &RestaurantSettings{
		Restaurant: RestaurantInfo{
			Name:        "Pizzeria Mirti",
			Description: "Authentic Italian cuisine with fresh ingredients and traditional recipes",
			Address: RestaurantAddress{
				Street:     "Via Roma 123",
				City:       "Milano",
				PostalCode: "20121",
				Country:    "Italy",
			},
			Contact: RestaurantContact{
				Phone:   "+39 02 1234 5678",
				Email:   "info@pizzeriamirti.com",
				Website: "https://pizzeriamirti.com",
			},
			Hours: map[string]OpeningHours{
				"monday":    {Open: "11:00", Close: "23:00"},
				"tuesday":   {Open: "11:00", Close: "23:00"},
				"wednesday": {Open: "11:00", Close: "23:00"},
				"thursday":  {Open: "11:00", Close: "23:00"},
				"friday":    {Open: "11:00", Close: "24:00"},
				"saturday":  {Open: "11:00", Close: "24:00"},
				"sunday":    {Open: "12:00", Close: "22:00"},
			},
		},
		Delivery: DeliverySettings{
			Enabled:               true,
			Radius:                10,
			MinimumOrder:          15,
			Fee:                   3.5,
			FreeDeliveryThreshold: 30,
		},
		Payment: PaymentSettings{
			AcceptCash:   true,
			AcceptCard:   true,
			AcceptOnline: true,
			TaxRate:      0.22,
		},
		Notifications: NotificationSettings{
			EmailOrders:    true,
			SMSOrders:      false,
			EmailMarketing: true,
		},
	}
}
