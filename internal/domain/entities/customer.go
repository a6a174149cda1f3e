package entities

import "time"

type Customer struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Addresses     []CustomerAddress   `json:"addresses"`
	Preferences   CustomerPreferences `json:"preferences"`
	TotalOrders   int                 `json:"total_orders"`
	TotalSpent    float64             `json:"total_spent"`
	LoyaltyPoints int                 `json:"loyalty_points"`
	CreatedAt     time.Time           `json:"created_at"`
	LastOrderAt   *time.Time          `json:"last_order_at,omitempty"`
}

type CustomerAddress struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	IsDefault  bool   `json:"is_default"`
}

type CustomerPreferences struct {
	FavoriteItems       []string `json:"favorite_items"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
}
