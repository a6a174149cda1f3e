package entities

import "time"

type MenuItem struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           float64          `json:"price"`
	Category        string           `json:"category"`
	Image           string           `json:"image"`
	Available       bool             `json:"available"`
	Popular         bool             `json:"popular"`
	Ingredients     []string         `json:"ingredients,omitempty"`
	Allergens       []string         `json:"allergens,omitempty"`
	NutritionalInfo *NutritionalInfo `json:"nutritional_info,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type NutritionalInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}
