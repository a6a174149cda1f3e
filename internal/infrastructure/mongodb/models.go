package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizzeria-backend/internal/domain/entities"
)

type OrderDocument struct {
	ID               primitive.ObjectID       `bson:"_id,omitempty"`
	OrderID          string                   `bson:"order_id"`
	OrderNumber      string                   `bson:"order_number"`
	CustomerID       string                   `bson:"customer_id,omitempty"`
	CustomerInfo     CustomerInfoDocument     `bson:"customer_info"`
	Items            []OrderItemDocument      `bson:"items"`
	Subtotal         float64                  `bson:"subtotal"`
	Tax              float64                  `bson:"tax"`
	DeliveryFee      float64                  `bson:"delivery_fee"`
	Total            float64                  `bson:"total"`
	Status           string                   `bson:"status"`
	OrderType        string                   `bson:"order_type"`
	DeliveryAddress  *DeliveryAddressDocument `bson:"delivery_address,omitempty"`
	PaymentStatus    string                   `bson:"payment_status"`
	PaymentMethod    string                   `bson:"payment_method,omitempty"`
	Notes            string                   `bson:"notes,omitempty"`
	EstimatedReadyAt *time.Time               `bson:"estimated_ready_at,omitempty"`
	ActualReadyAt    *time.Time               `bson:"actual_ready_at,omitempty"`
	DeliveredAt      *time.Time               `bson:"delivered_at,omitempty"`
	CreatedAt        time.Time                `bson:"created_at"`
	UpdatedAt        time.Time                `bson:"updated_at"`
}

type OrderItemDocument struct {
	MenuItemID          string  `bson:"menu_item_id"`
	Name                string  `bson:"name"`
	UnitPrice           float64 `bson:"unit_price"`
	Quantity            int     `bson:"quantity"`
	SpecialInstructions string  `bson:"special_instructions,omitempty"`
}

type CustomerInfoDocument struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
	Phone string `bson:"phone"`
}

type DeliveryAddressDocument struct {
	Street       string `bson:"street"`
	City         string `bson:"city"`
	PostalCode   string `bson:"postal_code"`
	Instructions string `bson:"instructions,omitempty"`
}

type MenuItemDocument struct {
	ID              primitive.ObjectID       `bson:"_id,omitempty"`
	ItemID          string                   `bson:"item_id"`
	Name            string                   `bson:"name"`
	Description     string                   `bson:"description"`
	Price           float64                  `bson:"price"`
	Category        string                   `bson:"category"`
	Image           string                   `bson:"image"`
	Available       bool                     `bson:"available"`
	Popular         bool                     `bson:"popular"`
	Ingredients     []string                 `bson:"ingredients,omitempty"`
	Allergens       []string                 `bson:"allergens,omitempty"`
	NutritionalInfo *NutritionalInfoDocument `bson:"nutritional_info,omitempty"`
	CreatedAt       time.Time                `bson:"created_at"`
	UpdatedAt       time.Time                `bson:"updated_at"`
}

type NutritionalInfoDocument struct {
	Calories int `bson:"calories"`
	Protein  int `bson:"protein"`
	Carbs    int `bson:"carbs"`
	Fat      int `bson:"fat"`
}

type CustomerDocument struct {
	ID            primitive.ObjectID           `bson:"_id,omitempty"`
	CustomerID    string                       `bson:"customer_id"`
	Name          string                       `bson:"name"`
	Email         string                       `bson:"email"`
	Phone         string                       `bson:"phone"`
	Addresses     []CustomerAddressDocument    `bson:"addresses"`
	Preferences   CustomerPreferencesDocument  `bson:"preferences"`
	TotalOrders   int                          `bson:"total_orders"`
	TotalSpent    float64                      `bson:"total_spent"`
	LoyaltyPoints int                          `bson:"loyalty_points"`
	CreatedAt     time.Time                    `bson:"created_at"`
	LastOrderAt   *time.Time                   `bson:"last_order_at,omitempty"`
}

type CustomerAddressDocument struct {
	AddressID  string `bson:"address_id"`
	Label      string `bson:"label"`
	Street     string `bson:"street"`
	City       string `bson:"city"`
	PostalCode string `bson:"postal_code"`
	IsDefault  bool   `bson:"is_default"`
}

type CustomerPreferencesDocument struct {
	FavoriteItems       []string `bson:"favorite_items"`
	DietaryRestrictions []string `bson:"dietary_restrictions"`
	Allergies           []string `bson:"allergies"`
}

type SettingsDocument struct {
	ID            primitive.ObjectID            `bson:"_id,omitempty"`
	Restaurant    entities.RestaurantInfo       `bson:"restaurant"`
	Delivery      entities.DeliverySettings     `bson:"delivery"`
	Payment       entities.PaymentSettings      `bson:"payment"`
	Notifications entities.NotificationSettings `bson:"notifications"`
	UpdatedAt     time.Time                     `bson:"updated_at"`
}

type SpecialDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	SpecialID     string             `bson:"special_id"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	Price         float64            `bson:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty"`
	Day           string             `bson:"day,omitempty"`
	Image         string             `bson:"image,omitempty"`
	Available     bool               `bson:"available"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toOrderDocument(order *entities.Order) *OrderDocument {
	doc := &OrderDocument{
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		CustomerInfo: CustomerInfoDocument{
			Name:  order.CustomerInfo.Name,
			Email: order.CustomerInfo.Email,
			Phone: order.CustomerInfo.Phone,
		},
		Items:            make([]OrderItemDocument, len(order.Items)),
		Subtotal:         order.Subtotal,
		Tax:              order.Tax,
		DeliveryFee:      order.DeliveryFee,
		Total:            order.Total,
		Status:           order.Status,
		OrderType:        order.OrderType,
		PaymentStatus:    order.PaymentStatus,
		PaymentMethod:    order.PaymentMethod,
		Notes:            order.Notes,
		EstimatedReadyAt: order.EstimatedReadyAt,
		ActualReadyAt:    order.ActualReadyAt,
		DeliveredAt:      order.DeliveredAt,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}

	for i, item := range order.Items {
		doc.Items[i] = OrderItemDocument{
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			UnitPrice:           item.UnitPrice,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	if order.DeliveryAddress != nil {
		doc.DeliveryAddress = &DeliveryAddressDocument{
			Street:       order.DeliveryAddress.Street,
			City:         order.DeliveryAddress.City,
			PostalCode:   order.DeliveryAddress.PostalCode,
			Instructions: order.DeliveryAddress.Instructions,
		}
	}

	return doc
}

func toOrderEntity(doc *OrderDocument) *entities.Order {
	items := make([]entities.OrderItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = entities.OrderItem{
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			UnitPrice:           item.UnitPrice,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	order := &entities.Order{
		OrderID:     doc.OrderID,
		OrderNumber: doc.OrderNumber,
		CustomerID:  doc.CustomerID,
		CustomerInfo: entities.CustomerInfo{
			Name:  doc.CustomerInfo.Name,
			Email: doc.CustomerInfo.Email,
			Phone: doc.CustomerInfo.Phone,
		},
		Items:            items,
		Subtotal:         doc.Subtotal,
		Tax:              doc.Tax,
		DeliveryFee:      doc.DeliveryFee,
		Total:            doc.Total,
		Status:           doc.Status,
		OrderType:        doc.OrderType,
		PaymentStatus:    doc.PaymentStatus,
		PaymentMethod:    doc.PaymentMethod,
		Notes:            doc.Notes,
		EstimatedReadyAt: doc.EstimatedReadyAt,
		ActualReadyAt:    doc.ActualReadyAt,
		DeliveredAt:      doc.DeliveredAt,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}

	if doc.DeliveryAddress != nil {
		order.DeliveryAddress = &entities.DeliveryAddress{
			Street:       doc.DeliveryAddress.Street,
			City:         doc.DeliveryAddress.City,
			PostalCode:   doc.DeliveryAddress.PostalCode,
			Instructions: doc.DeliveryAddress.Instructions,
		}
	}

	return order
}

func toMenuItemDocument(item *entities.MenuItem) *MenuItemDocument {
	doc := &MenuItemDocument{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Image:       item.Image,
		Available:   item.Available,
		Popular:     item.Popular,
		Ingredients: item.Ingredients,
		Allergens:   item.Allergens,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.NutritionalInfo != nil {
		doc.NutritionalInfo = &NutritionalInfoDocument{
			Calories: item.NutritionalInfo.Calories,
			Protein:  item.NutritionalInfo.Protein,
			Carbs:    item.NutritionalInfo.Carbs,
			Fat:      item.NutritionalInfo.Fat,
		}
	}
	return doc
}

func toMenuItemEntity(doc *MenuItemDocument) *entities.MenuItem {
	item := &entities.MenuItem{
		ID:          doc.ItemID,
		Name:        doc.Name,
		Description: doc.Description,
		Price:       doc.Price,
		Category:    doc.Category,
		Image:       doc.Image,
		Available:   doc.Available,
		Popular:     doc.Popular,
		Ingredients: doc.Ingredients,
		Allergens:   doc.Allergens,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	if doc.NutritionalInfo != nil {
		item.NutritionalInfo = &entities.NutritionalInfo{
			Calories: doc.NutritionalInfo.Calories,
			Protein:  doc.NutritionalInfo.Protein,
			Carbs:    doc.NutritionalInfo.Carbs,
			Fat:      doc.NutritionalInfo.Fat,
		}
	}
	return item
}

func toCustomerDocument(customer *entities.Customer) *CustomerDocument {
	doc := &CustomerDocument{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Addresses:  make([]CustomerAddressDocument, len(customer.Addresses)),
		Preferences: CustomerPreferencesDocument{
			FavoriteItems:       customer.Preferences.FavoriteItems,
			DietaryRestrictions: customer.Preferences.DietaryRestrictions,
			Allergies:           customer.Preferences.Allergies,
		},
		TotalOrders:   customer.TotalOrders,
		TotalSpent:    customer.TotalSpent,
		LoyaltyPoints: customer.LoyaltyPoints,
		CreatedAt:     customer.CreatedAt,
		LastOrderAt:   customer.LastOrderAt,
	}
	for i, addr := range customer.Addresses {
		doc.Addresses[i] = CustomerAddressDocument{
			AddressID:  addr.ID,
			Label:      addr.Label,
			Street:     addr.Street,
			City:       addr.City,
			PostalCode: addr.PostalCode,
			IsDefault:  addr.IsDefault,
		}
	}
	return doc
}

func toCustomerEntity(doc *CustomerDocument) *entities.Customer {
	customer := &entities.Customer{
		ID:        doc.CustomerID,
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		Addresses: make([]entities.CustomerAddress, len(doc.Addresses)),
		Preferences: entities.CustomerPreferences{
			FavoriteItems:       doc.Preferences.FavoriteItems,
			DietaryRestrictions: doc.Preferences.DietaryRestrictions,
			Allergies:           doc.Preferences.Allergies,
		},
		TotalOrders:   doc.TotalOrders,
		TotalSpent:    doc.TotalSpent,
		LoyaltyPoints: doc.LoyaltyPoints,
		CreatedAt:     doc.CreatedAt,
		LastOrderAt:   doc.LastOrderAt,
	}
	for i, addr := range doc.Addresses {
		customer.Addresses[i] = entities.CustomerAddress{
			ID:         addr.AddressID,
			Label:      addr.Label,
			Street:     addr.Street,
			City:       addr.City,
			PostalCode: addr.PostalCode,
			IsDefault:  addr.IsDefault,
		}
	}
	return customer
}

func toSettingsDocument(settings *entities.RestaurantSettings) *SettingsDocument {
	return &SettingsDocument{
		Restaurant:    settings.Restaurant,
		Delivery:      settings.Delivery,
		Payment:       settings.Payment,
		Notifications: settings.Notifications,
		UpdatedAt:     settings.UpdatedAt,
	}
}

func toSettingsEntity(doc *SettingsDocument) *entities.RestaurantSettings {
	return &entities.RestaurantSettings{
		ID:            doc.ID.Hex(),
		Restaurant:    doc.Restaurant,
		Delivery:      doc.Delivery,
		Payment:       doc.Payment,
		Notifications: doc.Notifications,
		UpdatedAt:     doc.UpdatedAt,
	}
}

func toSpecialDocument(special *entities.Special) *SpecialDocument {
	return &SpecialDocument{
		SpecialID:     special.ID,
		Name:          special.Name,
		Description:   special.Description,
		Price:         special.Price,
		OriginalPrice: special.OriginalPrice,
		Day:           special.Day,
		Image:         special.Image,
		Available:     special.Available,
		CreatedAt:     special.CreatedAt,
		UpdatedAt:     special.UpdatedAt,
	}
}

func toSpecialEntity(doc *SpecialDocument) *entities.Special {
	return &entities.Special{
		ID:            doc.SpecialID,
		Name:          doc.Name,
		Description:   doc.Description,
		Price:         doc.Price,
		OriginalPrice: doc.OriginalPrice,
		Day:           doc.Day,
		Image:         doc.Image,
		Available:     doc.Available,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
