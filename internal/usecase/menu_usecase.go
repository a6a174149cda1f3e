package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"

	"github.com/google/uuid"
)

type MenuItemInput struct {
	Name            string                    `json:"name"`
	Description     string                    `json:"description"`
	Price           float64                   `json:"price"`
	Category        string                    `json:"category"`
	Image           string                    `json:"image"`
	Available       *bool                     `json:"available,omitempty"`
	Popular         bool                      `json:"popular"`
	Ingredients     []string                  `json:"ingredients,omitempty"`
	Allergens       []string                  `json:"allergens,omitempty"`
	NutritionalInfo *entities.NutritionalInfo `json:"nutritional_info,omitempty"`
}

type MenuUseCase struct {
	menuRepo repositories.MenuRepository
	logger   *logger.Logger
	now      func() time.Time
}

func NewMenuUseCase(menuRepo repositories.MenuRepository, log *logger.Logger) *MenuUseCase {
	return &MenuUseCase{
		menuRepo: menuRepo,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *MenuUseCase) CreateItem(ctx context.Context, input MenuItemInput) (*entities.MenuItem, error) {
	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	now := uc.now()
	item := &entities.MenuItem{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		Category:        input.Category,
		Image:           input.Image,
		Available:       available,
		Popular:         input.Popular,
		Ingredients:     input.Ingredients,
		Allergens:       input.Allergens,
		NutritionalInfo: input.NutritionalInfo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	uc.logger.Info("Menu item created", "id", item.ID, "name", item.Name)
	return item, nil
}

func (uc *MenuUseCase) GetItem(ctx context.Context, id string) (*entities.MenuItem, error) {
	if id == "" {
		return nil, ErrInvalidMenuItemID
	}

	item, err := uc.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (uc *MenuUseCase) ListItems(ctx context.Context, query repositories.ListMenuQuery) ([]*entities.MenuItem, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	items, total, err := uc.menuRepo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, total, nil
}

// ListCategories derives the distinct category names present on the menu.
func (uc *MenuUseCase) ListCategories(ctx context.Context) ([]string, error) {
	items, err := uc.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, item := range items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (uc *MenuUseCase) UpdateItem(ctx context.Context, id string, input MenuItemInput) (*entities.MenuItem, error) {
	if id == "" {
		return nil, ErrInvalidMenuItemID
	}
	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}

	item, err := uc.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.Category = input.Category
	item.Image = input.Image
	item.Popular = input.Popular
	item.Ingredients = input.Ingredients
	item.Allergens = input.Allergens
	item.NutritionalInfo = input.NutritionalInfo
	if input.Available != nil {
		item.Available = *input.Available
	}
	item.UpdatedAt = uc.now()

	if err := uc.menuRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	uc.logger.Info("Menu item updated", "id", id, "name", item.Name)
	return item, nil
}

func (uc *MenuUseCase) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidMenuItemID
	}

	if err := uc.menuRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	uc.logger.Info("Menu item deleted", "id", id)
	return nil
}

func validateMenuItemInput(input MenuItemInput) error {
	if input.Name == "" {
		return ErrMissingMenuItemName
	}
	if input.Price < 0 {
		return ErrInvalidMenuItemPrice
	}
	if input.Category == "" {
		return ErrMissingMenuItemCategory
	}
	return nil
}

var (
	ErrInvalidMenuItemID       = errors.New("invalid menu item ID")
	ErrMissingMenuItemName     = errors.New("menu item name is required")
	ErrInvalidMenuItemPrice    = errors.New("menu item price cannot be negative")
	ErrMissingMenuItemCategory = errors.New("menu item category is required")
)
