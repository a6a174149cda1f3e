package repositories

import (
	"context"

	"pizzeria-backend/internal/domain/entities"
)

type ListMenuQuery struct {
	Category      string
	Search        string
	OnlyAvailable bool
	Page          int
	Limit         int
}

type MenuRepository interface {
	Create(ctx context.Context, item *entities.MenuItem) error
	GetByID(ctx context.Context, id string) (*entities.MenuItem, error)
	List(ctx context.Context, query ListMenuQuery) ([]*entities.MenuItem, int64, error)
	ListAll(ctx context.Context) ([]*entities.MenuItem, error)
	Update(ctx context.Context, item *entities.MenuItem) error
	Delete(ctx context.Context, id string) error
}

var ErrMenuItemNotFound = &RepositoryError{"menu item not found"}
