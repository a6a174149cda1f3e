package repositories

import (
	"context"

	"pizzeria-backend/internal/domain/entities"
)

type SpecialRepository interface {
	Create(ctx context.Context, special *entities.Special) error
	GetByID(ctx context.Context, id string) (*entities.Special, error)
	List(ctx context.Context) ([]*entities.Special, error)
	Update(ctx context.Context, special *entities.Special) error
	Delete(ctx context.Context, id string) error
}

var ErrSpecialNotFound = &RepositoryError{"special not found"}
