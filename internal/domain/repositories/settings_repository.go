package repositories

import (
	"context"

	"pizzeria-backend/internal/domain/entities"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*entities.RestaurantSettings, error)
	Upsert(ctx context.Context, settings *entities.RestaurantSettings) error
}

var ErrSettingsNotFound = &RepositoryError{"restaurant settings not found"}
