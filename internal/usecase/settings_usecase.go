package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria-backend/internal/cart"
	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"
)

type SettingsUseCase struct {
	settingsRepo repositories.SettingsRepository
	logger       *logger.Logger
	now          func() time.Time
}

func NewSettingsUseCase(settingsRepo repositories.SettingsRepository, log *logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       log,
		now:          time.Now,
	}
}

// GetSettings returns the restaurant settings, seeding the defaults on first
// read so the storefront always has a pricing source.
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (*entities.RestaurantSettings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repositories.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings = entities.DefaultSettings()
	settings.UpdatedAt = uc.now()
	if err := uc.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}

	uc.logger.Info("Seeded default restaurant settings")
	return settings, nil
}

func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, settings *entities.RestaurantSettings) (*entities.RestaurantSettings, error) {
	if settings.Payment.TaxRate < 0 || settings.Payment.TaxRate >= 1 {
		return nil, ErrInvalidTaxRate
	}
	if settings.Delivery.Fee < 0 || settings.Delivery.FreeDeliveryThreshold < 0 {
		return nil, ErrInvalidDeliveryConfig
	}

	settings.UpdatedAt = uc.now()
	if err := uc.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	uc.logger.Info("Restaurant settings updated")
	return settings, nil
}

// Pricing resolves the cart pricing policy from the stored settings.
func (uc *SettingsUseCase) Pricing(ctx context.Context) (cart.Pricing, error) {
	settings, err := uc.GetSettings(ctx)
	if err != nil {
		return cart.Pricing{}, err
	}
	return cart.Pricing{
		TaxRate:               settings.Payment.TaxRate,
		DeliveryFee:           settings.Delivery.Fee,
		FreeDeliveryThreshold: settings.Delivery.FreeDeliveryThreshold,
	}, nil
}

var (
	ErrInvalidTaxRate        = errors.New("tax rate must be between 0 and 1")
	ErrInvalidDeliveryConfig = errors.New("delivery fee and threshold cannot be negative")
)
