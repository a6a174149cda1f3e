package usecase

import (
	"context"
	"testing"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSettingsUseCase_GetSettings_SeedsDefaults(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	useCase := NewSettingsUseCase(mockSettings, logger.NewLogger())
	ctx := context.Background()

	mockSettings.On("Get", mock.Anything).Return((*entities.RestaurantSettings)(nil), repositories.ErrSettingsNotFound)
	mockSettings.On("Upsert", mock.Anything, mock.AnythingOfType("*entities.RestaurantSettings")).Return(nil)

	settings, err := useCase.GetSettings(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "Pizzeria Mirti", settings.Restaurant.Name)
	assert.InDelta(t, 0.22, settings.Payment.TaxRate, 0.001)
	assert.InDelta(t, 3.5, settings.Delivery.Fee, 0.001)
	assert.InDelta(t, 30.0, settings.Delivery.FreeDeliveryThreshold, 0.001)
	assert.InDelta(t, 15.0, settings.Delivery.MinimumOrder, 0.001)
	assert.False(t, settings.UpdatedAt.IsZero())

	mockSettings.AssertExpectations(t)
}

func TestSettingsUseCase_GetSettings_Existing(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	useCase := NewSettingsUseCase(mockSettings, logger.NewLogger())
	ctx := context.Background()

	existing := entities.DefaultSettings()
	existing.Restaurant.Name = "Trattoria Da Pino"
	mockSettings.On("Get", mock.Anything).Return(existing, nil)

	settings, err := useCase.GetSettings(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "Trattoria Da Pino", settings.Restaurant.Name)
	mockSettings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSettingsUseCase_UpdateSettings_InvalidTaxRate(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	useCase := NewSettingsUseCase(mockSettings, logger.NewLogger())
	ctx := context.Background()

	settings := entities.DefaultSettings()
	settings.Payment.TaxRate = 1.5

	_, err := useCase.UpdateSettings(ctx, settings)

	assert.ErrorIs(t, err, ErrInvalidTaxRate)
	mockSettings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSettingsUseCase_Pricing(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	useCase := NewSettingsUseCase(mockSettings, logger.NewLogger())
	ctx := context.Background()

	mockSettings.On("Get", mock.Anything).Return(entities.DefaultSettings(), nil)

	pricing, err := useCase.Pricing(ctx)

	assert.NoError(t, err)
	assert.InDelta(t, 0.22, pricing.TaxRate, 0.001)
	assert.InDelta(t, 3.5, pricing.DeliveryFee, 0.001)
	assert.InDelta(t, 30.0, pricing.FreeDeliveryThreshold, 0.001)
}
