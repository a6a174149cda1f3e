package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"

	"github.com/google/uuid"
)

type SpecialInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Day           string  `json:"day,omitempty"`
	Image         string  `json:"image,omitempty"`
	Available     *bool   `json:"available,omitempty"`
}

type SpecialUseCase struct {
	specialRepo repositories.SpecialRepository
	logger      *logger.Logger
	now         func() time.Time
}

func NewSpecialUseCase(specialRepo repositories.SpecialRepository, log *logger.Logger) *SpecialUseCase {
	return &SpecialUseCase{
		specialRepo: specialRepo,
		logger:      log,
		now:         time.Now,
	}
}

func (uc *SpecialUseCase) CreateSpecial(ctx context.Context, input SpecialInput) (*entities.Special, error) {
	if input.Name == "" || input.Description == "" || input.Price <= 0 {
		return nil, ErrMissingSpecialFields
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	now := uc.now()
	special := &entities.Special{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Day:           input.Day,
		Image:         input.Image,
		Available:     available,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.specialRepo.Create(ctx, special); err != nil {
		return nil, fmt.Errorf("failed to create special: %w", err)
	}

	uc.logger.Info("Special created", "id", special.ID, "name", special.Name)
	return special, nil
}

func (uc *SpecialUseCase) ListSpecials(ctx context.Context) ([]*entities.Special, error) {
	specials, err := uc.specialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specials: %w", err)
	}
	return specials, nil
}

func (uc *SpecialUseCase) UpdateSpecial(ctx context.Context, id string, input SpecialInput) (*entities.Special, error) {
	if id == "" {
		return nil, ErrInvalidSpecialID
	}

	special, err := uc.specialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get special: %w", err)
	}

	if input.Name != "" {
		special.Name = input.Name
	}
	if input.Description != "" {
		special.Description = input.Description
	}
	if input.Price > 0 {
		special.Price = input.Price
	}
	if input.OriginalPrice > 0 {
		special.OriginalPrice = input.OriginalPrice
	}
	special.Day = input.Day
	if input.Image != "" {
		special.Image = input.Image
	}
	if input.Available != nil {
		special.Available = *input.Available
	}
	special.UpdatedAt = uc.now()

	if err := uc.specialRepo.Update(ctx, special); err != nil {
		return nil, fmt.Errorf("failed to update special: %w", err)
	}

	uc.logger.Info("Special updated", "id", id)
	return special, nil
}

func (uc *SpecialUseCase) DeleteSpecial(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidSpecialID
	}

	if err := uc.specialRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete special: %w", err)
	}

	uc.logger.Info("Special deleted", "id", id)
	return nil
}

var (
	ErrInvalidSpecialID     = errors.New("invalid special ID")
	ErrMissingSpecialFields = errors.New("special name, description and price are required")
)
