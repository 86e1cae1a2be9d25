package usecases

import (
	"context"

	"github.com/google/uuid"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/domain/repositories"
)

// MealUsecase handles catalog management
type MealUsecase struct {
	mealRepo repositories.MealRepository
}

// NewMealUsecase creates a new meal usecase
func NewMealUsecase(mealRepo repositories.MealRepository) *MealUsecase {
	return &MealUsecase{mealRepo: mealRepo}
}

// Create adds a meal to the catalog. A zero price is legal: subsidized
// items are given away for free.
func (u *MealUsecase) Create(ctx context.Context, input *entities.CreateMealInput) (*entities.Meal, error) {
	if input.Name == "" || input.Price < 0 {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.Cost < 0 {
		return nil, domainerrors.ErrInvalidInput
	}

	meal := &entities.Meal{
		ID:            uuid.New(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Cost:          input.Cost,
		Category:      input.Category,
		Nutrition:     input.Nutrition,
		IsAvailable:   true,
		AvailableDays: input.AvailableDays,
		ImageURL:      input.ImageURL,
	}
	if err := u.mealRepo.Create(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// GetByID fetches a single meal.
func (u *MealUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Meal, error) {
	return u.mealRepo.GetByID(ctx, id)
}

// List returns a catalog page. Students see only available meals; staff
// may pass onlyAvailable=false to include hidden ones.
func (u *MealUsecase) List(ctx context.Context, onlyAvailable bool, category *entities.MealCategory, limit, offset int) ([]*entities.Meal, int64, error) {
	return u.mealRepo.List(ctx, onlyAvailable, category, limit, offset)
}

// Update applies the non-nil fields of input to a meal.
func (u *MealUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMealInput) (*entities.Meal, error) {
	meal, err := u.mealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrInvalidInput
		}
		meal.Name = *input.Name
	}
	if input.Description != nil {
		meal.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrInvalidInput
		}
		meal.Price = *input.Price
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			return nil, domainerrors.ErrInvalidInput
		}
		meal.Cost = *input.Cost
	}
	if input.Category != nil {
		meal.Category = *input.Category
	}
	if input.Nutrition != nil {
		meal.Nutrition = *input.Nutrition
	}
	if input.IsAvailable != nil {
		meal.IsAvailable = *input.IsAvailable
	}
	if input.AvailableDays != nil {
		meal.AvailableDays = *input.AvailableDays
	}
	if input.ImageURL != nil {
		meal.ImageURL = *input.ImageURL
	}

	if err := u.mealRepo.Update(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete soft-deletes a meal. Existing orders keep their snapshots.
func (u *MealUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.mealRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return u.mealRepo.SoftDelete(ctx, id)
}
