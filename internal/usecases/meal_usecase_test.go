package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/usecases"
)

func TestMealUsecase_Create_AllowsFreeMeal(t *testing.T) {
	mealRepo := new(MockMealRepository)
	uc := usecases.NewMealUsecase(mealRepo)

	mealRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *entities.Meal) bool {
		return m.Name == "Fruit of the Day" && m.Price == 0 && m.IsAvailable
	})).Return(nil).Once()

	meal, err := uc.Create(context.Background(), &entities.CreateMealInput{
		Name:     "Fruit of the Day",
		Price:    0,
		Category: entities.MealCategorySnack,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), meal.Price)
	mealRepo.AssertExpectations(t)
}

func TestMealUsecase_Create_RejectsNegativePrice(t *testing.T) {
	mealRepo := new(MockMealRepository)
	uc := usecases.NewMealUsecase(mealRepo)

	_, err := uc.Create(context.Background(), &entities.CreateMealInput{
		Name:     "Broken",
		Price:    -100,
		Category: entities.MealCategorySnack,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	mealRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMealUsecase_Update_AllowsDroppingPriceToZero(t *testing.T) {
	mealRepo := new(MockMealRepository)
	uc := usecases.NewMealUsecase(mealRepo)

	existing := testMeal(2500)
	mealRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	mealRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *entities.Meal) bool {
		return m.Price == 0
	})).Return(nil).Once()

	free := int64(0)
	meal, err := uc.Update(context.Background(), existing.ID, &entities.UpdateMealInput{Price: &free})
	require.NoError(t, err)
	assert.Equal(t, int64(0), meal.Price)
	mealRepo.AssertExpectations(t)
}
