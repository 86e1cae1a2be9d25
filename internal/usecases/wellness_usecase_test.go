package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/usecases"
)

func paidOrder(studentID uuid.UUID) *entities.Order {
	return &entities.Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-20260315-0001",
		StudentID:     studentID,
		TotalPrice:    2500,
		TotalCalories: 650,
		TotalProteins: 32,
		TotalCarbs:    80,
		PaymentMethod: entities.PaymentMethodWallet,
		PaymentStatus: entities.PaymentStatusPaid,
		Status:        entities.OrderStatusPending,
		CreatedAt:     time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestWellnessUsecase_ApplyOrder_SkipsUncountable(t *testing.T) {
	mockWellnessRepo := new(MockWellnessRepository)
	mockOrderRepo := new(MockOrderRepository)
	uc := usecases.NewWellnessUsecase(mockWellnessRepo, mockOrderRepo)

	order := paidOrder(uuid.New())
	order.PaymentStatus = entities.PaymentStatusPending

	applied, err := uc.ApplyOrder(context.Background(), order)
	assert.NoError(t, err)
	assert.False(t, applied)
	mockOrderRepo.AssertNotCalled(t, "ClaimWellness", mock.Anything, mock.Anything)
}

func TestWellnessUsecase_ApplyOrder_AppliesOnceViaClaim(t *testing.T) {
	mockWellnessRepo := new(MockWellnessRepository)
	mockOrderRepo := new(MockOrderRepository)
	uc := usecases.NewWellnessUsecase(mockWellnessRepo, mockOrderRepo)

	studentID := uuid.New()
	order := paidOrder(studentID)
	tracking := &entities.WellnessTracking{ID: uuid.New(), UserID: studentID}

	mockOrderRepo.On("ClaimWellness", mock.Anything, order.ID).Return(true, nil).Once()
	mockWellnessRepo.On("GetOrCreate", mock.Anything, studentID, order.WellnessDay()).Return(tracking, nil).Once()
	mockWellnessRepo.On("AddOrderStats", mock.Anything, tracking.ID, entities.OrderStatsDelta{
		Calories: 650, Proteins: 32, Carbs: 80, Spent: 2500, Orders: 1,
	}).Return(nil).Once()

	applied, err := uc.ApplyOrder(context.Background(), order)
	assert.NoError(t, err)
	assert.True(t, applied)
	mockWellnessRepo.AssertExpectations(t)

	// Second caller loses the claim and is a no-op.
	mockOrderRepo.On("ClaimWellness", mock.Anything, order.ID).Return(false, nil).Once()
	applied, err = uc.ApplyOrder(context.Background(), order)
	assert.NoError(t, err)
	assert.False(t, applied)
	mockWellnessRepo.AssertNumberOfCalls(t, "AddOrderStats", 1)
}

func TestWellnessUsecase_ApplyOrder_ReleasesClaimOnFailure(t *testing.T) {
	mockWellnessRepo := new(MockWellnessRepository)
	mockOrderRepo := new(MockOrderRepository)
	uc := usecases.NewWellnessUsecase(mockWellnessRepo, mockOrderRepo)

	studentID := uuid.New()
	order := paidOrder(studentID)
	tracking := &entities.WellnessTracking{ID: uuid.New(), UserID: studentID}
	boom := errors.New("db gone")

	mockOrderRepo.On("ClaimWellness", mock.Anything, order.ID).Return(true, nil).Once()
	mockWellnessRepo.On("GetOrCreate", mock.Anything, studentID, mock.Anything).Return(tracking, nil).Once()
	mockWellnessRepo.On("AddOrderStats", mock.Anything, tracking.ID, mock.Anything).Return(boom).Once()
	mockOrderRepo.On("ReleaseWellnessClaim", mock.Anything, order.ID).Return(nil).Once()

	applied, err := uc.ApplyOrder(context.Background(), order)
	assert.ErrorIs(t, err, boom)
	assert.False(t, applied)
	mockOrderRepo.AssertExpectations(t)
}

func TestWellnessUsecase_ReverseOrder_DisabledIsNoop(t *testing.T) {
	mockWellnessRepo := new(MockWellnessRepository)
	uc := usecases.NewWellnessUsecase(mockWellnessRepo, new(MockOrderRepository))

	order := paidOrder(uuid.New())
	order.WellnessProcessed = true

	assert.NoError(t, uc.ReverseOrder(context.Background(), order, false, false))
	mockWellnessRepo.AssertNotCalled(t, "AddOrderStats", mock.Anything, mock.Anything, mock.Anything)
}

func TestWellnessUsecase_ReverseOrder_SpendOnly(t *testing.T) {
	mockWellnessRepo := new(MockWellnessRepository)
	uc := usecases.NewWellnessUsecase(mockWellnessRepo, new(MockOrderRepository))

	studentID := uuid.New()
	order := paidOrder(studentID)
	order.WellnessProcessed = true
	tracking := &entities.WellnessTracking{ID: uuid.New(), UserID: studentID}

	mockWellnessRepo.On("GetByUserAndDate", mock.Anything, studentID, mock.Anything).Return(tracking, nil).Once()
	// Only spend is reversed; the order counter stays untouched.
	mockWellnessRepo.On("AddOrderStats", mock.Anything, tracking.ID, entities.OrderStatsDelta{
		Spent: -2500,
	}).Return(nil).Once()

	assert.NoError(t, uc.ReverseOrder(context.Background(), order, true, false))
	mockWellnessRepo.AssertExpectations(t)
}

func TestWellnessUsecase_ReverseOrder_SkipsUnprocessedOrder(t *testing.T) {
	mockWellnessRepo := new(MockWellnessRepository)
	uc := usecases.NewWellnessUsecase(mockWellnessRepo, new(MockOrderRepository))

	order := paidOrder(uuid.New())
	order.WellnessProcessed = false

	assert.NoError(t, uc.ReverseOrder(context.Background(), order, true, true))
	mockWellnessRepo.AssertNotCalled(t, "GetByUserAndDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestWellnessUsecase_MonthlyStats_RejectsBadMonth(t *testing.T) {
	uc := usecases.NewWellnessUsecase(new(MockWellnessRepository), new(MockOrderRepository))

	_, err := uc.MonthlyStats(context.Background(), uuid.New(), 2026, time.Month(13))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestWellnessUsecase_UpdateDailyGoals_RejectsEmptyAndNegative(t *testing.T) {
	uc := usecases.NewWellnessUsecase(new(MockWellnessRepository), new(MockOrderRepository))

	_, err := uc.UpdateDailyGoals(context.Background(), uuid.New(), &entities.UpdateDailyGoalsInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	negative := -1.0
	_, err = uc.UpdateDailyGoals(context.Background(), uuid.New(), &entities.UpdateDailyGoalsInput{CalorieGoal: &negative})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
