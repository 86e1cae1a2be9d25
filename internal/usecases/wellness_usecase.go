package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/domain/repositories"
	"campus-canteen.backend/pkg/logger"
)

// WellnessUsecase owns the per-user per-day nutrition and spend aggregate.
// ApplyOrder is the single application path shared by order creation, the
// staff status-update hook and the reconciliation sweep.
type WellnessUsecase struct {
	wellnessRepo repositories.WellnessRepository
	orderRepo    repositories.OrderRepository
}

// NewWellnessUsecase creates a new wellness usecase
func NewWellnessUsecase(wellnessRepo repositories.WellnessRepository, orderRepo repositories.OrderRepository) *WellnessUsecase {
	return &WellnessUsecase{
		wellnessRepo: wellnessRepo,
		orderRepo:    orderRepo,
	}
}

// ApplyOrder counts an order into the wellness aggregate exactly once.
// The storage-level claim on the order's wellness flag decides the winner;
// every other caller (and every rerun) is a no-op. Returns whether this
// call performed the application.
func (u *WellnessUsecase) ApplyOrder(ctx context.Context, order *entities.Order) (bool, error) {
	if order == nil || !order.Countable() {
		return false, nil
	}

	claimed, err := u.orderRepo.ClaimWellness(ctx, order.ID)
	if err != nil {
		return false, err
	}
	if !claimed {
		return false, nil
	}

	tracking, err := u.wellnessRepo.GetOrCreate(ctx, order.StudentID, order.WellnessDay())
	if err != nil {
		u.releaseClaim(ctx, order.ID)
		return false, err
	}

	delta := entities.OrderStatsDelta{
		Calories: order.TotalCalories,
		Proteins: order.TotalProteins,
		Carbs:    order.TotalCarbs,
		Spent:    order.TotalPrice,
		Orders:   1,
	}
	if err := u.wellnessRepo.AddOrderStats(ctx, tracking.ID, delta); err != nil {
		u.releaseClaim(ctx, order.ID)
		return false, err
	}
	return true, nil
}

// releaseClaim puts a failed application back into the sweep's pool.
func (u *WellnessUsecase) releaseClaim(ctx context.Context, orderID uuid.UUID) {
	if err := u.orderRepo.ReleaseWellnessClaim(ctx, orderID); err != nil {
		logger.Error(ctx, "failed to release wellness claim; order stays marked processed",
			zap.String("order_id", orderID.String()), zap.Error(err))
	}
}

// ReverseOrder undoes a cancelled order's wellness contribution according
// to the configured reversal switches. It only acts on orders that were
// actually counted, and never touches ordersCompletedToday.
func (u *WellnessUsecase) ReverseOrder(ctx context.Context, order *entities.Order, reverseSpend, reverseNutrition bool) error {
	if order == nil || !order.WellnessProcessed || (!reverseSpend && !reverseNutrition) {
		return nil
	}

	tracking, err := u.wellnessRepo.GetByUserAndDate(ctx, order.StudentID, order.WellnessDay())
	if err != nil {
		return err
	}

	delta := entities.OrderStatsDelta{}
	if reverseSpend {
		delta.Spent = -order.TotalPrice
	}
	if reverseNutrition {
		delta.Calories = -order.TotalCalories
		delta.Proteins = -order.TotalProteins
		delta.Carbs = -order.TotalCarbs
	}
	return u.wellnessRepo.AddOrderStats(ctx, tracking.ID, delta)
}

// TrackingForDay returns the record for (user, day) together with the
// month's aggregated stats, creating the day record when absent.
func (u *WellnessUsecase) TrackingForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*entities.WellnessTracking, *entities.MonthlyStats, error) {
	tracking, err := u.wellnessRepo.GetOrCreate(ctx, userID, day)
	if err != nil {
		return nil, nil, err
	}
	monthly, err := u.wellnessRepo.MonthlyStats(ctx, userID, tracking.Year, time.Month(tracking.Month))
	if err != nil {
		return nil, nil, err
	}
	return tracking, monthly, nil
}

// MonthlyStats aggregates a user's day records for one month.
func (u *WellnessUsecase) MonthlyStats(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entities.MonthlyStats, error) {
	if month < time.January || month > time.December {
		return nil, domainerrors.ErrInvalidInput
	}
	return u.wellnessRepo.MonthlyStats(ctx, userID, year, month)
}

// UpdateDailyGoals sets today's goal fields for a user.
func (u *WellnessUsecase) UpdateDailyGoals(ctx context.Context, userID uuid.UUID, input *entities.UpdateDailyGoalsInput) (*entities.WellnessTracking, error) {
	if input.CalorieGoal == nil && input.ProteinGoal == nil && input.SpendGoal == nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if (input.CalorieGoal != nil && *input.CalorieGoal < 0) ||
		(input.ProteinGoal != nil && *input.ProteinGoal < 0) ||
		(input.SpendGoal != nil && *input.SpendGoal < 0) {
		return nil, domainerrors.ErrInvalidInput
	}

	tracking, err := u.wellnessRepo.GetOrCreate(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := u.wellnessRepo.UpdateGoals(ctx, tracking.ID, input); err != nil {
		return nil, err
	}
	return u.wellnessRepo.GetByUserAndDate(ctx, userID, tracking.Date)
}
