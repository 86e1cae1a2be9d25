package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/infrastructure/models"
)

// WellnessRepository implements the per-user per-day wellness aggregate
type WellnessRepository struct {
	db *gorm.DB
}

// NewWellnessRepository creates a new wellness repository
func NewWellnessRepository(db *gorm.DB) *WellnessRepository {
	return &WellnessRepository{db: db}
}

// GetOrCreate finds the record for (user, day), creating a zeroed one when
// absent. Two concurrent creators race on the unique (user, date) index;
// the loser falls back to re-reading the winner's record.
func (r *WellnessRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, day time.Time) (*entities.WellnessTracking, error) {
	day = entities.DayStart(day)

	existing, err := r.GetByUserAndDate(ctx, userID, day)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	m := &models.WellnessTracking{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Day:    day.Day(),
		Month:  int(day.Month()),
		Year:   day.Year(),
	}
	db := GetDB(ctx, r.db)
	if createErr := db.WithContext(ctx).Create(m).Error; createErr != nil {
		// Duplicate-create race: another request inserted the same day first.
		if existing, readErr := r.GetByUserAndDate(ctx, userID, day); readErr == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return m.ToEntity(), nil
}

// GetByUserAndDate gets the record for (user, day)
func (r *WellnessRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, day time.Time) (*entities.WellnessTracking, error) {
	day = entities.DayStart(day)
	var m models.WellnessTracking
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, day).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// AddOrderStats bumps every accumulator and the order counter in a single
// atomic update. Never read-modify-write: concurrent callers for the same
// user+day must both land.
func (r *WellnessRepository) AddOrderStats(ctx context.Context, trackingID uuid.UUID, delta entities.OrderStatsDelta) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.WellnessTracking{}).
		Where("id = ?", trackingID).
		Updates(map[string]interface{}{
			"daily_calories":         gorm.Expr("daily_calories + ?", delta.Calories),
			"daily_proteins":         gorm.Expr("daily_proteins + ?", delta.Proteins),
			"daily_carbs":            gorm.Expr("daily_carbs + ?", delta.Carbs),
			"daily_spent":            gorm.Expr("daily_spent + ?", delta.Spent),
			"orders_completed_today": gorm.Expr("orders_completed_today + ?", delta.Orders),
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MonthlyStats aggregates a user's day records for one month at read time.
// Monthly totals are never stored; this query is the single source of truth.
func (r *WellnessRepository) MonthlyStats(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entities.MonthlyStats, error) {
	db := GetDB(ctx, r.db)

	type row struct {
		TotalCalories   float64
		TotalProteins   float64
		TotalSpent      int64
		OrdersCompleted int
		DaysTracked     int
	}
	var agg row
	err := db.WithContext(ctx).Model(&models.WellnessTracking{}).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, int(month)).
		Select(`COALESCE(SUM(daily_calories), 0) AS total_calories,
			COALESCE(SUM(daily_proteins), 0) AS total_proteins,
			COALESCE(SUM(daily_spent), 0) AS total_spent,
			COALESCE(SUM(orders_completed_today), 0) AS orders_completed,
			COUNT(*) AS days_tracked`).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	return &entities.MonthlyStats{
		Year:            year,
		Month:           int(month),
		TotalCalories:   agg.TotalCalories,
		TotalProteins:   agg.TotalProteins,
		TotalSpent:      agg.TotalSpent,
		OrdersCompleted: agg.OrdersCompleted,
		DaysTracked:     agg.DaysTracked,
	}, nil
}

// UpdateGoals sets the daily goal fields that are present in the input.
func (r *WellnessRepository) UpdateGoals(ctx context.Context, trackingID uuid.UUID, input *entities.UpdateDailyGoalsInput) error {
	update := map[string]interface{}{"updated_at": time.Now()}
	if input.CalorieGoal != nil {
		update["calorie_goal"] = *input.CalorieGoal
	}
	if input.ProteinGoal != nil {
		update["protein_goal"] = *input.ProteinGoal
	}
	if input.SpendGoal != nil {
		update["spend_goal"] = *input.SpendGoal
	}
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.WellnessTracking{}).Where("id = ?", trackingID).Updates(update)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
