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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := models.UserFromEntity(user)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.CreatedAt = m.CreatedAt
	return nil
}

// AddDailyIntake bumps the profile's intake counters for the given day.
// A stale intake date means a new calendar day: counters restart from this
// order's values instead of accumulating onto yesterday's.
func (r *UserRepository) AddDailyIntake(ctx context.Context, userID uuid.UUID, day time.Time, calories, proteins, carbs float64) error {
	day = entities.DayStart(day)
	db := GetDB(ctx, r.db)
	now := time.Now()

	// Fresh-day reset first, as its own conditional update.
	if err := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND (intake_date IS NULL OR intake_date < ?)", userID, day).
		Updates(map[string]interface{}{
			"daily_calories": 0,
			"daily_proteins": 0,
			"daily_carbs":    0,
			"intake_date":    day,
			"updated_at":     now,
		}).Error; err != nil {
		return err
	}

	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"daily_calories": gorm.Expr("daily_calories + ?", calories),
			"daily_proteins": gorm.Expr("daily_proteins + ?", proteins),
			"daily_carbs":    gorm.Expr("daily_carbs + ?", carbs),
			"updated_at":     now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
