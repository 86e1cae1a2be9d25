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

// MealRepository implements catalog data operations
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

// Create creates a new meal
func (r *MealRepository) Create(ctx context.Context, meal *entities.Meal) error {
	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	m := models.MealFromEntity(meal)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	meal.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a meal by ID
func (r *MealRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Meal, error) {
	var m models.Meal
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List lists meals with optional availability and category filters.
func (r *MealRepository) List(ctx context.Context, onlyAvailable bool, category *entities.MealCategory, limit, offset int) ([]*entities.Meal, int64, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Model(&models.Meal{})
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}
	if category != nil {
		q = q.Where("category = ?", string(*category))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Meal
	if err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	meals := make([]*entities.Meal, 0, len(ms))
	for i := range ms {
		meals = append(meals, ms[i].ToEntity())
	}
	return meals, total, nil
}

// Update saves the full meal record.
func (r *MealRepository) Update(ctx context.Context, meal *entities.Meal) error {
	m := models.MealFromEntity(meal)
	m.UpdatedAt = time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Meal{}).Where("id = ?", meal.ID).Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete disables a meal without losing historical order references.
func (r *MealRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementOrderCount bumps the denormalized popularity counter.
func (r *MealRepository) IncrementOrderCount(ctx context.Context, id uuid.UUID, by int64) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Meal{}).
		Where("id = ?", id).
		Update("order_count", gorm.Expr("order_count + ?", by)).Error
}
