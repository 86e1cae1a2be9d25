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

// TimeSlotRepository implements pickup window data operations
type TimeSlotRepository struct {
	db *gorm.DB
}

// NewTimeSlotRepository creates a new time slot repository
func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

// Create creates a new time slot
func (r *TimeSlotRepository) Create(ctx context.Context, slot *entities.TimeSlot) error {
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	var day *int
	if slot.DayOfWeek != nil {
		d := int(*slot.DayOfWeek)
		day = &d
	}
	m := &models.TimeSlot{
		ID:          slot.ID,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Date:        slot.Date,
		DayOfWeek:   day,
		MaxOrders:   slot.MaxOrders,
		IsAvailable: true,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	slot.IsAvailable = true
	slot.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a time slot by ID
func (r *TimeSlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TimeSlot, error) {
	var m models.TimeSlot
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List lists time slots
func (r *TimeSlotRepository) List(ctx context.Context, onlyAvailable bool) ([]*entities.TimeSlot, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Model(&models.TimeSlot{})
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}
	var ms []models.TimeSlot
	if err := q.Order("start_time ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	slots := make([]*entities.TimeSlot, 0, len(ms))
	for i := range ms {
		slots = append(slots, ms[i].ToEntity())
	}
	return slots, nil
}

// Book takes one unit of slot capacity. The capacity check is part of the
// UPDATE's WHERE clause: a slot that filled between precondition check and
// booking yields zero affected rows, never an overbook.
func (r *TimeSlotRepository) Book(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.TimeSlot{}).
		Where("id = ? AND is_available = ? AND current_orders < max_orders", id, true).
		Updates(map[string]interface{}{
			"current_orders": gorm.Expr("current_orders + 1"),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domainerrors.ErrSlotFull
	}
	return nil
}

// Release returns one unit of slot capacity after a cancellation. The
// counter never drops below zero.
func (r *TimeSlotRepository) Release(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.TimeSlot{}).
		Where("id = ? AND current_orders > 0", id).
		Updates(map[string]interface{}{
			"current_orders": gorm.Expr("current_orders - 1"),
			"updated_at":     time.Now(),
		}).Error
}
