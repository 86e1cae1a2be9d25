package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/domain/repositories"
)

// TimeSlotUsecase handles pickup window management
type TimeSlotUsecase struct {
	slotRepo repositories.TimeSlotRepository
}

// NewTimeSlotUsecase creates a new time slot usecase
func NewTimeSlotUsecase(slotRepo repositories.TimeSlotRepository) *TimeSlotUsecase {
	return &TimeSlotUsecase{slotRepo: slotRepo}
}

// Create adds a pickup window. Either a concrete date or a recurring
// weekday may be set, not both.
func (u *TimeSlotUsecase) Create(ctx context.Context, input *entities.CreateTimeSlotInput) (*entities.TimeSlot, error) {
	if input.MaxOrders <= 0 {
		return nil, domainerrors.ErrInvalidInput
	}
	start, err := time.Parse("15:04", input.StartTime)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	end, err := time.Parse("15:04", input.EndTime)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if !end.After(start) {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.Date != nil && input.DayOfWeek != nil {
		return nil, domainerrors.ErrInvalidInput
	}

	slot := &entities.TimeSlot{
		ID:          uuid.New(),
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Date:        input.Date,
		DayOfWeek:   input.DayOfWeek,
		MaxOrders:   input.MaxOrders,
		IsAvailable: true,
	}
	if err := u.slotRepo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// GetByID fetches a single slot.
func (u *TimeSlotUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.TimeSlot, error) {
	return u.slotRepo.GetByID(ctx, id)
}

// List returns pickup windows, optionally only the bookable ones.
func (u *TimeSlotUsecase) List(ctx context.Context, onlyAvailable bool) ([]*entities.TimeSlot, error) {
	return u.slotRepo.List(ctx, onlyAvailable)
}
