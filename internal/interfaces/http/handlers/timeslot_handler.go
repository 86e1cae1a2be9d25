package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/interfaces/http/response"
	"campus-canteen.backend/internal/usecases"
)

type timeSlotService interface {
	Create(ctx context.Context, input *entities.CreateTimeSlotInput) (*entities.TimeSlot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TimeSlot, error)
	List(ctx context.Context, onlyAvailable bool) ([]*entities.TimeSlot, error)
}

// TimeSlotHandler handles pickup window endpoints
type TimeSlotHandler struct {
	slotUsecase timeSlotService
}

// NewTimeSlotHandler creates a new time slot handler
func NewTimeSlotHandler(slotUsecase *usecases.TimeSlotUsecase) *TimeSlotHandler {
	return &TimeSlotHandler{slotUsecase: slotUsecase}
}

// ListTimeSlots returns pickup windows
// GET /api/v1/time-slots
func (h *TimeSlotHandler) ListTimeSlots(c *gin.Context) {
	onlyAvailable := c.Query("all") != "true"

	slots, err := h.slotUsecase.List(c.Request.Context(), onlyAvailable)
	if err != nil {
		response.Error(c, err)
		return
	}
	if slots == nil {
		slots = []*entities.TimeSlot{}
	}

	response.Success(c, http.StatusOK, slots)
}

// GetTimeSlot returns a single pickup window
// GET /api/v1/time-slots/:id
func (h *TimeSlotHandler) GetTimeSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid time slot ID"))
		return
	}

	slot, err := h.slotUsecase.GetByID(c.Request.Context(), slotID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, slot)
}

// CreateTimeSlot adds a pickup window
// POST /api/v1/staff/time-slots
func (h *TimeSlotHandler) CreateTimeSlot(c *gin.Context) {
	var input entities.CreateTimeSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	slot, err := h.slotUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, slot)
}
