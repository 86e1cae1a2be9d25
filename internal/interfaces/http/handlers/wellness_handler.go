package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/interfaces/http/middleware"
	"campus-canteen.backend/internal/interfaces/http/response"
	"campus-canteen.backend/internal/usecases"
)

type wellnessService interface {
	TrackingForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*entities.WellnessTracking, *entities.MonthlyStats, error)
	MonthlyStats(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entities.MonthlyStats, error)
	UpdateDailyGoals(ctx context.Context, userID uuid.UUID, input *entities.UpdateDailyGoalsInput) (*entities.WellnessTracking, error)
}

// WellnessHandler handles wellness tracking endpoints
type WellnessHandler struct {
	wellnessUsecase wellnessService
}

// NewWellnessHandler creates a new wellness handler
func NewWellnessHandler(wellnessUsecase *usecases.WellnessUsecase) *WellnessHandler {
	return &WellnessHandler{wellnessUsecase: wellnessUsecase}
}

// GetToday returns today's tracking record with the month's aggregate
// GET /api/v1/wellness/today
func (h *WellnessHandler) GetToday(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	tracking, monthly, err := h.wellnessUsecase.TrackingForDay(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"today":   tracking,
		"monthly": monthly,
	})
}

// GetDay returns the tracking record for a specific date
// GET /api/v1/wellness/days/:date
func (h *WellnessHandler) GetDay(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid date, expected YYYY-MM-DD"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	tracking, monthly, err := h.wellnessUsecase.TrackingForDay(c.Request.Context(), userID, day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"day":     tracking,
		"monthly": monthly,
	})
}

// GetMonthlyStats returns the aggregated stats for a month
// GET /api/v1/wellness/monthly?year=2026&month=3
func (h *WellnessHandler) GetMonthlyStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid year"))
			return
		}
		year = parsed
	}
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			response.Error(c, domainerrors.BadRequest("Invalid month"))
			return
		}
		month = parsed
	}

	stats, err := h.wellnessUsecase.MonthlyStats(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// GetForUser returns a student's tracking for a day, staff view
// GET /api/v1/staff/wellness/:userId?date=2026-03-15
func (h *WellnessHandler) GetForUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid date, expected YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	tracking, monthly, err := h.wellnessUsecase.TrackingForDay(c.Request.Context(), userID, day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"day":     tracking,
		"monthly": monthly,
	})
}

// GetMonthlyForUser returns a student's monthly aggregate, staff view
// GET /api/v1/staff/wellness/:userId/monthly?year=2026&month=3
func (h *WellnessHandler) GetMonthlyForUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid year"))
			return
		}
		year = parsed
	}
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			response.Error(c, domainerrors.BadRequest("Invalid month"))
			return
		}
		month = parsed
	}

	stats, err := h.wellnessUsecase.MonthlyStats(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// UpdateGoals sets today's wellness goals
// PUT /api/v1/wellness/goals
func (h *WellnessHandler) UpdateGoals(c *gin.Context) {
	var input entities.UpdateDailyGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	tracking, err := h.wellnessUsecase.UpdateDailyGoals(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, tracking)
}
