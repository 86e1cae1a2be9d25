package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-canteen.backend/internal/domain/entities"
)

type wellnessServiceStub struct {
	tracking *entities.WellnessTracking
	monthly  *entities.MonthlyStats
	err      error

	lastYear  int
	lastMonth time.Month
}

func (s *wellnessServiceStub) TrackingForDay(_ context.Context, _ uuid.UUID, _ time.Time) (*entities.WellnessTracking, *entities.MonthlyStats, error) {
	return s.tracking, s.monthly, s.err
}

func (s *wellnessServiceStub) MonthlyStats(_ context.Context, _ uuid.UUID, year int, month time.Month) (*entities.MonthlyStats, error) {
	s.lastYear = year
	s.lastMonth = month
	return s.monthly, s.err
}

func (s *wellnessServiceStub) UpdateDailyGoals(_ context.Context, _ uuid.UUID, _ *entities.UpdateDailyGoalsInput) (*entities.WellnessTracking, error) {
	return s.tracking, s.err
}

func TestWellnessHandler_GetToday(t *testing.T) {
	stub := &wellnessServiceStub{
		tracking: &entities.WellnessTracking{ID: uuid.New(), DailyCalories: 1300, DailySpent: 5000, OrdersCompletedToday: 2},
		monthly:  &entities.MonthlyStats{TotalSpent: 42000, OrdersCompleted: 18},
	}
	h := &WellnessHandler{wellnessUsecase: stub}

	router := gin.New()
	router.GET("/wellness/today", authed(uuid.New(), entities.UserRoleStudent), h.GetToday)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wellness/today", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Today   entities.WellnessTracking `json:"today"`
			Monthly entities.MonthlyStats     `json:"monthly"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1300), resp.Data.Today.DailyCalories)
	assert.Equal(t, int64(42000), resp.Data.Monthly.TotalSpent)
}

func TestWellnessHandler_GetDay_InvalidDate(t *testing.T) {
	h := &WellnessHandler{wellnessUsecase: &wellnessServiceStub{}}

	router := gin.New()
	router.GET("/wellness/days/:date", authed(uuid.New(), entities.UserRoleStudent), h.GetDay)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wellness/days/15-03-2026", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWellnessHandler_GetMonthlyStats_ParsesQuery(t *testing.T) {
	stub := &wellnessServiceStub{monthly: &entities.MonthlyStats{Year: 2026, Month: 3}}
	h := &WellnessHandler{wellnessUsecase: stub}

	router := gin.New()
	router.GET("/wellness/monthly", authed(uuid.New(), entities.UserRoleStudent), h.GetMonthlyStats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wellness/monthly?year=2026&month=3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2026, stub.lastYear)
	assert.Equal(t, time.March, stub.lastMonth)
}

func TestWellnessHandler_GetMonthlyStats_RejectsBadMonth(t *testing.T) {
	h := &WellnessHandler{wellnessUsecase: &wellnessServiceStub{}}

	router := gin.New()
	router.GET("/wellness/monthly", authed(uuid.New(), entities.UserRoleStudent), h.GetMonthlyStats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wellness/monthly?month=13", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWellnessHandler_UpdateGoals(t *testing.T) {
	stub := &wellnessServiceStub{tracking: &entities.WellnessTracking{ID: uuid.New(), CalorieGoal: 2200}}
	h := &WellnessHandler{wellnessUsecase: stub}

	router := gin.New()
	router.PUT("/wellness/goals", authed(uuid.New(), entities.UserRoleStudent), h.UpdateGoals)

	calories := 2200.0
	body, _ := json.Marshal(entities.UpdateDailyGoalsInput{CalorieGoal: &calories})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/wellness/goals", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"calorieGoal":2200`)
}
