package entities

import (
	"time"

	"github.com/google/uuid"
)

// WellnessTracking is the per-user per-day nutrition and spend accumulator.
// At most one record exists per (user, date). Accumulators are only ever
// incremented by AddOrderStats; monthly figures are derived read-side.
type WellnessTracking struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"userId"`
	Date                 time.Time `json:"date"`
	Day                  int       `json:"day"`
	Month                int       `json:"month"`
	Year                 int       `json:"year"`
	DailyCalories        float64   `json:"dailyCalories"`
	DailyProteins        float64   `json:"dailyProteins"`
	DailyCarbs           float64   `json:"dailyCarbs"`
	DailySpent           int64     `json:"dailySpent"`
	OrdersCompletedToday int       `json:"ordersCompletedToday"`
	CalorieGoal          float64   `json:"calorieGoal"`
	ProteinGoal          float64   `json:"proteinGoal"`
	SpendGoal            int64     `json:"spendGoal"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// OrderStatsDelta is the set of increments applied for one counted order.
// Orders is +1 on application; a configured cancellation reversal sends
// negative nutrition/spend values and leaves Orders at zero.
type OrderStatsDelta struct {
	Calories float64
	Proteins float64
	Carbs    float64
	Spent    int64
	Orders   int
}

// MonthlyStats is the read-side aggregation over a user's day records.
type MonthlyStats struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	TotalCalories   float64 `json:"totalCalories"`
	TotalProteins   float64 `json:"totalProteins"`
	TotalSpent      int64   `json:"totalSpent"`
	OrdersCompleted int     `json:"ordersCompleted"`
	DaysTracked     int     `json:"daysTracked"`
}

// UpdateDailyGoalsInput is the request body for changing wellness goals.
type UpdateDailyGoalsInput struct {
	CalorieGoal *float64 `json:"calorieGoal"`
	ProteinGoal *float64 `json:"proteinGoal"`
	SpendGoal   *int64   `json:"spendGoal"`
}

// DayStart truncates t to midnight in its location. Wellness records key
// on this value.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
