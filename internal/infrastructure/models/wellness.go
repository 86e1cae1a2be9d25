package models

import (
	"time"

	"github.com/google/uuid"

	"campus-canteen.backend/internal/domain/entities"
)

type WellnessTracking struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wellness_user_date"`
	Date                 time.Time `gorm:"not null;uniqueIndex:idx_wellness_user_date"`
	Day                  int       `gorm:"not null"`
	Month                int       `gorm:"not null;index"`
	Year                 int       `gorm:"not null;index"`
	DailyCalories        float64   `gorm:"not null;default:0"`
	DailyProteins        float64   `gorm:"not null;default:0"`
	DailyCarbs           float64   `gorm:"not null;default:0"`
	DailySpent           int64     `gorm:"not null;default:0"`
	OrdersCompletedToday int       `gorm:"not null;default:0"`
	CalorieGoal          float64   `gorm:"not null;default:0"`
	ProteinGoal          float64   `gorm:"not null;default:0"`
	SpendGoal            int64     `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (WellnessTracking) TableName() string { return "wellness_tracking" }

func (m *WellnessTracking) ToEntity() *entities.WellnessTracking {
	return &entities.WellnessTracking{
		ID:                   m.ID,
		UserID:               m.UserID,
		Date:                 m.Date,
		Day:                  m.Day,
		Month:                m.Month,
		Year:                 m.Year,
		DailyCalories:        m.DailyCalories,
		DailyProteins:        m.DailyProteins,
		DailyCarbs:           m.DailyCarbs,
		DailySpent:           m.DailySpent,
		OrdersCompletedToday: m.OrdersCompletedToday,
		CalorieGoal:          m.CalorieGoal,
		ProteinGoal:          m.ProteinGoal,
		SpendGoal:            m.SpendGoal,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
