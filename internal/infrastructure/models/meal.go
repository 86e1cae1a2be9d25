package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-canteen.backend/internal/domain/entities"
)

type Meal struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Price         int64     `gorm:"not null"`
	Cost          int64     `gorm:"not null;default:0"`
	Category      string    `gorm:"type:varchar(32);not null;index"`
	Calories      float64   `gorm:"not null;default:0"`
	Proteins      float64   `gorm:"not null;default:0"`
	Carbohydrates float64   `gorm:"not null;default:0"`
	Fats          float64   `gorm:"not null;default:0"`
	Fiber         float64   `gorm:"not null;default:0"`
	IsAvailable   bool      `gorm:"default:true;index"`
	AvailableDays []int     `gorm:"serializer:json"`
	OrderCount    int64     `gorm:"not null;default:0"`
	ImageURL      string    `gorm:"type:varchar(512)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Meal) TableName() string { return "meals" }

func (m *Meal) ToEntity() *entities.Meal {
	days := make([]time.Weekday, 0, len(m.AvailableDays))
	for _, d := range m.AvailableDays {
		days = append(days, time.Weekday(d))
	}
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		deletedAt = &t
	}
	return &entities.Meal{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Cost:        m.Cost,
		Category:    entities.MealCategory(m.Category),
		Nutrition: entities.NutritionalInfo{
			Calories:      m.Calories,
			Proteins:      m.Proteins,
			Carbohydrates: m.Carbohydrates,
			Fats:          m.Fats,
			Fiber:         m.Fiber,
		},
		IsAvailable:   m.IsAvailable,
		AvailableDays: days,
		OrderCount:    m.OrderCount,
		ImageURL:      m.ImageURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

func MealFromEntity(e *entities.Meal) *Meal {
	days := make([]int, 0, len(e.AvailableDays))
	for _, d := range e.AvailableDays {
		days = append(days, int(d))
	}
	return &Meal{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Price:         e.Price,
		Cost:          e.Cost,
		Category:      string(e.Category),
		Calories:      e.Nutrition.Calories,
		Proteins:      e.Nutrition.Proteins,
		Carbohydrates: e.Nutrition.Carbohydrates,
		Fats:          e.Nutrition.Fats,
		Fiber:         e.Nutrition.Fiber,
		IsAvailable:   e.IsAvailable,
		AvailableDays: days,
		OrderCount:    e.OrderCount,
		ImageURL:      e.ImageURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type TimeSlot struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartTime     string    `gorm:"type:varchar(5);not null"`
	EndTime       string    `gorm:"type:varchar(5);not null"`
	Date          *time.Time
	DayOfWeek     *int
	MaxOrders     int  `gorm:"not null"`
	CurrentOrders int  `gorm:"not null;default:0"`
	IsAvailable   bool `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TimeSlot) TableName() string { return "time_slots" }

func (m *TimeSlot) ToEntity() *entities.TimeSlot {
	var day *time.Weekday
	if m.DayOfWeek != nil {
		d := time.Weekday(*m.DayOfWeek)
		day = &d
	}
	return &entities.TimeSlot{
		ID:            m.ID,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Date:          m.Date,
		DayOfWeek:     day,
		MaxOrders:     m.MaxOrders,
		CurrentOrders: m.CurrentOrders,
		IsAvailable:   m.IsAvailable,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
