package models

import (
	"time"

	"github.com/google/uuid"

	"campus-canteen.backend/internal/domain/entities"
)

type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Role                string    `gorm:"type:varchar(32);not null;default:student"`
	OnboardingCompleted bool      `gorm:"default:false"`
	DailyCalories       float64   `gorm:"default:0"`
	DailyProteins       float64   `gorm:"default:0"`
	DailyCarbs          float64   `gorm:"default:0"`
	IntakeDate          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (User) TableName() string { return "users" }

func (m *User) ToEntity() *entities.User {
	return &entities.User{
		ID:                  m.ID,
		Email:               m.Email,
		Name:                m.Name,
		Role:                entities.UserRole(m.Role),
		OnboardingCompleted: m.OnboardingCompleted,
		DailyCalories:       m.DailyCalories,
		DailyProteins:       m.DailyProteins,
		DailyCarbs:          m.DailyCarbs,
		IntakeDate:          m.IntakeDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func UserFromEntity(e *entities.User) *User {
	return &User{
		ID:                  e.ID,
		Email:               e.Email,
		Name:                e.Name,
		Role:                string(e.Role),
		OnboardingCompleted: e.OnboardingCompleted,
		DailyCalories:       e.DailyCalories,
		DailyProteins:       e.DailyProteins,
		DailyCarbs:          e.DailyCarbs,
		IntakeDate:          e.IntakeDate,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
