package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleStaff   UserRole = "cafeteria_staff"
	UserRoleAdmin   UserRole = "admin"
)

// User represents an authenticated account
type User struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Role                UserRole   `json:"role"`
	OnboardingCompleted bool       `json:"onboardingCompleted"`
	DailyCalories       float64    `json:"dailyCalories"`
	DailyProteins       float64    `json:"dailyProteins"`
	DailyCarbs          float64    `json:"dailyCarbs"`
	IntakeDate          *time.Time `json:"intakeDate,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// IsStaff reports whether the user may manage orders and the catalog.
func (u *User) IsStaff() bool {
	return u.Role == UserRoleStaff || u.Role == UserRoleAdmin
}
