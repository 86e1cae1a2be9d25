package entities

import (
	"time"

	"github.com/google/uuid"
)

// MealCategory represents the menu section a meal belongs to
type MealCategory string

const (
	MealCategoryBreakfast MealCategory = "breakfast"
	MealCategoryMain      MealCategory = "main"
	MealCategorySalad     MealCategory = "salad"
	MealCategorySnack     MealCategory = "snack"
	MealCategoryDessert   MealCategory = "dessert"
	MealCategoryDrink     MealCategory = "drink"
)

// NutritionalInfo holds per-serving nutrition values
type NutritionalInfo struct {
	Calories      float64 `json:"calories"`
	Proteins      float64 `json:"proteins"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
	Fiber         float64 `json:"fiber"`
}

// Meal represents a catalog entry. Price and Cost are in minor currency units.
type Meal struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         int64           `json:"price"`
	Cost          int64           `json:"cost"`
	Category      MealCategory    `json:"category"`
	Nutrition     NutritionalInfo `json:"nutritionalInfo"`
	IsAvailable   bool            `json:"isAvailable"`
	AvailableDays []time.Weekday  `json:"availableDays"`
	OrderCount    int64           `json:"orderCount"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     *time.Time      `json:"-"`
}

// AvailableOn reports whether the meal can be ordered on the given day.
func (m *Meal) AvailableOn(day time.Weekday) bool {
	if !m.IsAvailable {
		return false
	}
	for _, d := range m.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

// CreateMealInput is the request body for creating a meal.
type CreateMealInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         int64           `json:"price" binding:"min=0"`
	Cost          int64           `json:"cost"`
	Category      MealCategory    `json:"category" binding:"required"`
	Nutrition     NutritionalInfo `json:"nutritionalInfo"`
	AvailableDays []time.Weekday  `json:"availableDays"`
	ImageURL      string          `json:"imageUrl"`
}

// UpdateMealInput is the request body for updating a meal. Nil fields are
// left untouched.
type UpdateMealInput struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *int64           `json:"price"`
	Cost          *int64           `json:"cost"`
	Category      *MealCategory    `json:"category"`
	Nutrition     *NutritionalInfo `json:"nutritionalInfo"`
	IsAvailable   *bool            `json:"isAvailable"`
	AvailableDays *[]time.Weekday  `json:"availableDays"`
	ImageURL      *string          `json:"imageUrl"`
}
