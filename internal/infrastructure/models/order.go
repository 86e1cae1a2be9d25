package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"campus-canteen.backend/internal/domain/entities"
)

type Order struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber         string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	StudentID           uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalPrice          int64     `gorm:"not null"`
	TotalCalories       float64   `gorm:"not null;default:0"`
	TotalProteins       float64   `gorm:"not null;default:0"`
	TotalCarbs          float64   `gorm:"not null;default:0"`
	PickupSlotID        *uuid.UUID `gorm:"type:uuid"`
	PickupAt            *time.Time
	PaymentMethod       string `gorm:"type:varchar(32);not null"`
	PaymentStatus       string `gorm:"type:varchar(16);not null;default:pending;index"`
	Status              string `gorm:"type:varchar(16);not null;default:pending;index"`
	WellnessProcessed   bool   `gorm:"not null;default:false;index"`
	PickupCode          *string
	SpecialInstructions *string
	CancellationReason  *string
	CollectedBy         *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time  `gorm:"index"`
	UpdatedAt           time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	MealID        uuid.UUID `gorm:"type:uuid;not null;index"`
	MealName      string    `gorm:"type:varchar(255);not null"`
	Quantity      int       `gorm:"not null"`
	UnitPrice     int64     `gorm:"not null"`
	Calories      float64   `gorm:"not null;default:0"`
	Proteins      float64   `gorm:"not null;default:0"`
	Carbohydrates float64   `gorm:"not null;default:0"`
	Fats          float64   `gorm:"not null;default:0"`
	Fiber         float64   `gorm:"not null;default:0"`
}

func (OrderItem) TableName() string { return "order_items" }

func (m *Order) ToEntity() *entities.Order {
	items := make([]entities.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, *m.Items[i].ToEntity())
	}
	return &entities.Order{
		ID:                  m.ID,
		OrderNumber:         m.OrderNumber,
		StudentID:           m.StudentID,
		Items:               items,
		TotalPrice:          m.TotalPrice,
		TotalCalories:       m.TotalCalories,
		TotalProteins:       m.TotalProteins,
		TotalCarbs:          m.TotalCarbs,
		PickupSlotID:        m.PickupSlotID,
		PickupAt:            m.PickupAt,
		PaymentMethod:       entities.PaymentMethod(m.PaymentMethod),
		PaymentStatus:       entities.PaymentStatus(m.PaymentStatus),
		Status:              entities.OrderStatus(m.Status),
		WellnessProcessed:   m.WellnessProcessed,
		PickupCode:          null.StringFromPtr(m.PickupCode),
		SpecialInstructions: null.StringFromPtr(m.SpecialInstructions),
		CancellationReason:  null.StringFromPtr(m.CancellationReason),
		CollectedBy:         m.CollectedBy,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func (m *OrderItem) ToEntity() *entities.OrderItem {
	return &entities.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		MealID:    m.MealID,
		MealName:  m.MealName,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Nutrition: entities.NutritionalInfo{
			Calories:      m.Calories,
			Proteins:      m.Proteins,
			Carbohydrates: m.Carbohydrates,
			Fats:          m.Fats,
			Fiber:         m.Fiber,
		},
	}
}

func OrderFromEntity(e *entities.Order) *Order {
	items := make([]OrderItem, 0, len(e.Items))
	for i := range e.Items {
		it := e.Items[i]
		items = append(items, OrderItem{
			ID:            it.ID,
			OrderID:       e.ID,
			MealID:        it.MealID,
			MealName:      it.MealName,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			Calories:      it.Nutrition.Calories,
			Proteins:      it.Nutrition.Proteins,
			Carbohydrates: it.Nutrition.Carbohydrates,
			Fats:          it.Nutrition.Fats,
			Fiber:         it.Nutrition.Fiber,
		})
	}
	return &Order{
		ID:                  e.ID,
		OrderNumber:         e.OrderNumber,
		StudentID:           e.StudentID,
		TotalPrice:          e.TotalPrice,
		TotalCalories:       e.TotalCalories,
		TotalProteins:       e.TotalProteins,
		TotalCarbs:          e.TotalCarbs,
		PickupSlotID:        e.PickupSlotID,
		PickupAt:            e.PickupAt,
		PaymentMethod:       string(e.PaymentMethod),
		PaymentStatus:       string(e.PaymentStatus),
		Status:              string(e.Status),
		WellnessProcessed:   e.WellnessProcessed,
		PickupCode:          e.PickupCode.Ptr(),
		SpecialInstructions: e.SpecialInstructions.Ptr(),
		CancellationReason:  e.CancellationReason.Ptr(),
		CollectedBy:         e.CollectedBy,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
		Items:               items,
	}
}
