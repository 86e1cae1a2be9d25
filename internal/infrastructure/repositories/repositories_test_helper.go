package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campus-canteen.backend/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, AutoMigrate(db), "migrate")
	return db
}

func seedWallet(t *testing.T, db *gorm.DB, balance int64) *entities.Wallet {
	t.Helper()
	repo := NewWalletRepository(db)
	w := &entities.Wallet{UserID: uuid.New(), Balance: balance}
	require.NoError(t, repo.Create(context.Background(), w))
	return w
}

func seedOrder(t *testing.T, db *gorm.DB, mutate func(*entities.Order)) *entities.Order {
	t.Helper()
	repo := NewOrderRepository(db)
	o := &entities.Order{
		OrderNumber:   fmt.Sprintf("ORD-%d", time.Now().UnixNano()),
		StudentID:     uuid.New(),
		TotalPrice:    2500,
		TotalCalories: 650,
		TotalProteins: 32,
		TotalCarbs:    80,
		PaymentMethod: entities.PaymentMethodWallet,
		PaymentStatus: entities.PaymentStatusPending,
		Status:        entities.OrderStatusPending,
		Items: []entities.OrderItem{{
			MealID:    uuid.New(),
			MealName:  "Grilled Chicken Bowl",
			Quantity:  1,
			UnitPrice: 2500,
			Nutrition: entities.NutritionalInfo{Calories: 650, Proteins: 32, Carbohydrates: 80},
		}},
	}
	if mutate != nil {
		mutate(o)
	}
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}
