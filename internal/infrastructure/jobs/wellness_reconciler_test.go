package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"campus-canteen.backend/internal/domain/entities"
	infrarepos "campus-canteen.backend/internal/infrastructure/repositories"
	"campus-canteen.backend/internal/usecases"
)

func newSweepTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:sweep_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infrarepos.AutoMigrate(db))
	return db
}

func seedCountableOrder(t *testing.T, db *gorm.DB, studentID uuid.UUID) *entities.Order {
	t.Helper()
	repo := infrarepos.NewOrderRepository(db)
	order := &entities.Order{
		ID:            uuid.New(),
		OrderNumber:   fmt.Sprintf("ORD-20260315-%04d", time.Now().UnixNano()%10000),
		StudentID:     studentID,
		TotalPrice:    2500,
		TotalCalories: 650,
		TotalProteins: 32,
		TotalCarbs:    80,
		PaymentMethod: entities.PaymentMethodWallet,
		PaymentStatus: entities.PaymentStatusPaid,
		Status:        entities.OrderStatusConfirmed,
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestWellnessReconciler_RepairsMissedOrders(t *testing.T) {
	db := newSweepTestDB(t)
	orderRepo := infrarepos.NewOrderRepository(db)
	wellnessRepo := infrarepos.NewWellnessRepository(db)
	wellnessUC := usecases.NewWellnessUsecase(wellnessRepo, orderRepo)
	job := NewWellnessReconcilerJob(orderRepo, wellnessUC, time.Second, 100)
	ctx := context.Background()

	studentID := uuid.New()
	order := seedCountableOrder(t, db, studentID)
	seedCountableOrder(t, db, studentID)

	job.RunOnce(ctx)

	got, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, got.WellnessProcessed)

	tracking, err := wellnessRepo.GetByUserAndDate(ctx, studentID, got.WellnessDay())
	require.NoError(t, err)
	assert.Equal(t, int64(5000), tracking.DailySpent)
	assert.Equal(t, float64(1300), tracking.DailyCalories)
	assert.Equal(t, 2, tracking.OrdersCompletedToday)
}

func TestWellnessReconciler_RerunIsIdempotent(t *testing.T) {
	db := newSweepTestDB(t)
	orderRepo := infrarepos.NewOrderRepository(db)
	wellnessRepo := infrarepos.NewWellnessRepository(db)
	wellnessUC := usecases.NewWellnessUsecase(wellnessRepo, orderRepo)
	job := NewWellnessReconcilerJob(orderRepo, wellnessUC, time.Second, 100)
	ctx := context.Background()

	studentID := uuid.New()
	order := seedCountableOrder(t, db, studentID)

	job.RunOnce(ctx)
	job.RunOnce(ctx)

	got, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	tracking, err := wellnessRepo.GetByUserAndDate(ctx, studentID, got.WellnessDay())
	require.NoError(t, err)
	assert.Equal(t, int64(2500), tracking.DailySpent, "a rerun never double counts")
	assert.Equal(t, 1, tracking.OrdersCompletedToday)
}

func TestWellnessReconciler_IgnoresUncountableOrders(t *testing.T) {
	db := newSweepTestDB(t)
	orderRepo := infrarepos.NewOrderRepository(db)
	wellnessRepo := infrarepos.NewWellnessRepository(db)
	wellnessUC := usecases.NewWellnessUsecase(wellnessRepo, orderRepo)
	job := NewWellnessReconcilerJob(orderRepo, wellnessUC, time.Second, 100)
	ctx := context.Background()

	studentID := uuid.New()
	order := seedCountableOrder(t, db, studentID)
	// Unpaid, not completed: the sweep must leave it alone.
	require.NoError(t, orderRepo.SetPaymentStatus(ctx, order.ID, entities.PaymentStatusPending))

	job.RunOnce(ctx)

	got, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, got.WellnessProcessed)
}

func TestWellnessReconciler_StartStopsByContext(t *testing.T) {
	db := newSweepTestDB(t)
	orderRepo := infrarepos.NewOrderRepository(db)
	wellnessRepo := infrarepos.NewWellnessRepository(db)
	wellnessUC := usecases.NewWellnessUsecase(wellnessRepo, orderRepo)
	job := NewWellnessReconcilerJob(orderRepo, wellnessUC, time.Millisecond, 100)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on context cancellation")
	}
}
