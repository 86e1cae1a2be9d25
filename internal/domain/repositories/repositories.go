package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"campus-canteen.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	// AddDailyIntake bumps the profile's daily intake counters, resetting
	// them first when the stored intake date is older than day.
	AddDailyIntake(ctx context.Context, userID uuid.UUID, day time.Time, calories, proteins, carbs float64) error
}

// WalletRepository defines wallet data operations. Credit and Debit must be
// atomic conditional updates, never read-modify-write.
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	// Credit adds amount to the balance and returns the updated wallet.
	Credit(ctx context.Context, walletID uuid.UUID, amount int64) (*entities.Wallet, error)
	// Debit subtracts amount and adds it to the month-spent counter, but
	// only when the balance covers it; returns ErrInsufficientBalance otherwise.
	Debit(ctx context.Context, walletID uuid.UUID, amount int64) (*entities.Wallet, error)
	// ReverseMonthSpent removes amount from the month-spent counter after a
	// refund, never dropping it below zero.
	ReverseMonthSpent(ctx context.Context, walletID uuid.UUID, amount int64) error
	UpdateBudgetCap(ctx context.Context, walletID uuid.UUID, cap int64) error
	ResetMonthlySpending(ctx context.Context, walletID uuid.UUID) error
	ResetAllMonthlySpending(ctx context.Context) (int64, error)
}

// TransactionRepository defines ledger operations. Entries are append-only.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	ListByWallet(ctx context.Context, walletID uuid.UUID, filter entities.TransactionFilter, limit, offset int) ([]*entities.Transaction, int64, error)
	Summarize(ctx context.Context, walletID uuid.UUID, filter entities.TransactionFilter) (*entities.TransactionSummary, error)
}

// MealRepository defines catalog operations
type MealRepository interface {
	Create(ctx context.Context, meal *entities.Meal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Meal, error)
	List(ctx context.Context, onlyAvailable bool, category *entities.MealCategory, limit, offset int) ([]*entities.Meal, int64, error)
	Update(ctx context.Context, meal *entities.Meal) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	IncrementOrderCount(ctx context.Context, id uuid.UUID, by int64) error
}

// TimeSlotRepository defines pickup window operations. Book must re-validate
// capacity atomically at increment time.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *entities.TimeSlot) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TimeSlot, error)
	List(ctx context.Context, onlyAvailable bool) ([]*entities.TimeSlot, error)
	// Book increments currentOrders only while below maxOrders; returns
	// ErrSlotFull when the slot filled up in the meantime.
	Book(ctx context.Context, id uuid.UUID) error
	// Release decrements currentOrders, never below zero.
	Release(ctx context.Context, id uuid.UUID) error
}

// OrderRepository defines order aggregate operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, filter entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error)
	List(ctx context.Context, filter entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status entities.PaymentStatus) error
	SetPickupCode(ctx context.Context, id uuid.UUID, code string) error
	// ClaimCancellation flips a still-cancellable order to cancelled as a
	// single conditional update. Returns true only for the caller that won;
	// the winner is the only one allowed to issue the refund.
	ClaimCancellation(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	// ClaimCollection completes a ready order and records the collecting
	// staff member as a single conditional update. Returns true only for
	// the caller that won.
	ClaimCollection(ctx context.Context, id uuid.UUID, staffID uuid.UUID) (bool, error)
	// ClaimWellness flips wellness_processed false->true as a single
	// conditional update. Returns true only for the caller that won the claim.
	ClaimWellness(ctx context.Context, id uuid.UUID) (bool, error)
	// ReleaseWellnessClaim undoes a claim whose stats application failed, so
	// the reconciliation sweep picks the order up again.
	ReleaseWellnessClaim(ctx context.Context, id uuid.UUID) error
	// FindWellnessUnprocessed returns countable orders whose wellness effects
	// were never applied.
	FindWellnessUnprocessed(ctx context.Context, limit int) ([]*entities.Order, error)
}

// WellnessRepository defines wellness aggregate operations. AddOrderStats
// must be a single atomic multi-field increment.
type WellnessRepository interface {
	// GetOrCreate finds the record for (user, day), creating a zeroed one when
	// absent. A duplicate-create race resolves by re-reading the winner.
	GetOrCreate(ctx context.Context, userID uuid.UUID, day time.Time) (*entities.WellnessTracking, error)
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, day time.Time) (*entities.WellnessTracking, error)
	AddOrderStats(ctx context.Context, trackingID uuid.UUID, delta entities.OrderStatsDelta) error
	MonthlyStats(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entities.MonthlyStats, error)
	UpdateGoals(ctx context.Context, trackingID uuid.UUID, input *entities.UpdateDailyGoalsInput) error
}

// UnitOfWork defines the interface for atomic multi-repository operations
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
