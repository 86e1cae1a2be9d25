package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/infrastructure/models"
)

// WalletRepository implements wallet data operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a new wallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	if wallet.ID == uuid.Nil {
		wallet.ID = uuid.New()
	}
	m := &models.Wallet{
		ID:               wallet.ID,
		UserID:           wallet.UserID,
		Balance:          wallet.Balance,
		MonthlyBudgetCap: wallet.MonthlyBudgetCap,
		IsActive:         true,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	wallet.IsActive = true
	wallet.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a wallet by ID
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// GetByUserID gets the wallet belonging to a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Credit adds amount to the wallet balance as a single atomic update.
func (r *WalletRepository) Credit(ctx context.Context, walletID uuid.UUID, amount int64) (*entities.Wallet, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	db := GetDB(ctx, r.db)
	now := time.Now()
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ? AND is_active = ?", walletID, true).
		Updates(map[string]interface{}{
			"balance":             gorm.Expr("balance + ?", amount),
			"last_transaction_at": now,
			"updated_at":          now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, r.classifyMiss(ctx, walletID)
	}
	return r.GetByID(ctx, walletID)
}

// Debit subtracts amount and bumps the month-spent counter, conditional on
// the balance covering it. The guard lives in the WHERE clause so two
// concurrent debits can never both succeed when only one can be afforded.
func (r *WalletRepository) Debit(ctx context.Context, walletID uuid.UUID, amount int64) (*entities.Wallet, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	db := GetDB(ctx, r.db)
	now := time.Now()
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ? AND is_active = ? AND balance >= ?", walletID, true, amount).
		Updates(map[string]interface{}{
			"balance":             gorm.Expr("balance - ?", amount),
			"current_month_spent": gorm.Expr("current_month_spent + ?", amount),
			"last_transaction_at": now,
			"updated_at":          now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, r.classifyMiss(ctx, walletID)
	}
	return r.GetByID(ctx, walletID)
}

// classifyMiss distinguishes why a conditional update matched no rows.
func (r *WalletRepository) classifyMiss(ctx context.Context, walletID uuid.UUID) error {
	wallet, err := r.GetByID(ctx, walletID)
	if err != nil {
		return err
	}
	if !wallet.IsActive {
		return domainerrors.ErrWalletInactive
	}
	return domainerrors.ErrInsufficientBalance
}

// ReverseMonthSpent removes a refunded amount from the month-spent counter.
func (r *WalletRepository) ReverseMonthSpent(ctx context.Context, walletID uuid.UUID, amount int64) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"current_month_spent": gorm.Expr("CASE WHEN current_month_spent > ? THEN current_month_spent - ? ELSE 0 END", amount, amount),
			"updated_at":          time.Now(),
		}).Error
}

// UpdateBudgetCap sets the monthly budget cap (0 = unlimited).
func (r *WalletRepository) UpdateBudgetCap(ctx context.Context, walletID uuid.UUID, cap int64) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"monthly_budget_cap": cap,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ResetMonthlySpending zeroes the month-spent counter for one wallet.
func (r *WalletRepository) ResetMonthlySpending(ctx context.Context, walletID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"current_month_spent": 0,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ResetAllMonthlySpending zeroes the month-spent counter on every wallet.
// Invoked by the billing-cycle job.
func (r *WalletRepository) ResetAllMonthlySpending(ctx context.Context) (int64, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("current_month_spent > 0").
		Updates(map[string]interface{}{
			"current_month_spent": 0,
			"updated_at":          time.Now(),
		})
	return result.RowsAffected, result.Error
}
