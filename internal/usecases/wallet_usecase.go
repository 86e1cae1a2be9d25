package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/domain/repositories"
	"campus-canteen.backend/pkg/metrics"
)

// WalletUsecase handles wallet business logic. Every balance change pairs
// the wallet update with a ledger entry inside one transaction.
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
	txRepo     repositories.TransactionRepository
	uow        repositories.UnitOfWork
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(walletRepo repositories.WalletRepository, txRepo repositories.TransactionRepository, uow repositories.UnitOfWork) *WalletUsecase {
	return &WalletUsecase{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		uow:        uow,
	}
}

// GetOrCreateForUser returns the user's wallet, provisioning an empty active
// one on first touch.
func (u *WalletUsecase) GetOrCreateForUser(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	wallet = &entities.Wallet{
		ID:       uuid.New(),
		UserID:   userID,
		IsActive: true,
	}
	if createErr := u.walletRepo.Create(ctx, wallet); createErr != nil {
		// Another request may have provisioned the wallet first.
		if existing, readErr := u.walletRepo.GetByUserID(ctx, userID); readErr == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return wallet, nil
}

// Recharge credits the wallet and records the matching ledger entry.
func (u *WalletUsecase) Recharge(ctx context.Context, userID uuid.UUID, input *entities.RechargeInput) (*entities.Wallet, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	wallet, err := u.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !wallet.IsActive {
		return nil, domainerrors.ErrWalletInactive
	}

	description := input.Description
	if description == "" {
		description = "Wallet recharge"
	}

	var updated *entities.Wallet
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = u.walletRepo.Credit(ctx, wallet.ID, input.Amount)
		if txErr != nil {
			return txErr
		}
		return u.txRepo.Create(ctx, &entities.Transaction{
			ID:           uuid.New(),
			WalletID:     wallet.ID,
			UserID:       userID,
			Type:         entities.TransactionTypeCredit,
			Amount:       input.Amount,
			Description:  description,
			BalanceAfter: updated.Balance,
			Status:       entities.TransactionStatusCompleted,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.WalletOperations.WithLabelValues("recharge").Inc()
	return updated, nil
}

// ListTransactions returns a page of ledger entries with the period summary.
func (u *WalletUsecase) ListTransactions(ctx context.Context, userID uuid.UUID, filter entities.TransactionFilter, limit, offset int) ([]*entities.Transaction, int64, *entities.TransactionSummary, error) {
	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, nil, err
	}

	transactions, total, err := u.txRepo.ListByWallet(ctx, wallet.ID, filter, limit, offset)
	if err != nil {
		return nil, 0, nil, err
	}
	summary, err := u.txRepo.Summarize(ctx, wallet.ID, filter)
	if err != nil {
		return nil, 0, nil, err
	}
	return transactions, total, summary, nil
}

// Summary returns the balance-and-budget view for the user's wallet.
func (u *WalletUsecase) Summary(ctx context.Context, userID uuid.UUID) (*entities.WalletSummary, error) {
	wallet, err := u.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &entities.WalletSummary{
		Balance:           wallet.Balance,
		MonthlyBudgetCap:  wallet.MonthlyBudgetCap,
		CurrentMonthSpent: wallet.CurrentMonthSpent,
	}
	if wallet.MonthlyBudgetCap > 0 {
		remaining := wallet.RemainingBudget()
		summary.RemainingBudget = &remaining
	}
	return summary, nil
}

// UpdateBudgetCap sets the monthly budget cap. Zero means unlimited.
func (u *WalletUsecase) UpdateBudgetCap(ctx context.Context, userID uuid.UUID, input *entities.UpdateBudgetCapInput) (*entities.Wallet, error) {
	if input.MonthlyBudgetCap < 0 {
		return nil, domainerrors.ErrInvalidInput
	}

	wallet, err := u.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.walletRepo.UpdateBudgetCap(ctx, wallet.ID, input.MonthlyBudgetCap); err != nil {
		return nil, err
	}
	return u.walletRepo.GetByID(ctx, wallet.ID)
}

// ResetAllMonthlySpending zeroes every wallet's month-spent counter. Run by
// the monthly cron at the start of each month.
func (u *WalletUsecase) ResetAllMonthlySpending(ctx context.Context) (int64, error) {
	affected, err := u.walletRepo.ResetAllMonthlySpending(ctx)
	if err != nil {
		return 0, err
	}
	metrics.WalletOperations.WithLabelValues("monthly_reset").Inc()
	return affected, nil
}

// refundToWallet credits amount back, unwinds the month-spent counter and
// records a refund ledger entry. Called from order cancellation inside its
// transaction scope.
func (u *WalletUsecase) refundToWallet(ctx context.Context, userID, walletID uuid.UUID, amount int64, orderID uuid.UUID, description string) error {
	updated, err := u.walletRepo.Credit(ctx, walletID, amount)
	if err != nil {
		return err
	}
	if err := u.walletRepo.ReverseMonthSpent(ctx, walletID, amount); err != nil {
		return err
	}
	return u.txRepo.Create(ctx, &entities.Transaction{
		ID:           uuid.New(),
		WalletID:     walletID,
		UserID:       userID,
		Type:         entities.TransactionTypeCredit,
		Amount:       amount,
		Description:  description,
		OrderID:      &orderID,
		BalanceAfter: updated.Balance,
		Status:       entities.TransactionStatusCompleted,
	})
}

// chargeForOrder debits the order total and records the debit ledger entry.
// Called from order creation inside its transaction scope.
func (u *WalletUsecase) chargeForOrder(ctx context.Context, userID, walletID uuid.UUID, amount int64, orderID uuid.UUID, description string) error {
	updated, err := u.walletRepo.Debit(ctx, walletID, amount)
	if err != nil {
		return err
	}
	return u.txRepo.Create(ctx, &entities.Transaction{
		ID:           uuid.New(),
		WalletID:     walletID,
		UserID:       userID,
		Type:         entities.TransactionTypeDebit,
		Amount:       amount,
		Description:  description,
		OrderID:      &orderID,
		BalanceAfter: updated.Balance,
		Status:       entities.TransactionStatusCompleted,
	})
}
