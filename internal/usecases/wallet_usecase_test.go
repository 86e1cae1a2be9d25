package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/usecases"
)

func TestWalletUsecase_Recharge_RejectsNonPositiveAmount(t *testing.T) {
	uc := usecases.NewWalletUsecase(new(MockWalletRepository), new(MockTransactionRepository), new(MockUnitOfWork))

	_, err := uc.Recharge(context.Background(), uuid.New(), &entities.RechargeInput{Amount: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)

	_, err = uc.Recharge(context.Background(), uuid.New(), &entities.RechargeInput{Amount: -500})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestWalletUsecase_Recharge_CreditsAndWritesLedgerEntry(t *testing.T) {
	mockWalletRepo := new(MockWalletRepository)
	mockTxRepo := new(MockTransactionRepository)
	mockUow := new(MockUnitOfWork)
	uc := usecases.NewWalletUsecase(mockWalletRepo, mockTxRepo, mockUow)

	userID := uuid.New()
	wallet := &entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 1000, IsActive: true}
	credited := &entities.Wallet{ID: wallet.ID, UserID: userID, Balance: 6000, IsActive: true}

	mockWalletRepo.On("GetByUserID", mock.Anything, userID).Return(wallet, nil).Once()
	mockUow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	mockWalletRepo.On("Credit", mock.Anything, wallet.ID, int64(5000)).Return(credited, nil).Once()
	mockTxRepo.On("Create", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.Type == entities.TransactionTypeCredit &&
			tx.Amount == 5000 &&
			tx.BalanceAfter == 6000 &&
			tx.Status == entities.TransactionStatusCompleted
	})).Return(nil).Once()

	got, err := uc.Recharge(context.Background(), userID, &entities.RechargeInput{Amount: 5000})
	assert.NoError(t, err)
	assert.Equal(t, int64(6000), got.Balance)
	mockTxRepo.AssertExpectations(t)
}

func TestWalletUsecase_Recharge_InactiveWallet(t *testing.T) {
	mockWalletRepo := new(MockWalletRepository)
	uc := usecases.NewWalletUsecase(mockWalletRepo, new(MockTransactionRepository), new(MockUnitOfWork))

	userID := uuid.New()
	mockWalletRepo.On("GetByUserID", mock.Anything, userID).
		Return(&entities.Wallet{ID: uuid.New(), UserID: userID, IsActive: false}, nil).Once()

	_, err := uc.Recharge(context.Background(), userID, &entities.RechargeInput{Amount: 100})
	assert.ErrorIs(t, err, domainerrors.ErrWalletInactive)
}

func TestWalletUsecase_GetOrCreateForUser_ProvisionsOnFirstTouch(t *testing.T) {
	mockWalletRepo := new(MockWalletRepository)
	uc := usecases.NewWalletUsecase(mockWalletRepo, new(MockTransactionRepository), new(MockUnitOfWork))

	userID := uuid.New()
	mockWalletRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound).Once()
	mockWalletRepo.On("Create", mock.Anything, mock.MatchedBy(func(w *entities.Wallet) bool {
		return w.UserID == userID && w.IsActive && w.Balance == 0
	})).Return(nil).Once()

	wallet, err := uc.GetOrCreateForUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, userID, wallet.UserID)
	assert.True(t, wallet.IsActive)
	mockWalletRepo.AssertExpectations(t)
}

func TestWalletUsecase_Summary_OmitsRemainingForUnlimitedCap(t *testing.T) {
	mockWalletRepo := new(MockWalletRepository)
	uc := usecases.NewWalletUsecase(mockWalletRepo, new(MockTransactionRepository), new(MockUnitOfWork))

	userID := uuid.New()
	mockWalletRepo.On("GetByUserID", mock.Anything, userID).
		Return(&entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 12000, IsActive: true}, nil).Once()

	summary, err := uc.Summary(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(12000), summary.Balance)
	assert.Nil(t, summary.RemainingBudget)
}

func TestWalletUsecase_Summary_ReportsRemainingBudget(t *testing.T) {
	mockWalletRepo := new(MockWalletRepository)
	uc := usecases.NewWalletUsecase(mockWalletRepo, new(MockTransactionRepository), new(MockUnitOfWork))

	userID := uuid.New()
	mockWalletRepo.On("GetByUserID", mock.Anything, userID).Return(&entities.Wallet{
		ID: uuid.New(), UserID: userID, Balance: 12000, IsActive: true,
		MonthlyBudgetCap: 10000, CurrentMonthSpent: 4000,
	}, nil).Once()

	summary, err := uc.Summary(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotNil(t, summary.RemainingBudget)
	assert.Equal(t, int64(6000), *summary.RemainingBudget)
}

func TestWalletUsecase_UpdateBudgetCap_RejectsNegative(t *testing.T) {
	uc := usecases.NewWalletUsecase(new(MockWalletRepository), new(MockTransactionRepository), new(MockUnitOfWork))

	_, err := uc.UpdateBudgetCap(context.Background(), uuid.New(), &entities.UpdateBudgetCapInput{MonthlyBudgetCap: -1})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestWalletUsecase_ResetAllMonthlySpending(t *testing.T) {
	mockWalletRepo := new(MockWalletRepository)
	uc := usecases.NewWalletUsecase(mockWalletRepo, new(MockTransactionRepository), new(MockUnitOfWork))

	mockWalletRepo.On("ResetAllMonthlySpending", mock.Anything).Return(int64(42), nil).Once()

	affected, err := uc.ResetAllMonthlySpending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), affected)
}
