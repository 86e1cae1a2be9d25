package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Wallet represents a user's stored-value balance. All amounts are in
// minor currency units (cents).
type Wallet struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"userId"`
	Balance           int64      `json:"balance"`
	MonthlyBudgetCap  int64      `json:"monthlyBudgetCap"` // 0 = unlimited
	CurrentMonthSpent int64      `json:"currentMonthSpent"`
	IsActive          bool       `json:"isActive"`
	LastTransactionAt *time.Time `json:"lastTransactionAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// CanAfford reports whether the balance covers the given amount.
func (w *Wallet) CanAfford(amount int64) bool {
	return w.Balance >= amount
}

// ExceedsBudget reports whether spending amount would go over the monthly
// budget cap. Advisory only: never blocks a purchase.
func (w *Wallet) ExceedsBudget(amount int64) bool {
	if w.MonthlyBudgetCap == 0 {
		return false
	}
	return w.CurrentMonthSpent+amount > w.MonthlyBudgetCap
}

// RemainingBudget returns what is left of the monthly budget cap.
// An unlimited cap reports MaxInt64.
func (w *Wallet) RemainingBudget() int64 {
	if w.MonthlyBudgetCap == 0 {
		return math.MaxInt64
	}
	remaining := w.MonthlyBudgetCap - w.CurrentMonthSpent
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TransactionType represents the direction of a ledger entry
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// TransactionStatus represents the state of a ledger entry
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Transaction is an immutable, append-only ledger entry. BalanceAfter
// snapshots the wallet balance immediately after this entry was applied.
type Transaction struct {
	ID           uuid.UUID         `json:"id"`
	WalletID     uuid.UUID         `json:"walletId"`
	UserID       uuid.UUID         `json:"userId"`
	Type         TransactionType   `json:"type"`
	Amount       int64             `json:"amount"`
	Description  string            `json:"description"`
	OrderID      *uuid.UUID        `json:"orderId,omitempty"`
	BalanceAfter int64             `json:"balanceAfter"`
	Status       TransactionStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// SignedAmount returns the amount with the ledger sign applied.
func (t *Transaction) SignedAmount() int64 {
	if t.Type == TransactionTypeDebit {
		return -t.Amount
	}
	return t.Amount
}

// RechargeInput is the request body for crediting a wallet.
type RechargeInput struct {
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// UpdateBudgetCapInput is the request body for changing the monthly cap.
type UpdateBudgetCapInput struct {
	MonthlyBudgetCap int64 `json:"monthlyBudgetCap"`
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Type *TransactionType
	From *time.Time
	To   *time.Time
}

// TransactionSummary accompanies a transaction listing.
type TransactionSummary struct {
	TotalCredits int64 `json:"totalCredits"`
	TotalDebits  int64 `json:"totalDebits"`
}

// WalletSummary is the balance-and-budget view returned to clients.
type WalletSummary struct {
	Balance           int64  `json:"balance"`
	MonthlyBudgetCap  int64  `json:"monthlyBudgetCap"`
	CurrentMonthSpent int64  `json:"currentMonthSpent"`
	RemainingBudget   *int64 `json:"remainingBudget,omitempty"` // nil when the cap is unlimited
}
