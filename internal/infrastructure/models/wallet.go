package models

import (
	"time"

	"github.com/google/uuid"

	"campus-canteen.backend/internal/domain/entities"
)

type Wallet struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Balance           int64     `gorm:"not null;default:0"`
	MonthlyBudgetCap  int64     `gorm:"not null;default:0"`
	CurrentMonthSpent int64     `gorm:"not null;default:0"`
	IsActive          bool      `gorm:"default:true"`
	LastTransactionAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Wallet) TableName() string { return "wallets" }

func (m *Wallet) ToEntity() *entities.Wallet {
	return &entities.Wallet{
		ID:                m.ID,
		UserID:            m.UserID,
		Balance:           m.Balance,
		MonthlyBudgetCap:  m.MonthlyBudgetCap,
		CurrentMonthSpent: m.CurrentMonthSpent,
		IsActive:          m.IsActive,
		LastTransactionAt: m.LastTransactionAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

type Transaction struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WalletID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type         string     `gorm:"type:varchar(16);not null"`
	Amount       int64      `gorm:"not null"`
	Description  string     `gorm:"type:varchar(512)"`
	OrderID      *uuid.UUID `gorm:"type:uuid;index"`
	BalanceAfter int64      `gorm:"not null"`
	Status       string     `gorm:"type:varchar(16);not null;default:completed"`
	CreatedAt    time.Time  `gorm:"index"`
}

func (Transaction) TableName() string { return "transactions" }

func (m *Transaction) ToEntity() *entities.Transaction {
	return &entities.Transaction{
		ID:           m.ID,
		WalletID:     m.WalletID,
		UserID:       m.UserID,
		Type:         entities.TransactionType(m.Type),
		Amount:       m.Amount,
		Description:  m.Description,
		OrderID:      m.OrderID,
		BalanceAfter: m.BalanceAfter,
		Status:       entities.TransactionStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}
