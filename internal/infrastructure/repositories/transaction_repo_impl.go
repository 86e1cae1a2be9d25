package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/infrastructure/models"
)

// TransactionRepository implements the append-only wallet ledger
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a ledger entry. Entries are never updated or deleted;
// refunds are recorded as new offsetting entries.
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	if tx.Amount <= 0 {
		return domainerrors.ErrInvalidAmount
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.Status == "" {
		tx.Status = entities.TransactionStatusCompleted
	}
	m := &models.Transaction{
		ID:           tx.ID,
		WalletID:     tx.WalletID,
		UserID:       tx.UserID,
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		Description:  tx.Description,
		OrderID:      tx.OrderID,
		BalanceAfter: tx.BalanceAfter,
		Status:       string(tx.Status),
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tx.CreatedAt = m.CreatedAt
	return nil
}

func applyTransactionFilter(q *gorm.DB, filter entities.TransactionFilter) *gorm.DB {
	if filter.Type != nil {
		q = q.Where("type = ?", string(*filter.Type))
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}
	return q
}

// ListByWallet lists ledger entries for a wallet, newest first.
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID uuid.UUID, filter entities.TransactionFilter, limit, offset int) ([]*entities.Transaction, int64, error) {
	db := GetDB(ctx, r.db)
	base := applyTransactionFilter(
		db.WithContext(ctx).Model(&models.Transaction{}).Where("wallet_id = ?", walletID),
		filter,
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Transaction
	if err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, ms[i].ToEntity())
	}
	return txs, total, nil
}

// Summarize totals credits and debits for a wallet under the same filter
// as the listing.
func (r *TransactionRepository) Summarize(ctx context.Context, walletID uuid.UUID, filter entities.TransactionFilter) (*entities.TransactionSummary, error) {
	db := GetDB(ctx, r.db)

	type row struct {
		Type  string
		Total int64
	}
	var rows []row
	err := applyTransactionFilter(
		db.WithContext(ctx).Model(&models.Transaction{}).Where("wallet_id = ?", walletID),
		filter,
	).Select("type, COALESCE(SUM(amount), 0) AS total").Group("type").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &entities.TransactionSummary{}
	for _, r := range rows {
		switch entities.TransactionType(r.Type) {
		case entities.TransactionTypeCredit:
			summary.TotalCredits = r.Total
		case entities.TransactionTypeDebit:
			summary.TotalDebits = r.Total
		}
	}
	return summary, nil
}

// ReplayBalance sums signed amounts from zero in ledger order. Used by
// consistency checks: the result must equal the wallet balance exactly.
func (r *TransactionRepository) ReplayBalance(ctx context.Context, walletID uuid.UUID) (int64, error) {
	db := GetDB(ctx, r.db)
	var ms []models.Transaction
	if err := db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return 0, err
	}
	var balance int64
	for i := range ms {
		balance += ms[i].ToEntity().SignedAmount()
	}
	return balance, nil
}
