package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-canteen.backend/internal/config"
	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/interfaces/http/middleware"
	"campus-canteen.backend/internal/interfaces/http/response"
	"campus-canteen.backend/internal/usecases"
	"campus-canteen.backend/pkg/utils"
)

type walletService interface {
	GetOrCreateForUser(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	Recharge(ctx context.Context, userID uuid.UUID, input *entities.RechargeInput) (*entities.Wallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter entities.TransactionFilter, limit, offset int) ([]*entities.Transaction, int64, *entities.TransactionSummary, error)
	Summary(ctx context.Context, userID uuid.UUID) (*entities.WalletSummary, error)
	UpdateBudgetCap(ctx context.Context, userID uuid.UUID, input *entities.UpdateBudgetCapInput) (*entities.Wallet, error)
	ResetAllMonthlySpending(ctx context.Context) (int64, error)
}

// WalletHandler handles wallet endpoints
type WalletHandler struct {
	walletUsecase walletService
	pagination    config.PaginationConfig
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase *usecases.WalletUsecase, pagination config.PaginationConfig) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase, pagination: pagination}
}

// GetWallet returns the current user's wallet
// GET /api/v1/wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.GetOrCreateForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, wallet)
}

// GetSummary returns the balance-and-budget view
// GET /api/v1/wallet/summary
func (h *WalletHandler) GetSummary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	summary, err := h.walletUsecase.Summary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// Recharge credits the current user's wallet
// POST /api/v1/wallet/recharge
func (h *WalletHandler) Recharge(c *gin.Context) {
	var input entities.RechargeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.Recharge(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Wallet recharged successfully", wallet)
}

// UpdateBudgetCap sets the monthly budget cap
// PUT /api/v1/wallet/budget-cap
func (h *WalletHandler) UpdateBudgetCap(c *gin.Context) {
	var input entities.UpdateBudgetCapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.UpdateBudgetCap(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, wallet)
}

// ResetMonthlySpending zeroes monthly_spent on every wallet
// POST /api/v1/staff/wallets/reset-monthly
func (h *WalletHandler) ResetMonthlySpending(c *gin.Context) {
	affected, err := h.walletUsecase.ResetAllMonthlySpending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Monthly spending reset", gin.H{"walletsReset": affected})
}

// ListTransactions returns the user's ledger, newest first
// GET /api/v1/wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	params := utils.GetPaginationParams(page, limit, h.pagination.DefaultLimit, h.pagination.MaxLimit)

	filter := entities.TransactionFilter{}
	if typeStr := c.Query("type"); typeStr != "" {
		txType := entities.TransactionType(typeStr)
		if txType != entities.TransactionTypeCredit && txType != entities.TransactionTypeDebit {
			response.Error(c, domainerrors.BadRequest("Invalid transaction type"))
			return
		}
		filter.Type = &txType
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid from timestamp"))
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid to timestamp"))
			return
		}
		filter.To = &to
	}

	transactions, total, summary, err := h.walletUsecase.ListTransactions(c.Request.Context(), userID, filter, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	if transactions == nil {
		transactions = []*entities.Transaction{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       gin.H{"transactions": transactions, "summary": summary},
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
