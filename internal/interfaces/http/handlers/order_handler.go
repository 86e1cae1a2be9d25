package handlers

import (
	"context"
	"net/http"
	"strconv"

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

type orderService interface {
	Create(ctx context.Context, studentID uuid.UUID, input *entities.CreateOrderInput) (*entities.CreateOrderResponse, error)
	GetOrder(ctx context.Context, requesterID uuid.UUID, requesterRole entities.UserRole, orderID uuid.UUID) (*entities.Order, error)
	ListMine(ctx context.Context, studentID uuid.UUID, filter entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error)
	ListAll(ctx context.Context, filter entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, next entities.OrderStatus) (*entities.Order, error)
	Cancel(ctx context.Context, studentID, orderID uuid.UUID, input *entities.CancelOrderInput) (*entities.Order, error)
	Collect(ctx context.Context, staffID, orderID uuid.UUID, input *entities.CollectOrderInput) (*entities.Order, error)
}

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderUsecase orderService
	pagination   config.PaginationConfig
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase, pagination config.PaginationConfig) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, pagination: pagination}
}

// CreateOrder places an order
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	resp, err := h.orderUsecase.Create(c.Request.Context(), studentID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// GetOrder returns a single order
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	order, err := h.orderUsecase.GetOrder(c.Request.Context(), userID, role, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// ListMyOrders returns the current student's orders
// GET /api/v1/orders
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	filter, params, err := h.listParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	orders, total, err := h.orderUsecase.ListMine(c.Request.Context(), studentID, filter, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	if orders == nil {
		orders = []*entities.Order{}
	}

	response.Paginated(c, orders, utils.CalculateMeta(total, params.Page, params.Limit))
}

// ListAllOrders returns every order for staff
// GET /api/v1/staff/orders
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	filter, params, err := h.listParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	orders, total, err := h.orderUsecase.ListAll(c.Request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	if orders == nil {
		orders = []*entities.Order{}
	}

	response.Paginated(c, orders, utils.CalculateMeta(total, params.Page, params.Limit))
}

// UpdateStatus applies a staff status transition
// PUT /api/v1/staff/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	var input entities.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	order, err := h.orderUsecase.UpdateStatus(c.Request.Context(), orderID, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// CancelOrder cancels the current student's order
// POST /api/v1/orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	var input entities.CancelOrderInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	order, err := h.orderUsecase.Cancel(c.Request.Context(), studentID, orderID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Order cancelled", order)
}

// CollectOrder hands a ready order over at the counter
// POST /api/v1/staff/orders/:id/collect
func (h *OrderHandler) CollectOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	var input entities.CollectOrderInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	staffID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	order, err := h.orderUsecase.Collect(c.Request.Context(), staffID, orderID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Order collected", order)
}

func (h *OrderHandler) listParams(c *gin.Context) (entities.OrderFilter, utils.PaginationParams, error) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	params := utils.GetPaginationParams(page, limit, h.pagination.DefaultLimit, h.pagination.MaxLimit)

	filter := entities.OrderFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		status := entities.OrderStatus(statusStr)
		if !status.Valid() {
			return filter, params, domainerrors.BadRequest("Invalid order status")
		}
		filter.Status = &status
	}
	return filter, params, nil
}
