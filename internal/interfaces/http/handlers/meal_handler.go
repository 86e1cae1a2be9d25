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

type mealService interface {
	Create(ctx context.Context, input *entities.CreateMealInput) (*entities.Meal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Meal, error)
	List(ctx context.Context, onlyAvailable bool, category *entities.MealCategory, limit, offset int) ([]*entities.Meal, int64, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMealInput) (*entities.Meal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MealHandler handles catalog endpoints
type MealHandler struct {
	mealUsecase mealService
	pagination  config.PaginationConfig
}

// NewMealHandler creates a new meal handler
func NewMealHandler(mealUsecase *usecases.MealUsecase, pagination config.PaginationConfig) *MealHandler {
	return &MealHandler{mealUsecase: mealUsecase, pagination: pagination}
}

// ListMeals returns a catalog page. Staff see hidden meals with ?all=true.
// GET /api/v1/meals
func (h *MealHandler) ListMeals(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	params := utils.GetPaginationParams(page, limit, h.pagination.DefaultLimit, h.pagination.MaxLimit)

	onlyAvailable := true
	if c.Query("all") == "true" {
		if role, ok := middleware.GetUserRole(c); ok && (role == entities.UserRoleStaff || role == entities.UserRoleAdmin) {
			onlyAvailable = false
		}
	}

	var category *entities.MealCategory
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := entities.MealCategory(categoryStr)
		category = &cat
	}

	meals, total, err := h.mealUsecase.List(c.Request.Context(), onlyAvailable, category, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	if meals == nil {
		meals = []*entities.Meal{}
	}

	response.Paginated(c, meals, utils.CalculateMeta(total, params.Page, params.Limit))
}

// GetMeal returns a single meal
// GET /api/v1/meals/:id
func (h *MealHandler) GetMeal(c *gin.Context) {
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid meal ID"))
		return
	}

	meal, err := h.mealUsecase.GetByID(c.Request.Context(), mealID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, meal)
}

// CreateMeal adds a meal to the catalog
// POST /api/v1/staff/meals
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var input entities.CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	meal, err := h.mealUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, meal)
}

// UpdateMeal edits a catalog entry
// PUT /api/v1/staff/meals/:id
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid meal ID"))
		return
	}

	var input entities.UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	meal, err := h.mealUsecase.Update(c.Request.Context(), mealID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, meal)
}

// DeleteMeal soft-deletes a catalog entry
// DELETE /api/v1/staff/meals/:id
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid meal ID"))
		return
	}

	if err := h.mealUsecase.Delete(c.Request.Context(), mealID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Meal deleted", nil)
}
