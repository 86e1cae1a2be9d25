package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/pkg/utils"
)

// Success sends a success envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithMessage sends a success envelope with a human-readable message
func SuccessWithMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Paginated sends a success envelope with pagination metadata
func Paginated(c *gin.Context, data interface{}, meta utils.PaginationMeta) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": meta,
	})
}

// sentinelStatus maps domain sentinel errors onto HTTP semantics. Handlers
// that want a custom message build their own AppError instead.
func sentinelStatus(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Resource already exists")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("Unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Forbidden")
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrInvalidAmount),
		errors.Is(err, domainerrors.ErrEmptyOrder):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrInsufficientBalance),
		errors.Is(err, domainerrors.ErrWalletInactive),
		errors.Is(err, domainerrors.ErrOnboardingRequired),
		errors.Is(err, domainerrors.ErrMealUnavailable),
		errors.Is(err, domainerrors.ErrSlotFull),
		errors.Is(err, domainerrors.ErrInvalidTransition),
		errors.Is(err, domainerrors.ErrCannotCancel),
		errors.Is(err, domainerrors.ErrNotReady),
		errors.Is(err, domainerrors.ErrPickupCodeMismatch):
		return domainerrors.ConflictWith(err.Error(), err)
	}
	return nil
}

// Error sends an error envelope
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		if mapped := sentinelStatus(err); mapped != nil {
			appErr = mapped
		} else {
			appErr = domainerrors.InternalError(err)
		}
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
