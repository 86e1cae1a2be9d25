package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"campus-canteen.backend/internal/config"
	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/domain/repositories"
	"campus-canteen.backend/pkg/logger"
	"campus-canteen.backend/pkg/metrics"
	"campus-canteen.backend/pkg/utils"
)

// OrderUsecase orchestrates the order lifecycle: creation with payment,
// staff status transitions, cancellation with refund, and pickup handoff.
type OrderUsecase struct {
	orderRepo   repositories.OrderRepository
	mealRepo    repositories.MealRepository
	slotRepo    repositories.TimeSlotRepository
	userRepo    repositories.UserRepository
	walletRepo  repositories.WalletRepository
	uow         repositories.UnitOfWork
	walletUC    *WalletUsecase
	wellnessUC  *WellnessUsecase
	wellnessCfg config.WellnessConfig
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	mealRepo repositories.MealRepository,
	slotRepo repositories.TimeSlotRepository,
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	uow repositories.UnitOfWork,
	walletUC *WalletUsecase,
	wellnessUC *WellnessUsecase,
	wellnessCfg config.WellnessConfig,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		mealRepo:    mealRepo,
		slotRepo:    slotRepo,
		userRepo:    userRepo,
		walletRepo:  walletRepo,
		uow:         uow,
		walletUC:    walletUC,
		wellnessUC:  wellnessUC,
		wellnessCfg: wellnessCfg,
	}
}

// Create places an order. Preconditions are checked in a fixed sequence so
// clients get a stable first failure; payment, slot booking and wellness
// application follow. Wellness failures never fail the order: the
// reconciliation sweep repairs them.
func (u *OrderUsecase) Create(ctx context.Context, studentID uuid.UUID, input *entities.CreateOrderInput) (*entities.CreateOrderResponse, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidInput
		}
	}
	if input.PaymentMethod != entities.PaymentMethodWallet && input.PaymentMethod != entities.PaymentMethodCashOnDelivery {
		return nil, domainerrors.ErrInvalidInput
	}

	student, err := u.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.OnboardingCompleted {
		return nil, domainerrors.ErrOnboardingRequired
	}

	now := time.Now()
	order := &entities.Order{
		ID:            uuid.New(),
		OrderNumber:   utils.GenerateOrderNumber(now),
		StudentID:     studentID,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: entities.PaymentStatusPending,
		Status:        entities.OrderStatusPending,
	}
	if input.SpecialInstructions != "" {
		order.SpecialInstructions = null.StringFrom(input.SpecialInstructions)
	}

	// Snapshot every line item from the catalog as it stands right now.
	for _, item := range input.Items {
		meal, mealErr := u.mealRepo.GetByID(ctx, item.MealID)
		if mealErr != nil {
			return nil, mealErr
		}
		if !meal.AvailableOn(now.Weekday()) {
			return nil, fmt.Errorf("%w: %s", domainerrors.ErrMealUnavailable, meal.Name)
		}
		qty := float64(item.Quantity)
		order.Items = append(order.Items, entities.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			MealID:    meal.ID,
			MealName:  meal.Name,
			Quantity:  item.Quantity,
			UnitPrice: meal.Price,
			Nutrition: meal.Nutrition,
			Meal:      meal,
		})
		order.TotalPrice += meal.Price * int64(item.Quantity)
		order.TotalCalories += meal.Nutrition.Calories * qty
		order.TotalProteins += meal.Nutrition.Proteins * qty
		order.TotalCarbs += meal.Nutrition.Carbohydrates * qty
	}

	// Precondition screen on the slot; the authoritative capacity check is
	// the conditional increment after payment.
	var slot *entities.TimeSlot
	if input.PickupSlotID != nil {
		slot, err = u.slotRepo.GetByID(ctx, *input.PickupSlotID)
		if err != nil {
			return nil, err
		}
		if !slot.HasCapacity() {
			return nil, domainerrors.ErrSlotFull
		}
		order.PickupSlotID = &slot.ID
		if pickupAt := slotEnd(slot, now); pickupAt != nil {
			order.PickupAt = pickupAt
		}
	}

	var wallet *entities.Wallet
	budgetWarning := ""
	if input.PaymentMethod == entities.PaymentMethodWallet {
		wallet, err = u.walletUC.GetOrCreateForUser(ctx, studentID)
		if err != nil {
			return nil, err
		}
		if !wallet.IsActive {
			return nil, domainerrors.ErrWalletInactive
		}
		if !wallet.CanAfford(order.TotalPrice) {
			return nil, domainerrors.ErrInsufficientBalance
		}
		if wallet.ExceedsBudget(order.TotalPrice) {
			budgetWarning = "this order exceeds your monthly budget cap"
		}
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	order.CreatedAt = now

	// The pickup code is a convenience; creation proceeds without it.
	if code, codeErr := utils.EncodePickupToken(order.ID, order.OrderNumber, studentID); codeErr == nil {
		if setErr := u.orderRepo.SetPickupCode(ctx, order.ID, code); setErr == nil {
			order.PickupCode = null.StringFrom(code)
		} else {
			logger.Warn(ctx, "failed to store pickup code",
				zap.String("order_id", order.ID.String()), zap.Error(setErr))
		}
	}

	if input.PaymentMethod == entities.PaymentMethodWallet {
		err = u.uow.Do(ctx, func(ctx context.Context) error {
			description := fmt.Sprintf("Order %s", order.OrderNumber)
			if chargeErr := u.walletUC.chargeForOrder(ctx, studentID, wallet.ID, order.TotalPrice, order.ID, description); chargeErr != nil {
				return chargeErr
			}
			return u.orderRepo.SetPaymentStatus(ctx, order.ID, entities.PaymentStatusPaid)
		})
		if err != nil {
			// Leave the unpaid order behind in pending; the client may retry
			// or cancel it.
			return nil, err
		}
		order.PaymentStatus = entities.PaymentStatusPaid
		metrics.WalletOperations.WithLabelValues("order_charge").Inc()
	}

	if slot != nil {
		if bookErr := u.slotRepo.Book(ctx, slot.ID); bookErr != nil {
			if errors.Is(bookErr, domainerrors.ErrSlotFull) {
				u.compensateSlotRace(ctx, order, wallet)
				return nil, domainerrors.ErrSlotFull
			}
			logger.Error(ctx, "slot booking failed after payment",
				zap.String("order_id", order.ID.String()), zap.Error(bookErr))
			return nil, bookErr
		}
	}

	// Wellness stats apply best effort on the creation path.
	if _, wellnessErr := u.wellnessUC.ApplyOrder(ctx, order); wellnessErr != nil {
		logger.Warn(ctx, "wellness stats deferred to reconciliation sweep",
			zap.String("order_id", order.ID.String()), zap.Error(wellnessErr))
	} else if order.Countable() {
		order.WellnessProcessed = true
	}

	for _, item := range order.Items {
		if incErr := u.mealRepo.IncrementOrderCount(ctx, item.MealID, int64(item.Quantity)); incErr != nil {
			logger.Warn(ctx, "failed to bump meal order counter",
				zap.String("meal_id", item.MealID.String()), zap.Error(incErr))
		}
	}

	metrics.OrdersCreated.WithLabelValues(string(input.PaymentMethod)).Inc()
	return &entities.CreateOrderResponse{Order: order, BudgetWarning: budgetWarning}, nil
}

// compensateSlotRace unwinds an order whose slot filled up between the
// precondition screen and the booking increment: refund the payment, mark
// it refunded and cancel the order.
func (u *OrderUsecase) compensateSlotRace(ctx context.Context, order *entities.Order, wallet *entities.Wallet) {
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		won, claimErr := u.orderRepo.ClaimCancellation(ctx, order.ID, "pickup slot filled up")
		if claimErr != nil {
			return claimErr
		}
		if !won {
			// A concurrent cancel already unwound the order, refund included.
			return nil
		}
		if order.PaymentStatus == entities.PaymentStatusPaid && wallet != nil {
			description := fmt.Sprintf("Refund for order %s (pickup slot full)", order.OrderNumber)
			if refundErr := u.walletUC.refundToWallet(ctx, order.StudentID, wallet.ID, order.TotalPrice, order.ID, description); refundErr != nil {
				return refundErr
			}
			if payErr := u.orderRepo.SetPaymentStatus(ctx, order.ID, entities.PaymentStatusRefunded); payErr != nil {
				return payErr
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "slot race compensation failed; order needs manual review",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}
}

// GetOrder returns an order visible to the requester: the owning student,
// or any staff member.
func (u *OrderUsecase) GetOrder(ctx context.Context, requesterID uuid.UUID, requesterRole entities.UserRole, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.StudentID != requesterID && requesterRole != entities.UserRoleStaff && requesterRole != entities.UserRoleAdmin {
		return nil, domainerrors.ErrForbidden
	}
	return order, nil
}

// ListMine returns the requesting student's orders, newest first.
func (u *OrderUsecase) ListMine(ctx context.Context, studentID uuid.UUID, filter entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error) {
	return u.orderRepo.ListByStudent(ctx, studentID, filter, limit, offset)
}

// ListAll returns all orders for staff, newest first.
func (u *OrderUsecase) ListAll(ctx context.Context, filter entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error) {
	return u.orderRepo.List(ctx, filter, limit, offset)
}

// UpdateStatus applies a staff status transition. Completing an order also
// counts it into the wellness aggregate.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID uuid.UUID, next entities.OrderStatus) (*entities.Order, error) {
	if !next.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domainerrors.ErrInvalidTransition, order.Status, next)
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	order.Status = next

	if next == entities.OrderStatusCompleted {
		if applied, wellnessErr := u.wellnessUC.ApplyOrder(ctx, order); wellnessErr != nil {
			logger.Warn(ctx, "wellness stats deferred to reconciliation sweep",
				zap.String("order_id", order.ID.String()), zap.Error(wellnessErr))
		} else if applied {
			order.WellnessProcessed = true
		}
	}
	return order, nil
}

// Cancel cancels an order on the student's behalf, refunding wallet
// payments and releasing the pickup slot.
func (u *OrderUsecase) Cancel(ctx context.Context, studentID, orderID uuid.UUID, input *entities.CancelOrderInput) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.StudentID != studentID {
		return nil, domainerrors.ErrForbidden
	}
	if !order.Status.IsCancellable() {
		return nil, fmt.Errorf("%w: order is %s", domainerrors.ErrCannotCancel, order.Status)
	}

	reason := input.Reason
	if reason == "" {
		reason = "cancelled by student"
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		// The conditional claim decides the race between concurrent cancels:
		// only the transaction that flips the status issues the refund.
		won, claimErr := u.orderRepo.ClaimCancellation(ctx, order.ID, reason)
		if claimErr != nil {
			return claimErr
		}
		if !won {
			return fmt.Errorf("%w: order can no longer be cancelled", domainerrors.ErrCannotCancel)
		}
		if order.PaymentStatus == entities.PaymentStatusPaid && order.PaymentMethod == entities.PaymentMethodWallet {
			wallet, walletErr := u.walletRepo.GetByUserID(ctx, studentID)
			if walletErr != nil {
				return walletErr
			}
			description := fmt.Sprintf("Refund for order %s", order.OrderNumber)
			if refundErr := u.walletUC.refundToWallet(ctx, studentID, wallet.ID, order.TotalPrice, order.ID, description); refundErr != nil {
				return refundErr
			}
			if payErr := u.orderRepo.SetPaymentStatus(ctx, order.ID, entities.PaymentStatusRefunded); payErr != nil {
				return payErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if order.PickupSlotID != nil {
		if releaseErr := u.slotRepo.Release(ctx, *order.PickupSlotID); releaseErr != nil {
			logger.Warn(ctx, "failed to release pickup slot",
				zap.String("order_id", order.ID.String()), zap.Error(releaseErr))
		}
	}

	if reverseErr := u.wellnessUC.ReverseOrder(ctx, order,
		u.wellnessCfg.ReverseSpendOnCancel, u.wellnessCfg.ReverseNutritionOnCancel); reverseErr != nil {
		logger.Warn(ctx, "failed to reverse wellness stats",
			zap.String("order_id", order.ID.String()), zap.Error(reverseErr))
	}

	metrics.OrdersCancelled.Inc()
	return u.orderRepo.GetByID(ctx, orderID)
}

// Collect hands a ready order to the student. Staff scan the pickup code;
// when one is supplied it must match the order.
func (u *OrderUsecase) Collect(ctx context.Context, staffID, orderID uuid.UUID, input *entities.CollectOrderInput) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entities.OrderStatusReady {
		return nil, fmt.Errorf("%w: order is %s", domainerrors.ErrNotReady, order.Status)
	}

	if input != nil && input.PickupCode != "" {
		payload, decodeErr := utils.DecodePickupToken(input.PickupCode)
		if decodeErr != nil || payload.OrderID != order.ID || payload.StudentID != order.StudentID {
			return nil, domainerrors.ErrPickupCodeMismatch
		}
	}

	// The ready guard on the claim decides concurrent collects: the loser
	// must not count the intake a second time.
	won, err := u.orderRepo.ClaimCollection(ctx, orderID, staffID)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, fmt.Errorf("%w: order was already collected", domainerrors.ErrNotReady)
	}
	order.Status = entities.OrderStatusCompleted

	// Collection is the moment the food is actually eaten; bump the
	// student's profile intake counters best effort.
	if intakeErr := u.userRepo.AddDailyIntake(ctx, order.StudentID, time.Now(),
		order.TotalCalories, order.TotalProteins, order.TotalCarbs); intakeErr != nil {
		logger.Warn(ctx, "failed to record daily intake",
			zap.String("order_id", order.ID.String()), zap.Error(intakeErr))
	}

	if applied, wellnessErr := u.wellnessUC.ApplyOrder(ctx, order); wellnessErr != nil {
		logger.Warn(ctx, "wellness stats deferred to reconciliation sweep",
			zap.String("order_id", order.ID.String()), zap.Error(wellnessErr))
	} else if applied {
		order.WellnessProcessed = true
	}

	return u.orderRepo.GetByID(ctx, orderID)
}

// slotEnd resolves the wall-clock end of a pickup slot on its date, or on
// today for recurring slots. Nil when the end time cannot be parsed.
func slotEnd(slot *entities.TimeSlot, now time.Time) *time.Time {
	parsed, err := time.Parse("15:04", slot.EndTime)
	if err != nil {
		return nil
	}
	day := now
	if slot.Date != nil {
		day = *slot.Date
	}
	end := time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	return &end
}
