package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-canteen.backend/internal/domain/entities"
	domainerrors "campus-canteen.backend/internal/domain/errors"
	"campus-canteen.backend/internal/infrastructure/models"
)

// OrderRepository implements order aggregate data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order and its line items.
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	m := models.OrderFromEntity(order)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an order with its line items
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

func applyOrderFilter(q *gorm.DB, filter entities.OrderFilter) *gorm.DB {
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}
	return q
}

// ListByStudent lists a student's orders, newest first.
func (r *OrderRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, filter entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error) {
	db := GetDB(ctx, r.db)
	base := applyOrderFilter(
		db.WithContext(ctx).Model(&models.Order{}).Where("student_id = ?", studentID),
		filter,
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Order
	if err := base.Preload("Items").Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, ms[i].ToEntity())
	}
	return orders, total, nil
}

// List lists all orders for staff views.
func (r *OrderRepository) List(ctx context.Context, filter entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error) {
	db := GetDB(ctx, r.db)
	base := applyOrderFilter(db.WithContext(ctx).Model(&models.Order{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Order
	if err := base.Preload("Items").Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, ms[i].ToEntity())
	}
	return orders, total, nil
}

// UpdateStatus sets the fulfillment status. Transition legality is checked
// in the usecase; this is the storage write only.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus) error {
	return r.targetedUpdate(ctx, id, map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
}

// SetPaymentStatus sets the payment status.
func (r *OrderRepository) SetPaymentStatus(ctx context.Context, id uuid.UUID, status entities.PaymentStatus) error {
	return r.targetedUpdate(ctx, id, map[string]interface{}{
		"payment_status": string(status),
		"updated_at":     time.Now(),
	})
}

// SetPickupCode attaches the generated pickup verification token.
func (r *OrderRepository) SetPickupCode(ctx context.Context, id uuid.UUID, code string) error {
	return r.targetedUpdate(ctx, id, map[string]interface{}{
		"pickup_code": code,
		"updated_at":  time.Now(),
	})
}

// ClaimCancellation moves the order to cancelled in one conditional
// update guarded by the cancellable statuses. Only the caller that flips
// the status runs the refund, so two concurrent cancels cannot both
// credit the wallet.
func (r *OrderRepository) ClaimCancellation(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	update := map[string]interface{}{
		"status":     string(entities.OrderStatusCancelled),
		"updated_at": time.Now(),
	}
	if reason != "" {
		update["cancellation_reason"] = reason
	}
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status IN ?", id, []string{
			string(entities.OrderStatusPending),
			string(entities.OrderStatusConfirmed),
			string(entities.OrderStatusPreparing),
		}).
		Updates(update)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ClaimCollection completes a ready order and records the collecting
// staff member in one conditional update. The ready guard makes a second
// concurrent collect lose, keeping the intake counters single-counted.
func (r *OrderRepository) ClaimCollection(ctx context.Context, id uuid.UUID, staffID uuid.UUID) (bool, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, string(entities.OrderStatusReady)).
		Updates(map[string]interface{}{
			"status":       string(entities.OrderStatusCompleted),
			"collected_by": staffID,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ClaimWellness flips the wellness flag false->true in one conditional
// update. Only one caller across all processes wins the claim, which is
// what guarantees exactly-once wellness application.
func (r *OrderRepository) ClaimWellness(ctx context.Context, id uuid.UUID) (bool, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND wellness_processed = ?", id, false).
		Updates(map[string]interface{}{
			"wellness_processed": true,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ReleaseWellnessClaim returns a claimed order to the unprocessed pool
// after its stats application failed, so the sweep retries it.
func (r *OrderRepository) ReleaseWellnessClaim(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"wellness_processed": false,
			"updated_at":         time.Now(),
		}).Error
}

// FindWellnessUnprocessed returns countable orders the wellness aggregate
// has not seen yet. The predicate mirrors entities.Order.Countable.
func (r *OrderRepository) FindWellnessUnprocessed(ctx context.Context, limit int) ([]*entities.Order, error) {
	db := GetDB(ctx, r.db)
	var ms []models.Order
	err := db.WithContext(ctx).Preload("Items").
		Where("wellness_processed = ? AND (payment_status = ? OR status = ?)",
			false, string(entities.PaymentStatusPaid), string(entities.OrderStatusCompleted)).
		Order("created_at ASC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, ms[i].ToEntity())
	}
	return orders, nil
}

func (r *OrderRepository) targetedUpdate(ctx context.Context, id uuid.UUID, update map[string]interface{}) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(update)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
