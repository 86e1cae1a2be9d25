package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod represents how an order is paid
type PaymentMethod string

const (
	PaymentMethodWallet         PaymentMethod = "wallet"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// allowedTransitions is the order status state machine. Transitions not
// listed here are rejected.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsCancellable reports whether an order in this status may still be cancelled.
func (s OrderStatus) IsCancellable() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing:
		return true
	}
	return false
}

// Valid reports whether the value is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// OrderItem is a line item with price and nutrition snapshotted from the
// meal at creation time. The snapshot is frozen: later menu edits must not
// change historical orders.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	MealID    uuid.UUID       `json:"mealId"`
	MealName  string          `json:"mealName"`
	Quantity  int             `json:"quantity"`
	UnitPrice int64           `json:"unitPrice"`
	Nutrition NutritionalInfo `json:"nutritionalInfo"`

	Meal *Meal `json:"meal,omitempty"`
}

// Order is the central purchase aggregate.
type Order struct {
	ID                  uuid.UUID     `json:"id"`
	OrderNumber         string        `json:"orderNumber"`
	StudentID           uuid.UUID     `json:"studentId"`
	Items               []OrderItem   `json:"items"`
	TotalPrice          int64         `json:"totalPrice"`
	TotalCalories       float64       `json:"totalCalories"`
	TotalProteins       float64       `json:"totalProteins"`
	TotalCarbs          float64       `json:"totalCarbs"`
	PickupSlotID        *uuid.UUID    `json:"pickupTimeSlot,omitempty"`
	PickupAt            *time.Time    `json:"pickupTimeEnd,omitempty"`
	PaymentMethod       PaymentMethod `json:"paymentMethod"`
	PaymentStatus       PaymentStatus `json:"paymentStatus"`
	Status              OrderStatus   `json:"status"`
	WellnessProcessed   bool          `json:"wellnessProcessed"`
	PickupCode          null.String   `json:"qrCode,omitempty"`
	SpecialInstructions null.String   `json:"specialInstructions,omitempty"`
	CancellationReason  null.String   `json:"cancellationReason,omitempty"`
	CollectedBy         *uuid.UUID    `json:"collectedBy,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// Countable reports whether this order's nutrition and spend should be
// counted into the wellness aggregate. The single predicate shared by the
// creation path, the status-update path and the reconciliation sweep.
func (o *Order) Countable() bool {
	return o.PaymentStatus == PaymentStatusPaid || o.Status == OrderStatusCompleted
}

// WellnessDay resolves the calendar day the order counts toward: the
// pickup time when present, the creation time otherwise.
func (o *Order) WellnessDay() time.Time {
	if o.PickupAt != nil {
		return *o.PickupAt
	}
	return o.CreatedAt
}

// OrderItemInput is one requested line item.
type OrderItemInput struct {
	MealID   uuid.UUID `json:"mealId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderInput is the request body for placing an order.
type CreateOrderInput struct {
	Items               []OrderItemInput `json:"items" binding:"required"`
	PickupSlotID        *uuid.UUID       `json:"pickupTimeSlot"`
	PaymentMethod       PaymentMethod    `json:"paymentMethod" binding:"required"`
	SpecialInstructions string           `json:"specialInstructions"`
}

// CreateOrderResponse wraps the created order with the advisory budget warning.
type CreateOrderResponse struct {
	Order         *Order `json:"order"`
	BudgetWarning string `json:"budgetWarning,omitempty"`
}

// CancelOrderInput carries the optional cancellation reason.
type CancelOrderInput struct {
	Reason string `json:"reason"`
}

// UpdateOrderStatusInput is the staff request body for a status change.
type UpdateOrderStatusInput struct {
	Status OrderStatus `json:"status" binding:"required"`
}

// CollectOrderInput optionally carries the scanned pickup code for verification.
type CollectOrderInput struct {
	PickupCode string `json:"qrCode"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Status *OrderStatus
	From   *time.Time
	To     *time.Time
}
