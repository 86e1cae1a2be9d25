package entities

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot represents a capacity-bounded pickup window. StartTime and
// EndTime are times of day in "HH:MM" form. Date is nil for slots that
// recur weekly on DayOfWeek.
type TimeSlot struct {
	ID            uuid.UUID     `json:"id"`
	StartTime     string        `json:"startTime"`
	EndTime       string        `json:"endTime"`
	Date          *time.Time    `json:"date,omitempty"`
	DayOfWeek     *time.Weekday `json:"dayOfWeek,omitempty"`
	MaxOrders     int           `json:"maxOrders"`
	CurrentOrders int           `json:"currentOrders"`
	IsAvailable   bool          `json:"isAvailable"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// HasCapacity reports whether the slot can take another booking. The
// authoritative check is the conditional increment in storage; this is
// the precondition-time screen only.
func (s *TimeSlot) HasCapacity() bool {
	return s.IsAvailable && s.CurrentOrders < s.MaxOrders
}

// CreateTimeSlotInput is the request body for creating a pickup window.
type CreateTimeSlotInput struct {
	StartTime string        `json:"startTime" binding:"required"`
	EndTime   string        `json:"endTime" binding:"required"`
	Date      *time.Time    `json:"date"`
	DayOfWeek *time.Weekday `json:"dayOfWeek"`
	MaxOrders int           `json:"maxOrders" binding:"required"`
}
