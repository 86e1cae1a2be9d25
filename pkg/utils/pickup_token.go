package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// PickupTokenPayload identifies an order for handoff verification. The
// encoded form is what the client renders as a scannable code.
type PickupTokenPayload struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	StudentID   uuid.UUID `json:"studentId"`
}

// EncodePickupToken produces the opaque pickup token for an order. The
// encoding is deterministic: the same order always yields the same token.
func EncodePickupToken(orderID uuid.UUID, orderNumber string, studentID uuid.UUID) (string, error) {
	payload := PickupTokenPayload{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		StudentID:   studentID,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode pickup token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodePickupToken parses a scanned pickup token back into its payload.
func DecodePickupToken(token string) (*PickupTokenPayload, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("malformed pickup token: %w", err)
	}
	var payload PickupTokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("malformed pickup token: %w", err)
	}
	return &payload, nil
}
