package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupToken_RoundTrip(t *testing.T) {
	orderID := uuid.New()
	studentID := uuid.New()

	token, err := EncodePickupToken(orderID, "ORD-20260830-0042", studentID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := DecodePickupToken(token)
	require.NoError(t, err)
	assert.Equal(t, orderID, payload.OrderID)
	assert.Equal(t, "ORD-20260830-0042", payload.OrderNumber)
	assert.Equal(t, studentID, payload.StudentID)
}

func TestPickupToken_Deterministic(t *testing.T) {
	orderID := uuid.New()
	studentID := uuid.New()

	a, err := EncodePickupToken(orderID, "ORD-1", studentID)
	require.NoError(t, err)
	b, err := EncodePickupToken(orderID, "ORD-1", studentID)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodePickupToken_Malformed(t *testing.T) {
	_, err := DecodePickupToken("%%%not-base64%%%")
	assert.Error(t, err)

	_, err = DecodePickupToken("bm90LWpzb24")
	assert.Error(t, err)
}
