package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, 0, 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = GetPaginationParams(3, 50, 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 100, p.Offset())

	p = GetPaginationParams(1, 500, 20, 100)
	assert.Equal(t, 100, p.Limit, "limit clamps to maximum")
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(45, 2, 20)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 3, meta.Pages)

	meta = CalculateMeta(0, 1, 20)
	assert.Equal(t, 0, meta.Pages)
}
