package deliverygorm

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_RejectsOverflowingPage(t *testing.T) {
	repo := NewRepository(nil)

	items, total, err := repo.List(context.Background(), "", math.MaxInt, 100)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.Nil(t, items)
	assert.Zero(t, total)
}
