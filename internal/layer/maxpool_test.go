package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridnet-ml/gridnet/internal/matrix"
)

func TestMaxPool_Construction(t *testing.T) {
	p, err := NewMaxPool(4, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, p.InputSize())
	assert.Equal(t, 2, p.OutputSize())
	assert.Equal(t, 2, p.PoolSize())
}

func TestMaxPool_ConstructionErrors(t *testing.T) {
	tests := []struct {
		name      string
		inputSize int
		poolSize  int
	}{
		{"zero input size", 0, 2},
		{"zero pool size", 4, 0},
		{"input smaller than pool", 2, 4},
		{"not divisible", 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMaxPool(tt.inputSize, tt.poolSize)
			assert.Error(t, err)
		})
	}
}

func TestMaxPool_Feedforward(t *testing.T) {
	p, err := NewMaxPool(4, 2)
	require.NoError(t, err)

	// Sequential values 1-16; each 2x2 window reduces to its maximum.
	input := matrix.Matrix2d{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	require.True(t, p.Feedforward(input))

	assert.Equal(t, matrix.Matrix2d{{6, 8}, {14, 16}}, p.Output())
}

func TestMaxPool_Backpropagate(t *testing.T) {
	p, err := NewMaxPool(4, 2)
	require.NoError(t, err)

	input := matrix.Matrix2d{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	require.True(t, p.Feedforward(input))
	require.True(t, p.Backpropagate(matrix.Matrix2d{{1, 2}, {3, 4}}))

	// Each gradient lands on its window's argmax position; the rest stay 0.
	want := matrix.Matrix2d{
		{0, 0, 0, 0},
		{0, 1, 0, 2},
		{0, 0, 0, 0},
		{0, 3, 0, 4},
	}
	assert.Equal(t, want, p.InputGradients())
}

func TestMaxPool_OptimizeIsNoOp(t *testing.T) {
	p, err := NewMaxPool(4, 2)
	require.NoError(t, err)

	// No trainable parameters: optimization succeeds regardless of the
	// learning rate.
	assert.True(t, p.Optimize(0.1))
	assert.True(t, p.Optimize(-1.0))
}

func TestMaxPool_DimensionMismatch(t *testing.T) {
	p, err := NewMaxPool(4, 2)
	require.NoError(t, err)

	assert.False(t, p.Feedforward(matrix.New2d(3)))
	assert.False(t, p.Backpropagate(matrix.New2d(4)))

	assert.Equal(t, 4, p.InputSize())
	assert.Equal(t, 2, p.OutputSize())
}
