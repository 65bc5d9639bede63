package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridnet-ml/gridnet/internal/matrix"
)

func TestFlatten_Construction(t *testing.T) {
	f, err := NewFlatten(3)
	require.NoError(t, err)

	assert.Equal(t, 3, f.InputSize())
	assert.Equal(t, 9, f.OutputSize())

	_, err = NewFlatten(0)
	assert.Error(t, err)
}

func TestFlatten_Feedforward(t *testing.T) {
	f, err := NewFlatten(2)
	require.NoError(t, err)

	require.True(t, f.Feedforward(matrix.Matrix2d{{1, 2}, {3, 4}}))
	assert.Equal(t, matrix.Matrix1d{1, 2, 3, 4}, f.Output())
}

func TestFlatten_Backpropagate(t *testing.T) {
	f, err := NewFlatten(2)
	require.NoError(t, err)

	require.True(t, f.Backpropagate(matrix.Matrix1d{1, 2, 3, 4}))
	assert.Equal(t, matrix.Matrix2d{{1, 2}, {3, 4}}, f.InputGradients())
}

func TestFlatten_RoundTrip(t *testing.T) {
	f, err := NewFlatten(3)
	require.NoError(t, err)

	input := matrix.Matrix2d{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	require.True(t, f.Feedforward(input))
	require.True(t, f.Backpropagate(f.Output()))

	assert.Equal(t, input, f.InputGradients())
}

func TestFlatten_DimensionMismatch(t *testing.T) {
	f, err := NewFlatten(2)
	require.NoError(t, err)

	assert.False(t, f.Feedforward(matrix.New2d(3)))
	assert.False(t, f.Feedforward(matrix.Matrix2d{{1, 2}, {3}})) // not square
	assert.False(t, f.Backpropagate(matrix.Matrix1d{1, 2, 3}))

	assert.Equal(t, 2, f.InputSize())
	assert.Equal(t, 4, f.OutputSize())
}
