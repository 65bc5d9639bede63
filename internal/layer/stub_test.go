package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridnet-ml/gridnet/internal/matrix"
)

func TestConvStub(t *testing.T) {
	c, err := NewConvStub(4, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, c.InputSize())
	assert.Equal(t, 4, c.OutputSize())

	// Valid shapes pass validation; no math runs and the output stays zero.
	assert.True(t, c.Feedforward(matrix.Matrix2d{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}))
	assert.Equal(t, matrix.New2d(4), c.Output())

	assert.True(t, c.Backpropagate(matrix.New2d(4)))
	assert.Equal(t, matrix.New2d(4), c.InputGradients())

	assert.True(t, c.Optimize(0.1))
	assert.False(t, c.Optimize(0.0))

	assert.False(t, c.Feedforward(matrix.New2d(3)))
	assert.False(t, c.Backpropagate(matrix.New2d(5)))
}

func TestConvStub_ConstructionErrors(t *testing.T) {
	_, err := NewConvStub(4, 0)
	assert.Error(t, err)

	_, err = NewConvStub(2, 3)
	assert.Error(t, err)
}

func TestMaxPoolStub(t *testing.T) {
	p, err := NewMaxPoolStub(4, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, p.InputSize())
	assert.Equal(t, 2, p.OutputSize())

	assert.True(t, p.Feedforward(matrix.New2d(4)))
	assert.True(t, p.Backpropagate(matrix.New2d(2)))
	assert.Equal(t, matrix.New2d(2), p.Output())
	assert.Equal(t, matrix.New2d(4), p.InputGradients())

	// Optimization is a no-op even with an invalid learning rate.
	assert.True(t, p.Optimize(-1.0))

	assert.False(t, p.Feedforward(matrix.New2d(2)))
	assert.False(t, p.Backpropagate(matrix.New2d(4)))

	_, err = NewMaxPoolStub(5, 2)
	assert.Error(t, err)
}

func TestFlattenStub(t *testing.T) {
	f, err := NewFlattenStub(2)
	require.NoError(t, err)

	assert.Equal(t, 2, f.InputSize())
	assert.Equal(t, 4, f.OutputSize())

	assert.True(t, f.Feedforward(matrix.Matrix2d{{1, 2}, {3, 4}}))
	assert.Equal(t, matrix.New1d(4), f.Output())

	assert.True(t, f.Backpropagate(matrix.New1d(4)))
	assert.False(t, f.Backpropagate(matrix.New1d(3)))

	_, err = NewFlattenStub(0)
	assert.Error(t, err)
}

func TestDenseStub(t *testing.T) {
	d, err := NewDenseStub(4, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, d.InputSize())
	assert.Equal(t, 1, d.OutputSize())

	assert.True(t, d.Feedforward(matrix.New1d(4)))
	assert.Equal(t, matrix.New1d(1), d.Output())

	assert.True(t, d.Backpropagate(matrix.New1d(1)))
	assert.Equal(t, matrix.New1d(4), d.InputGradients())

	next, err := NewDenseStub(1, 1)
	require.NoError(t, err)
	assert.True(t, next.BackpropagateHidden(next))

	assert.True(t, d.Optimize(matrix.New1d(4), 0.1))
	assert.False(t, d.Optimize(matrix.New1d(4), 0.0))
	assert.False(t, d.Optimize(matrix.New1d(3), 0.1))

	_, err = NewDenseStub(0, 1)
	assert.Error(t, err)
}
