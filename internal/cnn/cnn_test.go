package cnn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridnet-ml/gridnet/internal/activation"
	"github.com/gridnet-ml/gridnet/internal/factory"
	"github.com/gridnet-ml/gridnet/internal/matrix"
	"github.com/gridnet-ml/gridnet/internal/random"
)

var demoConfig = Config{
	ConvInputSize:   4,
	KernelSize:      2,
	ConvActFunc:     activation.ReLU,
	PoolSize:        2,
	DenseOutputSize: 1,
	DenseActFunc:    activation.Tanh,
}

// hollowSquare and verticalLine are the two demo training images.
var (
	hollowSquare = matrix.Matrix2d{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}
	verticalLine = matrix.Matrix2d{
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	}
)

func newStubNetwork(t *testing.T) *Network {
	t.Helper()
	src := random.New(1)
	net, err := New(factory.New(factory.Stub, src), demoConfig, src)
	require.NoError(t, err)
	return net
}

func newStandardNetwork(t *testing.T, seed int64) *Network {
	t.Helper()
	src := random.New(seed)
	net, err := New(factory.New(factory.Standard, src), demoConfig, src)
	require.NoError(t, err)
	return net
}

func TestNew_Wiring(t *testing.T) {
	net := newStubNetwork(t)

	assert.Equal(t, 4, net.InputSize())
	assert.Equal(t, 1, net.OutputSize())
	assert.Len(t, net.Output(), 1)
	assert.Len(t, net.ConvOutput(), 2)
}

func TestNew_ConstructionErrors(t *testing.T) {
	src := random.New(1)
	f := factory.New(factory.Standard, src)

	bad := demoConfig
	bad.KernelSize = 0
	_, err := New(f, bad, src)
	assert.Error(t, err)

	bad = demoConfig
	bad.PoolSize = 3
	_, err = New(f, bad, src)
	assert.Error(t, err)

	bad = demoConfig
	bad.DenseOutputSize = 0
	_, err = New(f, bad, src)
	assert.Error(t, err)
}

func TestAddDenseLayer(t *testing.T) {
	net := newStandardNetwork(t, 1)
	require.NoError(t, net.AddDenseLayer(3, activation.Tanh))

	assert.Equal(t, 3, net.OutputSize())
	assert.Len(t, net.Predict(hollowSquare), 3)

	assert.Error(t, net.AddDenseLayer(0, activation.Tanh))
	assert.Equal(t, 3, net.OutputSize())
}

func TestPredict_StubSet(t *testing.T) {
	net := newStubNetwork(t)

	// The stand-in layers validate shapes without computing, so prediction
	// runs the full chain and yields the zeroed output buffer.
	assert.Equal(t, matrix.New1d(1), net.Predict(hollowSquare))
}

func TestPredict_KeepsLastOutputOnMismatch(t *testing.T) {
	net := newStandardNetwork(t, 3)

	first := make(matrix.Matrix1d, 1)
	copy(first, net.Predict(hollowSquare))

	// A wrong-size image fails inside the chain; Predict still returns the
	// previously computed output instead of signaling the failure.
	stale := net.Predict(matrix.New2d(3))
	assert.Equal(t, first, stale)
}

func TestTrain_Preconditions(t *testing.T) {
	trainIn := matrix.Matrix3d{hollowSquare}
	trainOut := matrix.Matrix2d{{0}}

	tests := []struct {
		name         string
		trainIn      matrix.Matrix3d
		trainOut     matrix.Matrix2d
		epochCount   int
		learningRate float64
	}{
		{"zero learning rate", trainIn, trainOut, 10, 0.0},
		{"negative learning rate", trainIn, trainOut, 10, -0.5},
		{"zero epochs", trainIn, trainOut, 0, 0.01},
		{"negative epochs", trainIn, trainOut, -1, 0.01},
		{"no inputs", matrix.Matrix3d{}, trainOut, 10, 0.01},
		{"no outputs", trainIn, matrix.Matrix2d{}, 10, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := newStubNetwork(t)
			assert.False(t, net.Train(tt.trainIn, tt.trainOut, tt.epochCount, tt.learningRate))
		})
	}
}

func TestTrain_StubSet(t *testing.T) {
	net := newStubNetwork(t)

	trainIn := matrix.Matrix3d{hollowSquare, verticalLine}
	trainOut := matrix.Matrix2d{{0}, {1}}

	assert.True(t, net.Train(trainIn, trainOut, 5, 0.01))
}

func TestTrain_UsesMinSetCount(t *testing.T) {
	net := newStubNetwork(t)

	// The second input has no matching output and must not be visited; the
	// effective set count is the shorter of the two slices.
	trainIn := matrix.Matrix3d{hollowSquare, matrix.New2d(3)}
	trainOut := matrix.Matrix2d{{0}}

	assert.True(t, net.Train(trainIn, trainOut, 3, 0.01))
}

func TestTrain_AbortsOnBadSample(t *testing.T) {
	net := newStubNetwork(t)

	trainIn := matrix.Matrix3d{matrix.New2d(3)}
	trainOut := matrix.Matrix2d{{0}}

	assert.False(t, net.Train(trainIn, trainOut, 3, 0.01))
}

func TestTrain_AbortsOnBadTarget(t *testing.T) {
	net := newStubNetwork(t)

	trainIn := matrix.Matrix3d{hollowSquare}
	trainOut := matrix.Matrix2d{{0, 1}}

	assert.False(t, net.Train(trainIn, trainOut, 3, 0.01))
}

func TestTrain_LearnsDemoImages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping training run in short mode")
	}

	net := newStandardNetwork(t, 42)

	trainIn := matrix.Matrix3d{hollowSquare, verticalLine}
	trainOut := matrix.Matrix2d{{0}, {1}}

	require.True(t, net.Train(trainIn, trainOut, 20000, 0.01))

	squarePred := make(matrix.Matrix1d, 1)
	copy(squarePred, net.Predict(hollowSquare))
	linePred := net.Predict(verticalLine)

	assert.Less(t, squarePred[0], 0.5)
	assert.Greater(t, linePred[0], 0.5)
}
