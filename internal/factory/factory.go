// Package factory constructs consistent sets of layer instances.
//
// Two parallel implementation sets exist: the standard set with the real
// layer math, and the stand-in set whose layers validate shapes without
// computing anything. A network built from either set has identical chain
// geometry, so the stand-in set can exercise the full wiring and training
// loop.
package factory

import (
	"github.com/gridnet-ml/gridnet/internal/activation"
	"github.com/gridnet-ml/gridnet/internal/layer"
	"github.com/gridnet-ml/gridnet/internal/random"
)

// Variant selects which layer implementation set a factory produces.
type Variant int

const (
	// Standard produces the fully functional layer set.
	Standard Variant = iota

	// Stub produces the shape-validating stand-in set.
	Stub
)

// Factory creates activation functions and layer instances. Every layer
// returned by one factory belongs to the same implementation set.
type Factory interface {
	// ActFunc returns the activation function for the given type.
	ActFunc(t activation.Type) activation.Func

	// ConvLayer creates a convolution layer.
	ConvLayer(inputSize, kernelSize int, actFunc activation.Type) (layer.GridLayer, error)

	// MaxPoolLayer creates a max pooling layer.
	MaxPoolLayer(inputSize, poolSize int) (layer.GridLayer, error)

	// FlattenLayer creates a flatten layer.
	FlattenLayer(inputSize int) (layer.FlattenLayer, error)

	// DenseLayer creates a dense layer.
	DenseLayer(inputSize, outputSize int, actFunc activation.Type) (layer.DenseLayer, error)
}

// New returns a factory for the given variant. The random source is threaded
// into every layer the factory creates.
func New(variant Variant, src random.Source) Factory {
	if variant == Stub {
		return stubFactory{}
	}
	return standardFactory{src: src}
}

// standardFactory produces the fully functional layer set.
type standardFactory struct {
	src random.Source
}

func (standardFactory) ActFunc(t activation.Type) activation.Func {
	return activation.ForType(t)
}

func (f standardFactory) ConvLayer(inputSize, kernelSize int, actFunc activation.Type) (layer.GridLayer, error) {
	return layer.NewConv(inputSize, kernelSize, actFunc, f.src)
}

func (standardFactory) MaxPoolLayer(inputSize, poolSize int) (layer.GridLayer, error) {
	return layer.NewMaxPool(inputSize, poolSize)
}

func (standardFactory) FlattenLayer(inputSize int) (layer.FlattenLayer, error) {
	return layer.NewFlatten(inputSize)
}

func (f standardFactory) DenseLayer(inputSize, outputSize int, actFunc activation.Type) (layer.DenseLayer, error) {
	return layer.NewDense(inputSize, outputSize, actFunc, f.src)
}

// stubFactory produces the shape-validating stand-in set.
type stubFactory struct{}

func (stubFactory) ActFunc(t activation.Type) activation.Func {
	return activation.ForType(t)
}

func (stubFactory) ConvLayer(inputSize, kernelSize int, _ activation.Type) (layer.GridLayer, error) {
	return layer.NewConvStub(inputSize, kernelSize)
}

func (stubFactory) MaxPoolLayer(inputSize, poolSize int) (layer.GridLayer, error) {
	return layer.NewMaxPoolStub(inputSize, poolSize)
}

func (stubFactory) FlattenLayer(inputSize int) (layer.FlattenLayer, error) {
	return layer.NewFlattenStub(inputSize)
}

func (stubFactory) DenseLayer(inputSize, outputSize int, _ activation.Type) (layer.DenseLayer, error) {
	return layer.NewDenseStub(inputSize, outputSize)
}
