// Copyright 2026 GridNet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layer exposes the network layer components and their three-phase
// training protocol (feedforward, backpropagate, optimize).
//
// # Layers
//
//   - Conv: single-kernel same-size convolution
//   - MaxPool: non-overlapping window max pooling
//   - Flatten: 2D grid to vector reshape
//   - Dense: fully connected layer
//
// Each has a shape-validating stand-in variant (ConvStub, MaxPoolStub,
// FlattenStub, DenseStub) used for integration wiring. Layers are normally
// created through the factory package so a network draws from one consistent
// implementation set.
package layer

import (
	"github.com/gridnet-ml/gridnet/internal/activation"
	"github.com/gridnet-ml/gridnet/internal/layer"
	"github.com/gridnet-ml/gridnet/internal/random"
)

// GridLayer is a layer transforming a square 2D grid into a square 2D grid.
type GridLayer = layer.GridLayer

// FlattenLayer is a layer transforming a square 2D grid into a vector.
type FlattenLayer = layer.FlattenLayer

// DenseLayer is a fully connected layer transforming a vector into a vector.
type DenseLayer = layer.DenseLayer

// Conv is a single-kernel 2D convolution layer.
type Conv = layer.Conv

// NewConv creates a convolution layer.
//
// Example:
//
//	src := random.New(42)
//	conv, err := layer.NewConv(4, 2, activation.ReLU, src)
func NewConv(inputSize, kernelSize int, actFunc activation.Type, src random.Source) (*Conv, error) {
	return layer.NewConv(inputSize, kernelSize, actFunc, src)
}

// MaxPool is a 2D max pooling layer.
type MaxPool = layer.MaxPool

// NewMaxPool creates a max pooling layer. The pool size must evenly divide
// the input size.
func NewMaxPool(inputSize, poolSize int) (*MaxPool, error) {
	return layer.NewMaxPool(inputSize, poolSize)
}

// Flatten reshapes a square 2D grid into a vector and back.
type Flatten = layer.Flatten

// NewFlatten creates a flatten layer for square grids of the given side
// length.
func NewFlatten(inputSize int) (*Flatten, error) {
	return layer.NewFlatten(inputSize)
}

// Dense is a fully connected layer.
type Dense = layer.Dense

// NewDense creates a dense layer with the given sizes and activation type.
//
// Example:
//
//	src := random.New(42)
//	dense, err := layer.NewDense(4, 1, activation.Tanh, src)
func NewDense(inputSize, outputSize int, actFunc activation.Type, src random.Source) (*Dense, error) {
	return layer.NewDense(inputSize, outputSize, actFunc, src)
}

// Stand-in variants.

// ConvStub is the shape-validating stand-in for Conv.
type ConvStub = layer.ConvStub

// NewConvStub creates a convolution stand-in.
func NewConvStub(inputSize, kernelSize int) (*ConvStub, error) {
	return layer.NewConvStub(inputSize, kernelSize)
}

// MaxPoolStub is the shape-validating stand-in for MaxPool.
type MaxPoolStub = layer.MaxPoolStub

// NewMaxPoolStub creates a max pooling stand-in.
func NewMaxPoolStub(inputSize, poolSize int) (*MaxPoolStub, error) {
	return layer.NewMaxPoolStub(inputSize, poolSize)
}

// FlattenStub is the shape-validating stand-in for Flatten.
type FlattenStub = layer.FlattenStub

// NewFlattenStub creates a flatten stand-in.
func NewFlattenStub(inputSize int) (*FlattenStub, error) {
	return layer.NewFlattenStub(inputSize)
}

// DenseStub is the shape-validating stand-in for Dense.
type DenseStub = layer.DenseStub

// NewDenseStub creates a dense stand-in.
func NewDenseStub(inputSize, outputSize int) (*DenseStub, error) {
	return layer.NewDenseStub(inputSize, outputSize)
}
