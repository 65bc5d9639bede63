// Package layer implements the network layer components: convolution, max
// pooling, flatten, and dense, plus the shape-validating stand-in variants
// used for integration wiring before the real math is in place.
//
// Every layer honors the same three-phase training protocol:
//   - Feedforward: compute the layer output from its input
//   - Backpropagate: compute the layer's input gradients from upstream
//     gradient or target information
//   - Optimize: update trainable parameters using the computed gradients
//
// Each phase validates its argument shapes and returns a success flag; a
// false return means the caller must treat the layer's buffers as stale and
// abort the current chain. Layers own their buffers exclusively and expose
// them only as read-only views.
package layer

import "github.com/gridnet-ml/gridnet/internal/matrix"

// GridLayer is a layer transforming a square 2D grid into a square 2D grid.
// Convolution and max-pooling layers (and their stand-ins) implement it.
type GridLayer interface {
	// InputSize returns the expected side length of the input grid.
	InputSize() int

	// OutputSize returns the side length of the output grid.
	OutputSize() int

	// Output returns a read-only view of the last computed forward result.
	Output() matrix.Matrix2d

	// InputGradients returns a read-only view of the last computed backward
	// result, shaped to match the layer input.
	InputGradients() matrix.Matrix2d

	// Feedforward computes the layer output from the given input grid.
	Feedforward(input matrix.Matrix2d) bool

	// Backpropagate computes the input gradients from the upstream gradient
	// grid, which must match the layer's output shape.
	Backpropagate(outputGradients matrix.Matrix2d) bool

	// Optimize updates trainable parameters in place. Layers without
	// trainable parameters succeed as a no-op.
	Optimize(learningRate float64) bool
}

// FlattenLayer is a layer transforming a square 2D grid into a vector.
type FlattenLayer interface {
	// InputSize returns the expected side length of the input grid.
	InputSize() int

	// OutputSize returns the length of the flattened output vector.
	OutputSize() int

	// Output returns a read-only view of the flattened forward result.
	Output() matrix.Matrix1d

	// InputGradients returns a read-only view of the unflattened backward
	// result, shaped to match the layer input.
	InputGradients() matrix.Matrix2d

	// Feedforward flattens the given input grid.
	Feedforward(input matrix.Matrix2d) bool

	// Backpropagate unflattens the upstream gradient vector, which must
	// match the layer's output length.
	Backpropagate(outputGradients matrix.Matrix1d) bool
}

// DenseLayer is a fully connected layer transforming a vector into a vector.
type DenseLayer interface {
	// InputSize returns the expected input vector length.
	InputSize() int

	// OutputSize returns the output vector length.
	OutputSize() int

	// Output returns a read-only view of the last computed forward result.
	Output() matrix.Matrix1d

	// InputGradients returns a read-only view of the last computed backward
	// result, shaped to match the layer input.
	InputGradients() matrix.Matrix1d

	// Weights returns a read-only view of the weight matrix, with one row
	// per output node.
	Weights() matrix.Matrix2d

	// Feedforward computes the layer output from the given input vector.
	Feedforward(input matrix.Matrix1d) bool

	// Backpropagate runs the terminal backward pass against target values
	// sized to the layer output.
	Backpropagate(target matrix.Matrix1d) bool

	// BackpropagateHidden runs the hidden backward pass, reading the next
	// layer's input gradients and weights.
	BackpropagateHidden(next DenseLayer) bool

	// Optimize updates weights and bias in place using the gradients from
	// the last backward pass and the given input (the upstream layer's
	// output).
	Optimize(input matrix.Matrix1d, learningRate float64) bool
}
