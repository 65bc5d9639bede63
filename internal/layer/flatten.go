package layer

import (
	"fmt"

	"github.com/gridnet-ml/gridnet/internal/matrix"
)

// Flatten reshapes a square 2D grid into a vector and back.
//
// Feedforward copies the N x N input grid into an N^2 output vector in
// row-major order; Backpropagate unflattens an N^2 gradient vector into the
// N x N input gradient grid. Flatten has no trainable parameters and no
// Optimize phase.
type Flatten struct {
	output         matrix.Matrix1d // [inputSize * inputSize]
	inputGradients matrix.Matrix2d // [inputSize][inputSize]
}

// validateFlattenSize checks the construction parameter shared by Flatten
// and FlattenStub.
func validateFlattenSize(inputSize int) error {
	if inputSize <= 0 {
		return fmt.Errorf("flatten: input size cannot be %d", inputSize)
	}
	return nil
}

// NewFlatten creates a flatten layer for square grids of the given side
// length.
func NewFlatten(inputSize int) (*Flatten, error) {
	if err := validateFlattenSize(inputSize); err != nil {
		return nil, err
	}
	return &Flatten{
		output:         matrix.New1d(inputSize * inputSize),
		inputGradients: matrix.New2d(inputSize),
	}, nil
}

// InputSize returns the side length of the input grid.
func (f *Flatten) InputSize() int { return len(f.inputGradients) }

// OutputSize returns the length of the flattened output vector.
func (f *Flatten) OutputSize() int { return len(f.output) }

// Output returns the flattened forward result.
func (f *Flatten) Output() matrix.Matrix1d { return f.output }

// InputGradients returns the unflattened backward result.
func (f *Flatten) InputGradients() matrix.Matrix2d { return f.inputGradients }

// Feedforward copies the input grid into the output vector in row-major
// order.
func (f *Flatten) Feedforward(input matrix.Matrix2d) bool {
	const opName = "feedforward in flatten layer"
	if !matrix.MatchDimensions(f.InputSize(), len(input), opName) ||
		!matrix.IsSquare(input, opName) {
		return false
	}

	size := f.InputSize()
	for i := 0; i < size; i++ {
		copy(f.output[i*size:(i+1)*size], input[i])
	}
	return true
}

// Backpropagate unflattens the upstream gradient vector into the input
// gradient grid.
func (f *Flatten) Backpropagate(outputGradients matrix.Matrix1d) bool {
	const opName = "backpropagation in flatten layer"
	if !matrix.MatchDimensions(f.OutputSize(), len(outputGradients), opName) {
		return false
	}

	size := f.InputSize()
	for i := 0; i < size; i++ {
		copy(f.inputGradients[i], outputGradients[i*size:(i+1)*size])
	}
	return true
}
