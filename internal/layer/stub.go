package layer

import (
	"github.com/gridnet-ml/gridnet/internal/matrix"
)

// The stand-in layers below are structurally valid but feature-incomplete
// variants of the real layers: construction validates the same sizing rules
// and allocates the same buffers, and every protocol phase performs the same
// shape validation, but no math runs and the buffers stay zeroed. They exist
// so the network wiring and the training loop can be exercised end to end
// before (or without) the real layer math. Selecting them is a deliberate
// variant policy, chosen through the factory.

// ConvStub is the shape-validating stand-in for Conv.
type ConvStub struct {
	kernel         matrix.Matrix2d
	output         matrix.Matrix2d
	inputGradients matrix.Matrix2d
}

// NewConvStub creates a convolution stand-in with Conv's validation rules.
func NewConvStub(inputSize, kernelSize int) (*ConvStub, error) {
	if err := validateConvSizes(inputSize, kernelSize); err != nil {
		return nil, err
	}
	return &ConvStub{
		kernel:         matrix.New2d(kernelSize),
		output:         matrix.New2d(inputSize),
		inputGradients: matrix.New2d(inputSize),
	}, nil
}

// InputSize returns the side length of the input grid.
func (c *ConvStub) InputSize() int { return len(c.inputGradients) }

// OutputSize returns the side length of the output grid.
func (c *ConvStub) OutputSize() int { return len(c.output) }

// Output returns the (zeroed) output buffer.
func (c *ConvStub) Output() matrix.Matrix2d { return c.output }

// InputGradients returns the (zeroed) input gradient buffer.
func (c *ConvStub) InputGradients() matrix.Matrix2d { return c.inputGradients }

// Feedforward validates the input shape only.
func (c *ConvStub) Feedforward(input matrix.Matrix2d) bool {
	const opName = "feedforward in convolutional layer"
	return matrix.MatchDimensions(c.OutputSize(), len(input), opName) &&
		matrix.IsSquare(input, opName)
}

// Backpropagate validates the gradient shape only.
func (c *ConvStub) Backpropagate(outputGradients matrix.Matrix2d) bool {
	const opName = "backpropagation in convolutional layer"
	return matrix.MatchDimensions(c.OutputSize(), len(outputGradients), opName) &&
		matrix.IsSquare(outputGradients, opName)
}

// Optimize validates the learning rate only.
func (c *ConvStub) Optimize(learningRate float64) bool {
	const opName = "optimization in convolutional layer"
	return matrix.CheckLearningRate(learningRate, opName)
}

// MaxPoolStub is the shape-validating stand-in for MaxPool.
type MaxPoolStub struct {
	output         matrix.Matrix2d
	inputGradients matrix.Matrix2d
}

// NewMaxPoolStub creates a max pooling stand-in with MaxPool's validation
// rules.
func NewMaxPoolStub(inputSize, poolSize int) (*MaxPoolStub, error) {
	if err := validateMaxPoolSizes(inputSize, poolSize); err != nil {
		return nil, err
	}
	return &MaxPoolStub{
		output:         matrix.New2d(inputSize / poolSize),
		inputGradients: matrix.New2d(inputSize),
	}, nil
}

// InputSize returns the side length of the input grid.
func (m *MaxPoolStub) InputSize() int { return len(m.inputGradients) }

// OutputSize returns the side length of the output grid.
func (m *MaxPoolStub) OutputSize() int { return len(m.output) }

// Output returns the (zeroed) output buffer.
func (m *MaxPoolStub) Output() matrix.Matrix2d { return m.output }

// InputGradients returns the (zeroed) input gradient buffer.
func (m *MaxPoolStub) InputGradients() matrix.Matrix2d { return m.inputGradients }

// Feedforward validates the input shape only.
func (m *MaxPoolStub) Feedforward(input matrix.Matrix2d) bool {
	const opName = "feedforward in max pooling layer"
	return matrix.MatchDimensions(m.InputSize(), len(input), opName) &&
		matrix.IsSquare(input, opName)
}

// Backpropagate validates the gradient shape only.
func (m *MaxPoolStub) Backpropagate(outputGradients matrix.Matrix2d) bool {
	const opName = "backpropagation in max pooling layer"
	return matrix.MatchDimensions(m.OutputSize(), len(outputGradients), opName) &&
		matrix.IsSquare(outputGradients, opName)
}

// Optimize is a successful no-op.
func (m *MaxPoolStub) Optimize(learningRate float64) bool {
	_ = learningRate
	return true
}

// FlattenStub is the shape-validating stand-in for Flatten.
type FlattenStub struct {
	output         matrix.Matrix1d
	inputGradients matrix.Matrix2d
}

// NewFlattenStub creates a flatten stand-in with Flatten's validation rules.
func NewFlattenStub(inputSize int) (*FlattenStub, error) {
	if err := validateFlattenSize(inputSize); err != nil {
		return nil, err
	}
	return &FlattenStub{
		output:         matrix.New1d(inputSize * inputSize),
		inputGradients: matrix.New2d(inputSize),
	}, nil
}

// InputSize returns the side length of the input grid.
func (f *FlattenStub) InputSize() int { return len(f.inputGradients) }

// OutputSize returns the length of the flattened output vector.
func (f *FlattenStub) OutputSize() int { return len(f.output) }

// Output returns the (zeroed) output buffer.
func (f *FlattenStub) Output() matrix.Matrix1d { return f.output }

// InputGradients returns the (zeroed) input gradient buffer.
func (f *FlattenStub) InputGradients() matrix.Matrix2d { return f.inputGradients }

// Feedforward validates the input shape only.
func (f *FlattenStub) Feedforward(input matrix.Matrix2d) bool {
	const opName = "feedforward in flatten layer"
	return matrix.MatchDimensions(f.InputSize(), len(input), opName) &&
		matrix.IsSquare(input, opName)
}

// Backpropagate validates the gradient shape only.
func (f *FlattenStub) Backpropagate(outputGradients matrix.Matrix1d) bool {
	const opName = "backpropagation in flatten layer"
	return matrix.MatchDimensions(f.OutputSize(), len(outputGradients), opName)
}

// DenseStub is the shape-validating stand-in for Dense.
type DenseStub struct {
	weights        matrix.Matrix2d
	bias           matrix.Matrix1d
	output         matrix.Matrix1d
	inputGradients matrix.Matrix1d
	errs           matrix.Matrix1d
}

// NewDenseStub creates a dense stand-in with Dense's validation rules. The
// weight matrix stays zeroed.
func NewDenseStub(inputSize, outputSize int) (*DenseStub, error) {
	if err := validateDenseSizes(inputSize, outputSize); err != nil {
		return nil, err
	}
	return &DenseStub{
		weights:        matrix.New2dRC(outputSize, inputSize),
		bias:           matrix.New1d(outputSize),
		output:         matrix.New1d(outputSize),
		inputGradients: matrix.New1d(inputSize),
		errs:           matrix.New1d(outputSize),
	}, nil
}

// InputSize returns the input vector length, derived from the weight rows.
func (d *DenseStub) InputSize() int {
	if len(d.weights) == 0 {
		return 0
	}
	return len(d.weights[0])
}

// OutputSize returns the output vector length.
func (d *DenseStub) OutputSize() int { return len(d.output) }

// Output returns the (zeroed) output buffer.
func (d *DenseStub) Output() matrix.Matrix1d { return d.output }

// InputGradients returns the (zeroed) input gradient buffer.
func (d *DenseStub) InputGradients() matrix.Matrix1d { return d.inputGradients }

// Weights returns the (zeroed) weight matrix.
func (d *DenseStub) Weights() matrix.Matrix2d { return d.weights }

// Feedforward validates the input shape only.
func (d *DenseStub) Feedforward(input matrix.Matrix1d) bool {
	const opName = "feedforward in dense layer"
	return matrix.MatchDimensions(d.InputSize(), len(input), opName)
}

// Backpropagate validates the target shape only.
func (d *DenseStub) Backpropagate(target matrix.Matrix1d) bool {
	const opName = "backpropagation in output dense layer"
	return matrix.MatchDimensions(d.OutputSize(), len(target), opName)
}

// BackpropagateHidden validates the layer chaining only.
func (d *DenseStub) BackpropagateHidden(next DenseLayer) bool {
	const opName = "backpropagation in hidden dense layer"
	return matrix.MatchDimensions(d.OutputSize(), next.InputSize(), opName)
}

// Optimize validates the input shape and learning rate only.
func (d *DenseStub) Optimize(input matrix.Matrix1d, learningRate float64) bool {
	const opName = "optimization in dense layer"
	return matrix.MatchDimensions(d.InputSize(), len(input), opName) &&
		matrix.CheckLearningRate(learningRate, opName)
}
