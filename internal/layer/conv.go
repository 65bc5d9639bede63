package layer

import (
	"fmt"

	"github.com/gridnet-ml/gridnet/internal/activation"
	"github.com/gridnet-ml/gridnet/internal/matrix"
	"github.com/gridnet-ml/gridnet/internal/random"
)

// Kernel size limits for convolution layers.
const (
	MinKernelSize = 1
	MaxKernelSize = 11
)

// Conv is a single-kernel 2D convolution layer.
//
// The layer computes a same-size, zero-padded correlation of the input grid
// with its kernel and applies the activation function elementwise:
//
//	output[r][c] = act(sum_{u,v} kernel[u][v] * input[r+u-off][c+v-off])
//
// with off = kernelSize/2 and out-of-bounds input treated as zero, so the
// output grid always has the same side length as the input grid.
//
// Kernel values are initialized uniformly in [0, 1). Backpropagate computes
// both the kernel gradients (against the input stored during the forward
// pass) and the input gradients (the transposed correlation of the deltas
// with the kernel); Optimize applies the kernel gradients scaled by the
// learning rate.
type Conv struct {
	kernel         matrix.Matrix2d // [kernelSize][kernelSize]
	kernelGrads    matrix.Matrix2d // [kernelSize][kernelSize]
	input          matrix.Matrix2d // input stored by the last forward pass
	output         matrix.Matrix2d // [inputSize][inputSize]
	inputGradients matrix.Matrix2d // [inputSize][inputSize]
	act            activation.Func
}

// validateConvSizes checks the construction parameters shared by Conv and
// ConvStub.
func validateConvSizes(inputSize, kernelSize int) error {
	if kernelSize < MinKernelSize || kernelSize > MaxKernelSize {
		return fmt.Errorf("conv: invalid kernel size %d: kernel size must be in range [%d, %d]",
			kernelSize, MinKernelSize, MaxKernelSize)
	}
	if inputSize < kernelSize {
		return fmt.Errorf("conv: kernel size %d cannot be greater than input size %d",
			kernelSize, inputSize)
	}
	return nil
}

// NewConv creates a convolution layer.
//
// The kernel size must lie in [MinKernelSize, MaxKernelSize] and must not
// exceed the input size.
func NewConv(inputSize, kernelSize int, actFunc activation.Type, src random.Source) (*Conv, error) {
	if err := validateConvSizes(inputSize, kernelSize); err != nil {
		return nil, err
	}

	c := &Conv{
		kernel:         matrix.New2d(kernelSize),
		kernelGrads:    matrix.New2d(kernelSize),
		input:          matrix.New2d(inputSize),
		output:         matrix.New2d(inputSize),
		inputGradients: matrix.New2d(inputSize),
		act:            activation.ForType(actFunc),
	}

	for u := range c.kernel {
		for v := range c.kernel[u] {
			c.kernel[u][v] = random.StartVal(src)
		}
	}
	return c, nil
}

// InputSize returns the side length of the input grid.
func (c *Conv) InputSize() int { return len(c.inputGradients) }

// OutputSize returns the side length of the output grid.
func (c *Conv) OutputSize() int { return len(c.output) }

// Output returns the last computed forward result.
func (c *Conv) Output() matrix.Matrix2d { return c.output }

// InputGradients returns the last computed backward result.
func (c *Conv) InputGradients() matrix.Matrix2d { return c.inputGradients }

// Kernel returns the kernel matrix.
func (c *Conv) Kernel() matrix.Matrix2d { return c.kernel }

// Feedforward correlates the input with the kernel and applies the
// activation function.
func (c *Conv) Feedforward(input matrix.Matrix2d) bool {
	const opName = "feedforward in convolutional layer"
	if !matrix.MatchDimensions(c.OutputSize(), len(input), opName) ||
		!matrix.IsSquare(input, opName) {
		return false
	}

	size := c.OutputSize()
	offset := len(c.kernel) / 2

	for r := 0; r < size; r++ {
		copy(c.input[r], input[r])
	}

	for r := 0; r < size; r++ {
		for col := 0; col < size; col++ {
			sum := 0.0
			for u := range c.kernel {
				ir := r + u - offset
				if ir < 0 || ir >= size {
					continue
				}
				for v := range c.kernel[u] {
					ic := col + v - offset
					if ic < 0 || ic >= size {
						continue
					}
					sum += c.kernel[u][v] * input[ir][ic]
				}
			}
			c.output[r][col] = c.act.Output(sum)
		}
	}
	return true
}

// Backpropagate computes the kernel gradients and the input gradients from
// the upstream gradient grid.
func (c *Conv) Backpropagate(outputGradients matrix.Matrix2d) bool {
	const opName = "backpropagation in convolutional layer"
	if !matrix.MatchDimensions(c.OutputSize(), len(outputGradients), opName) ||
		!matrix.IsSquare(outputGradients, opName) {
		return false
	}

	size := c.OutputSize()
	offset := len(c.kernel) / 2

	matrix.Zero2d(c.kernelGrads)
	matrix.Zero2d(c.inputGradients)

	for r := 0; r < size; r++ {
		for col := 0; col < size; col++ {
			delta := outputGradients[r][col] * c.act.Delta(c.output[r][col])
			if delta == 0.0 {
				continue
			}
			for u := range c.kernel {
				ir := r + u - offset
				if ir < 0 || ir >= size {
					continue
				}
				for v := range c.kernel[u] {
					ic := col + v - offset
					if ic < 0 || ic >= size {
						continue
					}
					c.kernelGrads[u][v] += delta * c.input[ir][ic]
					c.inputGradients[ir][ic] += delta * c.kernel[u][v]
				}
			}
		}
	}
	return true
}

// Optimize adjusts the kernel in place using the gradients from the last
// backward pass.
func (c *Conv) Optimize(learningRate float64) bool {
	const opName = "optimization in convolutional layer"
	if !matrix.CheckLearningRate(learningRate, opName) {
		return false
	}

	for u := range c.kernel {
		for v := range c.kernel[u] {
			c.kernel[u][v] += c.kernelGrads[u][v] * learningRate
		}
	}
	return true
}
