package layer

import (
	"fmt"

	"github.com/gridnet-ml/gridnet/internal/matrix"
)

// MaxPool is a 2D max pooling layer.
//
// The input grid is divided into non-overlapping poolSize x poolSize windows
// and each window is reduced to its maximum value, so the output side length
// is inputSize/poolSize. The forward pass records the position of the
// maximum in each window; the backward pass routes each upstream gradient to
// that position and zeroes the rest of the window.
//
// MaxPool has no trainable parameters, so Optimize always succeeds as a
// no-op.
type MaxPool struct {
	poolSize       int
	output         matrix.Matrix2d // [outputSize][outputSize]
	inputGradients matrix.Matrix2d // [inputSize][inputSize]
	argRows        [][]int         // argmax row per window
	argCols        [][]int         // argmax column per window
}

// validateMaxPoolSizes checks the construction parameters shared by MaxPool
// and MaxPoolStub.
func validateMaxPoolSizes(inputSize, poolSize int) error {
	if inputSize <= 0 {
		return fmt.Errorf("maxpool: input size cannot be %d", inputSize)
	}
	if poolSize <= 0 {
		return fmt.Errorf("maxpool: pool size cannot be %d", poolSize)
	}
	if inputSize < poolSize {
		return fmt.Errorf("maxpool: input size %d cannot be smaller than pool size %d",
			inputSize, poolSize)
	}
	if inputSize%poolSize != 0 {
		return fmt.Errorf("maxpool: input size %d must be divisible by pool size %d",
			inputSize, poolSize)
	}
	return nil
}

// NewMaxPool creates a max pooling layer. The pool size must evenly divide
// the input size.
func NewMaxPool(inputSize, poolSize int) (*MaxPool, error) {
	if err := validateMaxPoolSizes(inputSize, poolSize); err != nil {
		return nil, err
	}

	outputSize := inputSize / poolSize
	argRows := make([][]int, outputSize)
	argCols := make([][]int, outputSize)
	for i := range argRows {
		argRows[i] = make([]int, outputSize)
		argCols[i] = make([]int, outputSize)
	}

	return &MaxPool{
		poolSize:       poolSize,
		output:         matrix.New2d(outputSize),
		inputGradients: matrix.New2d(inputSize),
		argRows:        argRows,
		argCols:        argCols,
	}, nil
}

// InputSize returns the side length of the input grid.
func (m *MaxPool) InputSize() int { return len(m.inputGradients) }

// OutputSize returns the side length of the output grid.
func (m *MaxPool) OutputSize() int { return len(m.output) }

// Output returns the last computed forward result.
func (m *MaxPool) Output() matrix.Matrix2d { return m.output }

// InputGradients returns the last computed backward result.
func (m *MaxPool) InputGradients() matrix.Matrix2d { return m.inputGradients }

// PoolSize returns the pooling window side length.
func (m *MaxPool) PoolSize() int { return m.poolSize }

// Feedforward reduces each pooling window to its maximum value and records
// the maximum's position for the backward pass.
func (m *MaxPool) Feedforward(input matrix.Matrix2d) bool {
	const opName = "feedforward in max pooling layer"
	if !matrix.MatchDimensions(m.InputSize(), len(input), opName) ||
		!matrix.IsSquare(input, opName) {
		return false
	}

	for i := range m.output {
		for j := range m.output[i] {
			maxRow := i * m.poolSize
			maxCol := j * m.poolSize
			maxVal := input[maxRow][maxCol]

			for r := i * m.poolSize; r < (i+1)*m.poolSize; r++ {
				for c := j * m.poolSize; c < (j+1)*m.poolSize; c++ {
					if input[r][c] > maxVal {
						maxVal = input[r][c]
						maxRow, maxCol = r, c
					}
				}
			}
			m.output[i][j] = maxVal
			m.argRows[i][j] = maxRow
			m.argCols[i][j] = maxCol
		}
	}
	return true
}

// Backpropagate routes each upstream gradient to the recorded maximum
// position of its window; all other input positions receive zero.
func (m *MaxPool) Backpropagate(outputGradients matrix.Matrix2d) bool {
	const opName = "backpropagation in max pooling layer"
	if !matrix.MatchDimensions(m.OutputSize(), len(outputGradients), opName) ||
		!matrix.IsSquare(outputGradients, opName) {
		return false
	}

	matrix.Zero2d(m.inputGradients)
	for i := range outputGradients {
		for j := range outputGradients[i] {
			m.inputGradients[m.argRows[i][j]][m.argCols[i][j]] = outputGradients[i][j]
		}
	}
	return true
}

// Optimize is a successful no-op; pooling has no trainable parameters.
func (m *MaxPool) Optimize(learningRate float64) bool {
	_ = learningRate
	return true
}
