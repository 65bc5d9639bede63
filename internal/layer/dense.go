package layer

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/gridnet-ml/gridnet/internal/activation"
	"github.com/gridnet-ml/gridnet/internal/matrix"
	"github.com/gridnet-ml/gridnet/internal/random"
)

// Dense is a fully connected layer.
//
// Performs the transformation: output[i] = act(bias[i] + weights[i] . input)
// where:
//   - weights has shape [outputSize][inputSize]
//   - bias has shape [outputSize]
//
// Weights and biases are initialized uniformly in [0, 1) from the injected
// random source. The input size is always derived from the weight row length
// rather than stored separately.
//
// The backward pass is asymmetric between terminal and hidden use:
//   - Backpropagate (terminal) fills the per-node error buffer from target
//     values, then accumulates the true input gradients through the weights.
//   - BackpropagateHidden reads the next layer's input gradients and weights
//     and writes node-indexed values directly, without the two-stage error
//     computation.
//
// Optimize applies the per-node errors from the most recent backward pass:
//
//	bias[i]       += error[i] * learningRate
//	weights[i][j] += error[i] * learningRate * input[j]
type Dense struct {
	weights        matrix.Matrix2d // [outputSize][inputSize]
	bias           matrix.Matrix1d // [outputSize]
	output         matrix.Matrix1d // [outputSize]
	inputGradients matrix.Matrix1d // [inputSize]
	errs           matrix.Matrix1d // [outputSize], per-node errors
	act            activation.Func
}

// validateDenseSizes checks the construction parameters shared by Dense and
// DenseStub.
func validateDenseSizes(inputSize, outputSize int) error {
	if outputSize <= 0 {
		return fmt.Errorf("dense: node count cannot be %d", outputSize)
	}
	if inputSize <= 0 {
		return fmt.Errorf("dense: weight count cannot be %d", inputSize)
	}
	return nil
}

// NewDense creates a dense layer with the given sizes and activation type.
//
// Returns an error if inputSize or outputSize is zero; a zero size is a
// configuration mistake, not a runtime data issue, so no partially
// constructed layer is ever returned.
func NewDense(inputSize, outputSize int, actFunc activation.Type, src random.Source) (*Dense, error) {
	if err := validateDenseSizes(inputSize, outputSize); err != nil {
		return nil, err
	}

	d := &Dense{
		weights:        matrix.New2dRC(outputSize, inputSize),
		bias:           matrix.New1d(outputSize),
		output:         matrix.New1d(outputSize),
		inputGradients: matrix.New1d(inputSize),
		errs:           matrix.New1d(outputSize),
		act:            activation.ForType(actFunc),
	}

	for i := range d.weights {
		d.bias[i] = random.StartVal(src)
		for j := range d.weights[i] {
			d.weights[i][j] = random.StartVal(src)
		}
	}
	return d, nil
}

// InputSize returns the input vector length, derived from the weight rows.
func (d *Dense) InputSize() int {
	if len(d.weights) == 0 {
		return 0
	}
	return len(d.weights[0])
}

// OutputSize returns the output vector length.
func (d *Dense) OutputSize() int { return len(d.output) }

// Output returns the last computed forward result.
func (d *Dense) Output() matrix.Matrix1d { return d.output }

// InputGradients returns the last computed backward result.
func (d *Dense) InputGradients() matrix.Matrix1d { return d.inputGradients }

// Weights returns the weight matrix, one row per output node.
func (d *Dense) Weights() matrix.Matrix2d { return d.weights }

// Bias returns the bias vector.
func (d *Dense) Bias() matrix.Matrix1d { return d.bias }

// Feedforward computes output[i] = act(bias[i] + weights[i] . input).
func (d *Dense) Feedforward(input matrix.Matrix1d) bool {
	const opName = "feedforward in dense layer"
	if !matrix.MatchDimensions(d.InputSize(), len(input), opName) {
		return false
	}

	for i := range d.output {
		sum := d.bias[i] + floats.Dot(d.weights[i], input)
		d.output[i] = d.act.Output(sum)
	}
	return true
}

// Backpropagate runs the terminal backward pass.
//
// For each node: error[i] = (target[i] - output[i]) * act.Delta(output[i]).
// The input gradients are then accumulated through the weights:
// inputGradients[k] = sum_i error[i] * weights[i][k].
func (d *Dense) Backpropagate(target matrix.Matrix1d) bool {
	const opName = "backpropagation in output dense layer"
	if !matrix.MatchDimensions(d.OutputSize(), len(target), opName) {
		return false
	}

	for i := range d.errs {
		rawError := target[i] - d.output[i]
		d.errs[i] = rawError * d.act.Delta(d.output[i])
	}

	matrix.Zero1d(d.inputGradients)
	for i := range d.errs {
		// inputGradients += errs[i] * weights[i]
		floats.AddScaled(d.inputGradients, d.errs[i], d.weights[i])
	}
	return true
}

// BackpropagateHidden runs the hidden backward pass against the next layer.
//
// For each node i: the weighted gradients of the next layer are summed as
// next.InputGradients()[j] * next.Weights()[j][i] and scaled by
// act.Delta(output[i]). The result is written node-indexed into the input
// gradient buffer directly; the error buffer mirrors it so Optimize sees the
// same values on both backward paths.
func (d *Dense) BackpropagateHidden(next DenseLayer) bool {
	const opName = "backpropagation in hidden dense layer"
	if !matrix.MatchDimensions(d.OutputSize(), next.InputSize(), opName) {
		return false
	}

	nextGradients := next.InputGradients()
	nextWeights := next.Weights()

	// The next layer's gradient buffer carries one entry per input; cap the
	// node sum there when the next layer has more nodes than inputs.
	nodeCount := len(nextWeights)
	if len(nextGradients) < nodeCount {
		nodeCount = len(nextGradients)
	}

	matrix.Zero1d(d.inputGradients)
	for i := range d.errs {
		sum := 0.0
		for j := 0; j < nodeCount; j++ {
			sum += nextGradients[j] * nextWeights[j][i]
		}
		d.errs[i] = sum * d.act.Delta(d.output[i])
		if i < len(d.inputGradients) {
			d.inputGradients[i] = d.errs[i]
		}
	}
	return true
}

// Optimize adjusts the bias and weights in place using the per-node errors
// from the last backward pass and the given upstream input.
func (d *Dense) Optimize(input matrix.Matrix1d, learningRate float64) bool {
	const opName = "optimization in dense layer"
	if !matrix.MatchDimensions(d.InputSize(), len(input), opName) ||
		!matrix.CheckLearningRate(learningRate, opName) {
		return false
	}

	for i := range d.errs {
		d.bias[i] += d.errs[i] * learningRate
		// weights[i] += errs[i] * learningRate * input
		floats.AddScaled(d.weights[i], d.errs[i]*learningRate, input)
	}
	return true
}
