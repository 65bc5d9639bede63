// Package activation provides the activation function strategies used by the
// trainable layers.
//
// Each activation is a stateless Output/Delta pair: Output applies the
// nonlinearity to a weighted sum, Delta computes the derivative term used
// during backpropagation.
package activation

import "math"

// Type enumerates the supported activation functions.
type Type int

const (
	// Identity passes values through unchanged.
	Identity Type = iota

	// ReLU is the rectified linear unit: f(x) = max(0, x).
	ReLU

	// Tanh is the hyperbolic tangent: f(x) = tanh(x), range (-1, 1).
	Tanh
)

// String returns the activation type name.
func (t Type) String() string {
	switch t {
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	default:
		return "identity"
	}
}

// Func is a stateless activation function pair.
type Func interface {
	// Output computes the activation function output.
	Output(x float64) float64

	// Delta computes the activation function derivative for backpropagation.
	Delta(x float64) float64
}

// ForType returns the Func for the given Type. Unknown types fall back to
// the identity function.
func ForType(t Type) Func {
	switch t {
	case ReLU:
		return reluFunc{}
	case Tanh:
		return tanhFunc{}
	default:
		return identityFunc{}
	}
}

type identityFunc struct{}

func (identityFunc) Output(x float64) float64 { return x }

func (identityFunc) Delta(float64) float64 { return 1.0 }

type reluFunc struct{}

func (reluFunc) Output(x float64) float64 {
	if x > 0.0 {
		return x
	}
	return 0.0
}

func (reluFunc) Delta(x float64) float64 {
	if x > 0.0 {
		return 1.0
	}
	return 0.0
}

type tanhFunc struct{}

func (tanhFunc) Output(x float64) float64 { return math.Tanh(x) }

func (tanhFunc) Delta(x float64) float64 {
	th := math.Tanh(x)
	return 1.0 - th*th
}
