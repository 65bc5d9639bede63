// Copyright 2026 GridNet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the activation function strategies: Identity,
// ReLU, and Tanh, each a stateless Output/Delta pair.
package activation

import "github.com/gridnet-ml/gridnet/internal/activation"

// Type enumerates the supported activation functions.
type Type = activation.Type

// Supported activation types.
const (
	Identity = activation.Identity
	ReLU     = activation.ReLU
	Tanh     = activation.Tanh
)

// Func is a stateless activation function pair: Output applies the
// nonlinearity, Delta computes the derivative term for backpropagation.
type Func = activation.Func

// ForType returns the Func for the given Type. Unknown types fall back to
// the identity function.
func ForType(t Type) Func {
	return activation.ForType(t)
}
