// Copyright 2026 GridNet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package factory constructs consistent sets of layer instances: either the
// fully functional set or the shape-validating stand-in set.
package factory

import (
	"github.com/gridnet-ml/gridnet/internal/factory"
	"github.com/gridnet-ml/gridnet/internal/random"
)

// Variant selects which layer implementation set a factory produces.
type Variant = factory.Variant

// Available variants.
const (
	// Standard produces the fully functional layer set.
	Standard = factory.Standard

	// Stub produces the shape-validating stand-in set.
	Stub = factory.Stub
)

// Factory creates activation functions and layer instances.
type Factory = factory.Factory

// New returns a factory for the given variant. The random source is threaded
// into every layer the factory creates.
//
// Example:
//
//	src := random.New(42)
//	f := factory.New(factory.Standard, src)
func New(variant Variant, src random.Source) Factory {
	return factory.New(variant, src)
}
