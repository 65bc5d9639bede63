// Copyright 2026 GridNet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random provides the injectable uniform random source used for
// weight initialization and training-order shuffling.
package random

import "github.com/gridnet-ml/gridnet/internal/random"

// Source produces uniform random integers and floats.
type Source = random.Source

// Generator is a math/rand backed Source.
type Generator = random.Generator

// New creates a Generator with the given seed.
//
// Fixing the seed makes weight initialization and training order
// deterministic, which is the intended path for tests.
func New(seed int64) *Generator { return random.New(seed) }

// NewTime creates a Generator seeded from the current time.
func NewTime() *Generator { return random.NewTime() }
