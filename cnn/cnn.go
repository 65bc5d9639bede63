// Copyright 2026 GridNet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cnn exposes the network orchestrator.
//
// # Basic Usage
//
//	import (
//	    "github.com/gridnet-ml/gridnet/activation"
//	    "github.com/gridnet-ml/gridnet/cnn"
//	    "github.com/gridnet-ml/gridnet/factory"
//	    "github.com/gridnet-ml/gridnet/random"
//	)
//
//	func main() {
//	    src := random.NewTime()
//	    f := factory.New(factory.Standard, src)
//
//	    net, err := cnn.New(f, cnn.Config{
//	        ConvInputSize:   4,
//	        KernelSize:      2,
//	        ConvActFunc:     activation.ReLU,
//	        PoolSize:        2,
//	        DenseOutputSize: 1,
//	        DenseActFunc:    activation.Tanh,
//	    }, src)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    if net.Train(inputs, targets, 20000, 0.01) {
//	        prediction := net.Predict(inputs[0])
//	        _ = prediction
//	    }
//	}
package cnn

import (
	"github.com/gridnet-ml/gridnet/internal/cnn"
	"github.com/gridnet-ml/gridnet/internal/factory"
	"github.com/gridnet-ml/gridnet/internal/random"
)

// Config holds the layer sizing parameters for a new network.
type Config = cnn.Config

// Network is a convolutional neural network with a fixed
// conv -> pool -> flatten -> dense chain.
type Network = cnn.Network

// New creates a network from the given factory and sizing parameters. The
// random source drives the per-epoch training-order shuffle.
func New(f factory.Factory, cfg Config, src random.Source) (*Network, error) {
	return cnn.New(f, cfg, src)
}
