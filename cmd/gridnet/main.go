// Command gridnet trains a small convolutional network on two hand-labeled
// 4x4 digit patterns and prints the prediction for each training image.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gridnet-ml/gridnet/activation"
	"github.com/gridnet-ml/gridnet/cnn"
	"github.com/gridnet-ml/gridnet/factory"
	"github.com/gridnet-ml/gridnet/matrix"
	"github.com/gridnet-ml/gridnet/random"
)

const version = "v0.1.0-dev"

// Network parameters.
const (
	inputSize   = 4
	kernelSize  = 2
	poolSize    = 2
	denseOutput = 1
)

// Training parameters.
const (
	epochCount   = 20000
	learningRate = 0.01
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("GridNet %s\n", version)
		return
	}

	stub := flag.Bool("stub", false, "use the shape-validating stand-in layer set")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Parse()

	var src random.Source
	if *seed != 0 {
		src = random.New(*seed)
	} else {
		src = random.NewTime()
	}

	variant := factory.Standard
	if *stub {
		variant = factory.Stub
	}

	// Input data for training (digits 0 - 1).
	inputs := matrix.Matrix3d{
		{{1, 1, 1, 1},
			{1, 0, 0, 1},
			{1, 0, 0, 1},
			{1, 1, 1, 1}},
		{{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0}},
	}
	// Output data for training (the corresponding numbers).
	outputs := matrix.Matrix2d{{0}, {1}}

	net, err := cnn.New(factory.New(variant, src), cnn.Config{
		ConvInputSize:   inputSize,
		KernelSize:      kernelSize,
		ConvActFunc:     activation.ReLU,
		PoolSize:        poolSize,
		DenseOutputSize: denseOutput,
		DenseActFunc:    activation.Tanh,
	}, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create network: %v\n", err)
		os.Exit(1)
	}

	if !net.Train(inputs, outputs, epochCount, learningRate) {
		fmt.Println("Training failed!")
		os.Exit(1)
	}

	predictAndPrint(net, inputs)
}

// predictAndPrint runs a prediction for each input image and prints the
// image and its predicted output.
func predictAndPrint(net *cnn.Network, inputs matrix.Matrix3d) {
	if len(inputs) == 0 {
		return
	}

	fmt.Println("--------------------------------------------------------------------------------")
	for i, input := range inputs {
		fmt.Println("Input:")
		fmt.Println(matrix.Format2d(input, 0))

		fmt.Println("\nPrediction:")
		fmt.Println(matrix.Format1d(net.Predict(input), 2))

		if i < len(inputs)-1 {
			fmt.Println()
		}
	}
	fmt.Println("--------------------------------------------------------------------------------")
}
