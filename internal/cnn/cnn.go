// Package cnn implements the network orchestrator: an ordered chain of
// convolution-family layers, one flatten layer, and dense layers, trained by
// per-sample stochastic gradient descent.
//
// Every training step runs three strictly sequential phases through the
// chain: feedforward, backpropagate, optimize. All three must succeed or the
// step fails and the surrounding Train call aborts. Gradients flow in
// reverse through the identical chain. Execution is fully synchronous and
// single-threaded; all layer buffers are owned by their layers and the
// orchestrator only passes read-only views between them.
package cnn

import (
	"log"

	"github.com/gridnet-ml/gridnet/internal/activation"
	"github.com/gridnet-ml/gridnet/internal/factory"
	"github.com/gridnet-ml/gridnet/internal/layer"
	"github.com/gridnet-ml/gridnet/internal/matrix"
	"github.com/gridnet-ml/gridnet/internal/random"
)

// Config holds the layer sizing parameters for a new network.
type Config struct {
	ConvInputSize   int             // Side length of the input image.
	KernelSize      int             // Convolution kernel side length.
	ConvActFunc     activation.Type // Activation for the convolution layer.
	PoolSize        int             // Pooling window side length.
	DenseOutputSize int             // Output size of the first dense layer.
	DenseActFunc    activation.Type // Activation for the first dense layer.
}

// Network is a convolutional neural network with a fixed
// conv -> pool -> flatten -> dense chain. Additional dense layers may be
// appended with AddDenseLayer.
//
// Layers are created once at construction and persist for the network's
// lifetime; output sizes and expected input sizes are matched at wiring time
// and revalidated only by the per-call dimension checks inside each layer.
type Network struct {
	convLayers  []layer.GridLayer
	flatten     layer.FlattenLayer
	denseLayers []layer.DenseLayer
	factory     factory.Factory
	src         random.Source
}

// New creates a network from the given factory and sizing parameters. The
// random source drives the per-epoch training-order shuffle.
//
// Invalid sizing parameters surface as construction errors from the layers;
// no partially wired network is returned.
func New(f factory.Factory, cfg Config, src random.Source) (*Network, error) {
	conv, err := f.ConvLayer(cfg.ConvInputSize, cfg.KernelSize, cfg.ConvActFunc)
	if err != nil {
		return nil, err
	}

	pool, err := f.MaxPoolLayer(conv.OutputSize(), cfg.PoolSize)
	if err != nil {
		return nil, err
	}

	flatten, err := f.FlattenLayer(pool.OutputSize())
	if err != nil {
		return nil, err
	}

	dense, err := f.DenseLayer(flatten.OutputSize(), cfg.DenseOutputSize, cfg.DenseActFunc)
	if err != nil {
		return nil, err
	}

	return &Network{
		convLayers:  []layer.GridLayer{conv, pool},
		flatten:     flatten,
		denseLayers: []layer.DenseLayer{dense},
		factory:     f,
		src:         src,
	}, nil
}

// InputSize returns the side length of the input image.
func (n *Network) InputSize() int {
	return n.convLayers[0].InputSize()
}

// OutputSize returns the output size of the last dense layer.
func (n *Network) OutputSize() int {
	return n.denseLayers[len(n.denseLayers)-1].OutputSize()
}

// Output returns the last dense layer's output.
func (n *Network) Output() matrix.Matrix1d {
	return n.denseLayers[len(n.denseLayers)-1].Output()
}

// ConvOutput returns the last convolution-family layer's output.
func (n *Network) ConvOutput() matrix.Matrix2d {
	return n.convLayers[len(n.convLayers)-1].Output()
}

// AddDenseLayer appends a dense layer whose input size equals the network's
// current output size.
func (n *Network) AddDenseLayer(outputSize int, actFunc activation.Type) error {
	dense, err := n.factory.DenseLayer(n.OutputSize(), outputSize, actFunc)
	if err != nil {
		return err
	}
	n.denseLayers = append(n.denseLayers, dense)
	return nil
}

// Predict runs the forward pass on the given image and returns the network
// output.
//
// Predict never fails outwardly. If an internal dimension mismatch occurs,
// the returned output is whatever was last successfully computed; callers
// that need the failure signal should use Train's validated path instead.
func (n *Network) Predict(input matrix.Matrix2d) matrix.Matrix1d {
	n.feedforward(input)
	return n.Output()
}

// Train runs epoch-based stochastic training on the given sample pairs.
//
// The effective sample count is min(len(trainIn), len(trainOut)). Each epoch
// shuffles the training order, then runs feedforward, backpropagate, and
// optimize on every sample in order. Any phase failure aborts the whole call
// and returns false; weight updates already applied by earlier samples
// remain in place.
//
// A non-positive learning rate or epoch count, or an empty training set,
// fails immediately before any training work.
func (n *Network) Train(trainIn matrix.Matrix3d, trainOut matrix.Matrix2d, epochCount int, learningRate float64) bool {
	if learningRate <= 0.0 {
		log.Printf("failed to train network: invalid learning rate %v", learningRate)
		return false
	}
	if epochCount <= 0 {
		log.Printf("failed to train network: invalid epoch count %d", epochCount)
		return false
	}

	setCount := min(len(trainIn), len(trainOut))
	if setCount == 0 {
		log.Printf("failed to train network: invalid set count %d", setCount)
		return false
	}

	order := newTrainOrder(setCount)

	for epoch := 0; epoch < epochCount; epoch++ {
		order.shuffle(n.src)

		for _, j := range order {
			ok := n.feedforward(trainIn[j]) &&
				n.backpropagate(trainOut[j]) &&
				n.optimize(learningRate)
			if !ok {
				return false
			}
		}
	}
	return true
}

// feedforward runs the forward pass through the chain: convolution-family
// layers in order, then the flatten layer, then the dense layers in order.
//
// Within a family every layer runs and the results are accumulated before
// the check; between families a failure stops the chain.
func (n *Network) feedforward(input matrix.Matrix2d) bool {
	ok := n.convLayers[0].Feedforward(input)
	for i := 1; i < len(n.convLayers); i++ {
		ok = n.convLayers[i].Feedforward(n.convLayers[i-1].Output()) && ok
	}
	if !ok {
		return false
	}

	if !n.flatten.Feedforward(n.ConvOutput()) {
		return false
	}

	ok = n.denseLayers[0].Feedforward(n.flatten.Output())
	for i := 1; i < len(n.denseLayers); i++ {
		ok = n.denseLayers[i].Feedforward(n.denseLayers[i-1].Output()) && ok
	}
	return ok
}

// backpropagate runs the backward pass through the chain in reverse: dense
// layers last-to-first (the last against the target, earlier ones against
// the next layer's gradients and weights), then the flatten layer, then the
// convolution-family layers last-to-first.
func (n *Network) backpropagate(target matrix.Matrix1d) bool {
	last := len(n.denseLayers) - 1
	ok := n.denseLayers[last].Backpropagate(target)
	for i := last; i > 0; i-- {
		ok = n.denseLayers[i-1].BackpropagateHidden(n.denseLayers[i]) && ok
	}
	if !ok {
		return false
	}

	if !n.flatten.Backpropagate(n.denseLayers[0].InputGradients()) {
		return false
	}

	last = len(n.convLayers) - 1
	ok = n.convLayers[last].Backpropagate(n.flatten.InputGradients())
	for i := last; i > 0; i-- {
		ok = n.convLayers[i-1].Backpropagate(n.convLayers[i].InputGradients()) && ok
	}
	return ok
}

// optimize applies the parameter updates: convolution-family layers in
// order, then dense layers in order, the first against the flatten output
// and each later one against the previous dense layer's output.
func (n *Network) optimize(learningRate float64) bool {
	ok := n.convLayers[0].Optimize(learningRate)
	for i := 1; i < len(n.convLayers); i++ {
		ok = n.convLayers[i].Optimize(learningRate) && ok
	}
	if !ok {
		return false
	}

	ok = n.denseLayers[0].Optimize(n.flatten.Output(), learningRate)
	for i := 1; i < len(n.denseLayers); i++ {
		ok = n.denseLayers[i].Optimize(n.denseLayers[i-1].Output(), learningRate) && ok
	}
	return ok
}
