// Package nn is the public API for the masking-aware sequence layers.
//
// Layers implement the Module interface, whose forward pass threads a
// validity mask alongside the data. A typical stack for per-sequence
// scalar predictions over a zero-padded batch:
//
//	model := nn.NewSequential(
//	    nn.NewMasking[Backend](),
//	    nn.NewSimpleRNN(features, units, true, rng, backend),
//	    nn.NewSimpleRNN(units, units, false, rng, backend),
//	    nn.NewDense(units, 1, rng, backend),
//	    nn.NewSigmoid[Backend](),
//	)
package nn

import (
	"math/rand"

	"github.com/ragged-ml/ragged/internal/nn"
	"github.com/ragged-ml/ragged/internal/tensor"
)

// Module is the base interface for all layers.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a named weight tensor of a layer.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Masking derives the validity mask of a zero-padded batch.
type Masking[B tensor.Backend] = nn.Masking[B]

// NewMasking creates a new Masking layer.
func NewMasking[B tensor.Backend]() *Masking[B] {
	return nn.NewMasking[B]()
}

// SimpleRNN is a recurrent layer with tanh state updates and
// masked carry-forward semantics.
type SimpleRNN[B tensor.Backend] = nn.SimpleRNN[B]

// NewSimpleRNN creates a new SimpleRNN layer.
func NewSimpleRNN[B tensor.Backend](inFeatures, units int, returnSequences bool, rng *rand.Rand, backend B) *SimpleRNN[B] {
	return nn.NewSimpleRNN(inFeatures, units, returnSequences, rng, backend)
}

// LSTM is a long short-term memory layer with masked carry-forward
// semantics for both hidden and cell state.
type LSTM[B tensor.Backend] = nn.LSTM[B]

// NewLSTM creates a new LSTM layer.
func NewLSTM[B tensor.Backend](inFeatures, units int, returnSequences bool, rng *rand.Rand, backend B) *LSTM[B] {
	return nn.NewLSTM(inFeatures, units, returnSequences, rng, backend)
}

// Dense is a fully connected layer.
type Dense[B tensor.Backend] = nn.Dense[B]

// NewDense creates a new Dense layer.
func NewDense[B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, backend B) *Dense[B] {
	return nn.NewDense(inFeatures, outFeatures, rng, backend)
}

// Activations

// Tanh applies the element-wise hyperbolic tangent.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// NewTanh creates a new Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// Sigmoid applies the element-wise logistic function.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return nn.NewSigmoid[B]()
}

// Containers

// Sequential chains modules, threading data and mask.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Initialization

// Xavier draws weights from the Glorot uniform distribution.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float64, B] {
	return nn.Xavier(fanIn, fanOut, shape, rng, backend)
}
