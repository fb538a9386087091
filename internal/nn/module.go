// Package nn implements masking-aware neural network layers for
// variable-length sequence batches.
//
// Building blocks:
//   - Module interface: forward pass threading a validity mask
//   - Masking: derives the mask from a zero-padded batch
//   - SimpleRNN, LSTM: recurrent layers that suppress state updates on
//     padded timesteps
//   - Dense: fully connected output layer
//   - Activations: Tanh, Sigmoid
//   - Sequential: container for stacking layers
//
// The mask travels alongside the data: Masking creates it, recurrent
// layers consume it and pass it through unchanged while they return
// per-step outputs, and everything downstream of a final (non-sequence)
// recurrent layer sees a nil mask.
package nn

import (
	"github.com/ragged-ml/ragged/internal/tensor"
)

// Module is the base interface for all layers.
//
// Forward takes the input tensor together with the validity mask of its
// timestep dimension (nil when the input carries no timestep dimension or
// no masking is in effect) and returns the output tensor with the mask
// that applies to it.
//
// Modules compose into stacks:
//
//	model := nn.NewSequential(
//	    nn.NewMasking[Backend](),
//	    nn.NewSimpleRNN(features, units, true, rng, backend),
//	    nn.NewSimpleRNN(units, units, false, rng, backend),
//	    nn.NewDense(units, 1, rng, backend),
//	    nn.NewSigmoid[Backend](),
//	)
type Module[B tensor.Backend] interface {
	// Forward computes the module output and the mask applying to it.
	Forward(input *tensor.Tensor[float64, B], mask *tensor.Tensor[bool, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[bool, B])

	// Parameters returns all trainable parameters of this module.
	// Modules without parameters (activations, Masking) return nil.
	Parameters() []*Parameter[B]
}
