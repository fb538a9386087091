package nn

import (
	"fmt"
	"math/rand"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// SimpleRNN is a single recurrent layer with tanh state updates:
//
//	h_t = tanh(x_t @ Wih.T + h_{t-1} @ Whh.T + b)
//
// Masking semantics: for any batch row whose timestep t is padding (mask
// false at (row, t)), the update is suppressed and the previous hidden
// state is carried forward unchanged. All computation within a timestep is
// row-independent, so valid rows of a padded batch produce exactly the
// values an unpadded per-sequence evaluation would.
//
// With returnSequences the layer emits the (carried) hidden state at every
// timestep as a [batch, steps, units] tensor and propagates the incoming
// mask unchanged, so a following recurrent layer suppresses the same
// positions. Without returnSequences it emits the final carried state,
// which equals the state after the last valid timestep of each sequence,
// as a [batch, units] tensor with a nil mask.
type SimpleRNN[B tensor.Backend] struct {
	inFeatures      int
	units           int
	returnSequences bool
	wih             *Parameter[B] // [units, inFeatures]
	whh             *Parameter[B] // [units, units]
	bias            *Parameter[B] // [units]
	backend         B
}

// NewSimpleRNN creates a new SimpleRNN layer.
//
// Input-to-hidden weights use Xavier initialization, hidden-to-hidden
// weights use scaled normal initialization, biases start at zero. rng is
// the source for all weight draws.
func NewSimpleRNN[B tensor.Backend](inFeatures, units int, returnSequences bool, rng *rand.Rand, backend B) *SimpleRNN[B] {
	return &SimpleRNN[B]{
		inFeatures:      inFeatures,
		units:           units,
		returnSequences: returnSequences,
		wih:             NewParameter("wih", Xavier(inFeatures, units, tensor.Shape{units, inFeatures}, rng, backend)),
		whh:             NewParameter("whh", recurrentInit(units, rng, backend)),
		bias:            NewParameter("bias", Zeros[B](tensor.Shape{units}, backend)),
		backend:         backend,
	}
}

// Forward runs the recurrence over a [batch, steps, features] input.
func (r *SimpleRNN[B]) Forward(input *tensor.Tensor[float64, B], mask *tensor.Tensor[bool, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[bool, B]) {
	shape := input.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("SimpleRNN.Forward: expected 3D [batch, steps, features] input, got shape %v", shape))
	}
	if shape[2] != r.inFeatures {
		panic(fmt.Sprintf("SimpleRNN.Forward: expected %d input features, got %d", r.inFeatures, shape[2]))
	}
	batch, steps := shape[0], shape[1]

	wihT := r.wih.Tensor().T()                  // [inFeatures, units]
	whhT := r.whh.Tensor().T()                  // [units, units]
	bias := r.bias.Tensor().Reshape(1, r.units) // broadcasts over the batch

	h := tensor.Zeros[float64](tensor.Shape{batch, r.units}, r.backend)

	var outputs *tensor.Tensor[float64, B]
	if r.returnSequences {
		outputs = tensor.Zeros[float64](tensor.Shape{batch, steps, r.units}, r.backend)
	}

	for t := 0; t < steps; t++ {
		xt := input.Step(t) // [batch, inFeatures]
		next := xt.MatMul(wihT).Add(h.MatMul(whhT)).Add(bias).Tanh()
		if mask != nil {
			// padded rows keep their previous state
			next = tensor.SelectRows(mask.Col(t), next, h)
		}
		h = next
		if r.returnSequences {
			outputs.SetStep(t, h)
		}
	}

	if r.returnSequences {
		return outputs, mask
	}
	return h, nil
}

// Parameters returns [wih, whh, bias].
func (r *SimpleRNN[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{r.wih, r.whh, r.bias}
}

// Units returns the hidden state width.
func (r *SimpleRNN[B]) Units() int {
	return r.units
}

// InFeatures returns the expected input feature width.
func (r *SimpleRNN[B]) InFeatures() int {
	return r.inFeatures
}

// ReturnSequences reports whether the layer emits per-step outputs.
func (r *SimpleRNN[B]) ReturnSequences() bool {
	return r.returnSequences
}
