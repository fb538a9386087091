package nn

import (
	"fmt"

	"github.com/ragged-ml/ragged/internal/seq"
	"github.com/ragged-ml/ragged/internal/tensor"
)

// Masking derives the validity mask of a zero-padded [batch, steps,
// features] batch and attaches it to the forward pass. The data itself
// passes through unchanged.
//
// A timestep is valid when any of its features differs from the zero
// sentinel (see seq.MaskOf for the inherent all-zero-timestep ambiguity).
//
// Example:
//
//	masking := nn.NewMasking[Backend]()
//	x, mask := masking.Forward(padded, nil)
type Masking[B tensor.Backend] struct{}

// NewMasking creates a new Masking layer.
func NewMasking[B tensor.Backend]() *Masking[B] {
	return &Masking[B]{}
}

// Forward computes the mask from the input and passes the input through.
// Any incoming mask is replaced: Masking is the start of mask propagation.
func (m *Masking[B]) Forward(input *tensor.Tensor[float64, B], _ *tensor.Tensor[bool, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[bool, B]) {
	if len(input.Shape()) != 3 {
		panic(fmt.Sprintf("Masking.Forward: expected 3D [batch, steps, features] input, got shape %v", input.Shape()))
	}
	return input, seq.MaskOf(input)
}

// Parameters returns nil (Masking has no trainable parameters).
func (m *Masking[B]) Parameters() []*Parameter[B] {
	return nil
}
