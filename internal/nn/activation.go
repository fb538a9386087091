package nn

import (
	"github.com/ragged-ml/ragged/internal/tensor"
)

// Tanh applies the element-wise hyperbolic tangent.
// The mask passes through untouched.
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies tanh element-wise.
func (a *Tanh[B]) Forward(input *tensor.Tensor[float64, B], mask *tensor.Tensor[bool, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[bool, B]) {
	return input.Tanh(), mask
}

// Parameters returns nil (Tanh has no trainable parameters).
func (a *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}

// Sigmoid applies the element-wise logistic function, squashing values
// into (0, 1). Used as the output activation for per-sequence scalar
// predictions. The mask passes through untouched.
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies the logistic function element-wise.
func (a *Sigmoid[B]) Forward(input *tensor.Tensor[float64, B], mask *tensor.Tensor[bool, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[bool, B]) {
	return input.Sigmoid(), mask
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (a *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}
