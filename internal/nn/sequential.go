package nn

import (
	"fmt"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// Sequential chains modules, threading both the activation and the
// validity mask from each module to the next.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewMasking[Backend](),
//	    nn.NewSimpleRNN(features, units, true, rng, backend),
//	    nn.NewSimpleRNN(units, units, false, rng, backend),
//	    nn.NewDense(units, 1, rng, backend),
//	    nn.NewSigmoid[Backend](),
//	)
//	pred, _ := model.Forward(padded, nil)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{modules: modules}
}

// Forward applies all modules in order. The incoming mask (usually nil;
// a Masking layer at the front derives it) is threaded through the stack.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float64, B], mask *tensor.Tensor[bool, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[bool, B]) {
	output := input
	for _, module := range s.modules {
		output, mask = module.Forward(output, mask)
	}
	return output, mask
}

// Parameters returns all trainable parameters from all modules.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic(fmt.Sprintf("Sequential.Module: index %d out of bounds [0, %d)", index, len(s.modules)))
	}
	return s.modules[index]
}
