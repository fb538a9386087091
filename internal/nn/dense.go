package nn

import (
	"fmt"
	"math/rand"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// Dense is a fully connected layer: y = x @ W.T + b.
//
// Input shape: [batch, inFeatures]; output shape: [batch, outFeatures].
// In a masked stack it follows a non-sequence recurrent layer, so its
// input is the last valid state of each sequence and the mask is already
// nil; any incoming mask is passed through untouched.
type Dense[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B] // [outFeatures, inFeatures]
	bias        *Parameter[B] // [outFeatures]
}

// NewDense creates a new Dense layer with Xavier-initialized weights and
// zero biases.
func NewDense[B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, backend B) *Dense[B] {
	return &Dense[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Xavier(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, rng, backend)),
		bias:        NewParameter("bias", Zeros[B](tensor.Shape{outFeatures}, backend)),
	}
}

// Forward computes y = x @ W.T + b on a [batch, inFeatures] input.
func (d *Dense[B]) Forward(input *tensor.Tensor[float64, B], mask *tensor.Tensor[bool, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[bool, B]) {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Dense.Forward: expected 2D [batch, features] input, got shape %v", shape))
	}
	if shape[1] != d.inFeatures {
		panic(fmt.Sprintf("Dense.Forward: expected %d input features, got %d", d.inFeatures, shape[1]))
	}

	output := input.MatMul(d.weight.Tensor().T()).Add(d.bias.Tensor().Reshape(1, d.outFeatures))
	return output, mask
}

// Parameters returns [weight, bias].
func (d *Dense[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{d.weight, d.bias}
}

// Weight returns the weight parameter.
func (d *Dense[B]) Weight() *Parameter[B] {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense[B]) Bias() *Parameter[B] {
	return d.bias
}
