package seq

import (
	"fmt"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// MaskOf derives the validity mask of a padded [batch, steps, features]
// tensor. A timestep is valid when any of its features differs from the
// zero sentinel; the result has shape [batch, steps].
//
// The mask is implicit in the data: for sequences produced by Pad it is
// true for exactly the original length of each sequence, contiguous from
// position 0. A timestep of real data that happens to equal the sentinel
// in every feature is indistinguishable from padding and comes out masked;
// an entirely-zero sequence is masked at every step. This ambiguity is
// inherent to the zero-sentinel convention.
func MaskOf[B tensor.Backend](padded *tensor.Tensor[float64, B]) *tensor.Tensor[bool, B] {
	shape := padded.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("mask: expected 3D [batch, steps, features] tensor, got shape %v", shape))
	}
	return tensor.AnyDim(padded.NotEqualScalar(Sentinel), 2)
}

// MaskLengths counts the valid timesteps of every sequence in a
// [batch, steps] mask.
func MaskLengths[B tensor.Backend](mask *tensor.Tensor[bool, B]) []int {
	shape := mask.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("mask: expected 2D [batch, steps] mask, got shape %v", shape))
	}
	batch, steps := shape[0], shape[1]

	data := mask.Data()
	lengths := make([]int, batch)
	for i := 0; i < batch; i++ {
		n := 0
		for t := 0; t < steps; t++ {
			if data[i*steps+t] {
				n++
			}
		}
		lengths[i] = n
	}
	return lengths
}
