// Package seq is the public API for padding and masking batches of
// variable-length sequences.
//
// The round trip is exact: Unpad(Pad(batch), Lengths(batch)) reproduces
// every sequence bit for bit, and MaskOf(Pad(batch)) is true for exactly
// the original length of each sequence, contiguous from position 0.
package seq

import (
	"math/rand"

	"github.com/ragged-ml/ragged/internal/seq"
	"github.com/ragged-ml/ragged/internal/tensor"
)

// Sentinel is the fill value used for padded timesteps.
const Sentinel = seq.Sentinel

// Pad right-pads a batch of variable-length [length, features] sequences
// with the zero sentinel up to the longest sequence in the batch.
func Pad[B tensor.Backend](batch []*tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	return seq.Pad(batch)
}

// PadTo right-pads a batch up to an explicit target length.
func PadTo[B tensor.Backend](batch []*tensor.Tensor[float64, B], maxLen int) (*tensor.Tensor[float64, B], error) {
	return seq.PadTo(batch, maxLen)
}

// Unpad truncates a padded batch back into a ragged batch of sequences.
func Unpad[B tensor.Backend](padded *tensor.Tensor[float64, B], lengths []int) ([]*tensor.Tensor[float64, B], error) {
	return seq.Unpad(padded, lengths)
}

// Lengths returns the length of every sequence in a ragged batch.
func Lengths[B tensor.Backend](batch []*tensor.Tensor[float64, B]) []int {
	return seq.Lengths(batch)
}

// MaskOf derives the [batch, steps] validity mask of a padded batch by
// comparing each timestep against the zero sentinel.
func MaskOf[B tensor.Backend](padded *tensor.Tensor[float64, B]) *tensor.Tensor[bool, B] {
	return seq.MaskOf(padded)
}

// MaskLengths counts the valid timesteps of every sequence in a mask.
func MaskLengths[B tensor.Backend](mask *tensor.Tensor[bool, B]) []int {
	return seq.MaskLengths(mask)
}

// RandomBatch generates n variable-length sequences of standard normal
// feature vectors with lengths drawn uniformly from [minLen, maxLen].
func RandomBatch[B tensor.Backend](n, minLen, maxLen, features int, rng *rand.Rand, b B) ([]*tensor.Tensor[float64, B], error) {
	return seq.RandomBatch(n, minLen, maxLen, features, rng, b)
}
