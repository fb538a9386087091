// Package seq implements padding and masking for batches of
// variable-length sequences.
//
// A sequence is a 2D [length, features] tensor; lengths vary per sequence.
// Pad assembles a batch of sequences into one 3D [batch, maxLen, features]
// tensor by right-padding each sequence with the zero sentinel, and MaskOf
// recovers the implied [batch, maxLen] validity mask by comparing each
// timestep against the sentinel.
package seq

import (
	"fmt"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// Sentinel is the fill value used for padded timesteps.
const Sentinel = 0.0

// Pad right-pads a batch of variable-length sequences with the zero
// sentinel up to the longest sequence in the batch.
//
// Each input tensor must be 2D [length, features] with a common feature
// width. The result is a 3D [batch, maxLen, features] tensor whose
// non-padded prefix for each sequence is identical to the original.
func Pad[B tensor.Backend](batch []*tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	maxLen := 0
	for _, s := range batch {
		if l := seqLen(s); l > maxLen {
			maxLen = l
		}
	}
	return PadTo(batch, maxLen)
}

// PadTo right-pads a batch of variable-length sequences up to an explicit
// target length. It fails if any sequence is longer than the target.
func PadTo[B tensor.Backend](batch []*tensor.Tensor[float64, B], maxLen int) (*tensor.Tensor[float64, B], error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("pad: empty batch")
	}
	if maxLen <= 0 {
		return nil, fmt.Errorf("pad: target length must be positive, got %d", maxLen)
	}

	features := -1
	for i, s := range batch {
		shape := s.Shape()
		if len(shape) != 2 {
			return nil, fmt.Errorf("pad: sequence %d: expected 2D [length, features] tensor, got shape %v", i, shape)
		}
		if features == -1 {
			features = shape[1]
		} else if shape[1] != features {
			return nil, fmt.Errorf("pad: sequence %d has %d features, want %d", i, shape[1], features)
		}
		if shape[0] > maxLen {
			return nil, fmt.Errorf("pad: sequence %d has length %d, longer than target %d", i, shape[0], maxLen)
		}
	}

	padded := tensor.Zeros[float64](tensor.Shape{len(batch), maxLen, features}, batch[0].Backend())
	dst := padded.Data()
	for i, s := range batch {
		copy(dst[i*maxLen*features:], s.Data())
	}
	return padded, nil
}

// Lengths returns the length of every sequence in a ragged batch.
func Lengths[B tensor.Backend](batch []*tensor.Tensor[float64, B]) []int {
	lengths := make([]int, len(batch))
	for i, s := range batch {
		lengths[i] = seqLen(s)
	}
	return lengths
}

// Unpad truncates a padded [batch, maxLen, features] tensor back into a
// ragged batch of 2D [length, features] tensors. Together with Pad this
// forms an exact round trip: Unpad(Pad(batch), Lengths(batch)) reproduces
// every sequence bit for bit.
func Unpad[B tensor.Backend](padded *tensor.Tensor[float64, B], lengths []int) ([]*tensor.Tensor[float64, B], error) {
	shape := padded.Shape()
	if len(shape) != 3 {
		return nil, fmt.Errorf("unpad: expected 3D [batch, steps, features] tensor, got shape %v", shape)
	}
	batch, maxLen, features := shape[0], shape[1], shape[2]
	if len(lengths) != batch {
		return nil, fmt.Errorf("unpad: got %d lengths for batch of %d", len(lengths), batch)
	}

	src := padded.Data()
	out := make([]*tensor.Tensor[float64, B], batch)
	for i, l := range lengths {
		if l <= 0 || l > maxLen {
			return nil, fmt.Errorf("unpad: sequence %d: length %d out of range (1..%d)", i, l, maxLen)
		}
		s, err := tensor.FromSlice(src[i*maxLen*features:i*maxLen*features+l*features], tensor.Shape{l, features}, padded.Backend())
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func seqLen[B tensor.Backend](s *tensor.Tensor[float64, B]) int {
	shape := s.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("seq: expected 2D [length, features] tensor, got shape %v", shape))
	}
	return shape[0]
}
