package seq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragged-ml/ragged/internal/backend/cpu"
	"github.com/ragged-ml/ragged/internal/seq"
	"github.com/ragged-ml/ragged/internal/tensor"
)

// TestMaskOf_TwoSequences checks the reference scenario: lengths 3 and 5,
// feature width 2, padded to 5 steps.
func TestMaskOf_TwoSequences(t *testing.T) {
	backend := cpu.New()

	batch := []*tensor.Tensor[float64, Backend]{
		sequence(t, backend, []float64{1, 2, 3, 4, 5, 6}, 3, 2),
		sequence(t, backend, []float64{7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 5, 2),
	}

	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	mask := seq.MaskOf(padded)
	require.Equal(t, tensor.Shape{2, 5}, mask.Shape())

	want := []bool{
		true, true, true, false, false,
		true, true, true, true, true,
	}
	assert.Equal(t, want, mask.Data())
}

// TestMaskOf_ContiguousPrefix checks that the derived mask has exactly
// len(S_i) true entries for sequence i, contiguous from position 0.
func TestMaskOf_ContiguousPrefix(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(17))

	batch, err := seq.RandomBatch(16, 1, 9, 4, rng, backend)
	require.NoError(t, err)

	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	mask := seq.MaskOf(padded)
	lengths := seq.Lengths(batch)
	steps := padded.Shape()[1]

	assert.Equal(t, lengths, seq.MaskLengths(mask))
	for i, length := range lengths {
		for step := 0; step < steps; step++ {
			assert.Equal(t, step < length, mask.At(i, step),
				"sequence %d step %d", i, step)
		}
	}
}

// TestMaskOf_AllZeroSequence documents the zero-sentinel ambiguity: a
// sequence of all-zero feature vectors is indistinguishable from padding
// and is masked at every step.
func TestMaskOf_AllZeroSequence(t *testing.T) {
	backend := cpu.New()

	batch := []*tensor.Tensor[float64, Backend]{
		tensor.Zeros[float64](tensor.Shape{4, 2}, backend),
		sequence(t, backend, []float64{1, 2, 3, 4, 5, 6, 7, 8}, 4, 2),
	}

	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	mask := seq.MaskOf(padded)
	for step := 0; step < 4; step++ {
		assert.False(t, mask.At(0, step), "all-zero sequence must be fully masked")
		assert.True(t, mask.At(1, step))
	}
}

// TestMaskOf_ZeroTimestepInsideData: a single all-zero timestep inside
// real data is masked too, same ambiguity as the all-zero sequence.
func TestMaskOf_ZeroTimestepInsideData(t *testing.T) {
	backend := cpu.New()

	batch := []*tensor.Tensor[float64, Backend]{
		sequence(t, backend, []float64{1, 2, 0, 0, 5, 6}, 3, 2),
	}

	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	mask := seq.MaskOf(padded)
	assert.Equal(t, []bool{true, false, true}, mask.Data())
}

// TestMaskOf_PartialZeroTimestep: a timestep with one zero feature and one
// non-zero feature is still valid.
func TestMaskOf_PartialZeroTimestep(t *testing.T) {
	backend := cpu.New()

	batch := []*tensor.Tensor[float64, Backend]{
		sequence(t, backend, []float64{0, 2, 3, 0}, 2, 2),
	}

	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	mask := seq.MaskOf(padded)
	assert.Equal(t, []bool{true, true}, mask.Data())
}

func TestRandomBatch_Validation(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	_, err := seq.RandomBatch(0, 1, 5, 2, rng, backend)
	assert.Error(t, err)
	_, err = seq.RandomBatch(3, 5, 1, 2, rng, backend)
	assert.Error(t, err)
	_, err = seq.RandomBatch(3, 1, 5, 0, rng, backend)
	assert.Error(t, err)

	batch, err := seq.RandomBatch(3, 2, 2, 4, rng, backend)
	require.NoError(t, err)
	for _, s := range batch {
		assert.Equal(t, tensor.Shape{2, 4}, s.Shape())
	}
}
