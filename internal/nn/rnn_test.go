package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragged-ml/ragged/internal/backend/cpu"
	"github.com/ragged-ml/ragged/internal/nn"
	"github.com/ragged-ml/ragged/internal/seq"
	"github.com/ragged-ml/ragged/internal/tensor"
)

type Backend = *cpu.CPUBackend

const (
	features = 3
	units    = 8
)

// raggedBatch builds a deterministic batch of variable-length sequences.
func raggedBatch(t *testing.T, backend Backend, seed int64, n, minLen, maxLen int) []*tensor.Tensor[float64, Backend] {
	t.Helper()
	batch, err := seq.RandomBatch(n, minLen, maxLen, features, rand.New(rand.NewSource(seed)), backend)
	require.NoError(t, err)
	return batch
}

// forwardSingle evaluates one unpadded sequence through a stack and
// returns its output row.
func forwardSingle(t *testing.T, model *nn.Sequential[Backend], s *tensor.Tensor[float64, Backend]) *tensor.Tensor[float64, Backend] {
	t.Helper()
	single, err := seq.Pad([]*tensor.Tensor[float64, Backend]{s})
	require.NoError(t, err)
	out, _ := model.Forward(single, nil)
	return out
}

func TestSimpleRNN_OutputShapes(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	input := tensor.Randn[float64](tensor.Shape{4, 6, features}, rng, backend)

	seqLayer := nn.NewSimpleRNN[Backend](features, units, true, rng, backend)
	out, mask := seqLayer.Forward(input, nil)
	assert.Equal(t, tensor.Shape{4, 6, units}, out.Shape())
	assert.Nil(t, mask)

	lastLayer := nn.NewSimpleRNN[Backend](features, units, false, rng, backend)
	out, mask = lastLayer.Forward(input, nil)
	assert.Equal(t, tensor.Shape{4, units}, out.Shape())
	assert.Nil(t, mask)
}

// TestSimpleRNN_MaskedEqualsUnpadded is the central property: evaluating
// the masked recurrent stack on a padded batch matches evaluating each
// sequence alone, unpadded.
func TestSimpleRNN_MaskedEqualsUnpadded(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(42))

	model := nn.NewSequential[Backend](
		nn.NewMasking[Backend](),
		nn.NewSimpleRNN[Backend](features, units, true, rng, backend),
		nn.NewSimpleRNN[Backend](units, units, false, rng, backend),
		nn.NewDense[Backend](units, 1, rng, backend),
		nn.NewSigmoid[Backend](),
	)

	batch := raggedBatch(t, backend, 7, 12, 1, 9)
	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	got, _ := model.Forward(padded, nil)
	require.Equal(t, tensor.Shape{12, 1}, got.Shape())

	for i, s := range batch {
		want := forwardSingle(t, model, s)
		assert.InDelta(t, want.At(0, 0), got.At(i, 0), 1e-12, "sequence %d (length %d)", i, s.Shape()[0])
	}
}

// TestSimpleRNN_SingleLayerEquivalence checks the property on a bare
// recurrent layer, without the dense head.
func TestSimpleRNN_SingleLayerEquivalence(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(3))

	model := nn.NewSequential[Backend](
		nn.NewMasking[Backend](),
		nn.NewSimpleRNN[Backend](features, units, false, rng, backend),
	)

	batch := raggedBatch(t, backend, 11, 6, 2, 10)
	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	got, _ := model.Forward(padded, nil)
	for i, s := range batch {
		want := forwardSingle(t, model, s)
		for u := 0; u < units; u++ {
			assert.InDelta(t, want.At(0, u), got.At(i, u), 1e-12, "sequence %d unit %d", i, u)
		}
	}
}

// TestSimpleRNN_UnmaskedDiffers demonstrates the necessity of masking:
// without it, padded zeros keep updating the recurrent state and the
// result drifts away from the unpadded evaluation.
func TestSimpleRNN_UnmaskedDiffers(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(9))

	// Shared layers so that the masked and unmasked stacks use identical
	// weights.
	rnn1 := nn.NewSimpleRNN[Backend](features, units, true, rng, backend)
	rnn2 := nn.NewSimpleRNN[Backend](units, units, false, rng, backend)
	unmasked := nn.NewSequential[Backend](rnn1, rnn2)
	masked := nn.NewSequential[Backend](nn.NewMasking[Backend](), rnn1, rnn2)

	// Length 3 padded to 8: five extra zero timesteps.
	batch := []*tensor.Tensor[float64, Backend]{
		tensor.Randn[float64](tensor.Shape{3, features}, rng, backend),
		tensor.Randn[float64](tensor.Shape{8, features}, rng, backend),
	}
	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	reference := forwardSingle(t, masked, batch[0])
	got, _ := unmasked.Forward(padded, nil)

	maxDiff := 0.0
	for u := 0; u < units; u++ {
		if d := math.Abs(got.At(0, u) - reference.At(0, u)); d > maxDiff {
			maxDiff = d
		}
	}
	assert.Greater(t, maxDiff, 1e-6, "unmasked evaluation should diverge on the padded sequence")
}

// TestSimpleRNN_AllZeroSequence: a fully masked sequence never updates the
// state, so the layer emits its initial-state response.
func TestSimpleRNN_AllZeroSequence(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(23))

	model := nn.NewSequential[Backend](
		nn.NewMasking[Backend](),
		nn.NewSimpleRNN[Backend](features, units, false, rng, backend),
	)

	batch := []*tensor.Tensor[float64, Backend]{
		tensor.Zeros[float64](tensor.Shape{5, features}, backend),
		tensor.Randn[float64](tensor.Shape{5, features}, rng, backend),
	}
	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	out, _ := model.Forward(padded, nil)
	for u := 0; u < units; u++ {
		assert.Zero(t, out.At(0, u), "all-zero sequence must yield the initial state")
	}

	// The real sequence in the same batch still gets a data-derived state.
	nonZero := false
	for u := 0; u < units; u++ {
		if out.At(1, u) != 0 {
			nonZero = true
		}
	}
	assert.True(t, nonZero)
}

// TestSimpleRNN_MaskPropagation: a sequence-returning layer passes the
// incoming mask through unchanged; a final layer drops it.
func TestSimpleRNN_MaskPropagation(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(6))

	batch := raggedBatch(t, backend, 8, 4, 2, 6)
	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	masking := nn.NewMasking[Backend]()
	x, mask := masking.Forward(padded, nil)
	require.NotNil(t, mask)

	seqLayer := nn.NewSimpleRNN[Backend](features, units, true, rng, backend)
	x, midMask := seqLayer.Forward(x, mask)
	assert.Same(t, mask, midMask, "sequence-returning layer must propagate the mask unchanged")

	lastLayer := nn.NewSimpleRNN[Backend](units, units, false, rng, backend)
	_, outMask := lastLayer.Forward(x, midMask)
	assert.Nil(t, outMask, "final recurrent layer emits no mask")
}

func TestSimpleRNN_Parameters(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(2))

	layer := nn.NewSimpleRNN[Backend](features, units, false, rng, backend)
	params := layer.Parameters()
	require.Len(t, params, 3)
	assert.Equal(t, tensor.Shape{units, features}, params[0].Tensor().Shape())
	assert.Equal(t, tensor.Shape{units, units}, params[1].Tensor().Shape())
	assert.Equal(t, tensor.Shape{units}, params[2].Tensor().Shape())
}
