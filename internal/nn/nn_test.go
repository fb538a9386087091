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

func TestMasking_DerivesMask(t *testing.T) {
	backend := cpu.New()

	data := []float64{
		1, 2, 3, 4, 0, 0, // length 2, padded to 3
		5, 6, 7, 8, 9, 10, // length 3
	}
	padded, err := tensor.FromSlice(data, tensor.Shape{2, 3, 2}, backend)
	require.NoError(t, err)

	masking := nn.NewMasking[Backend]()
	out, mask := masking.Forward(padded, nil)

	assert.Same(t, padded, out, "Masking must pass the data through unchanged")
	require.NotNil(t, mask)
	assert.Equal(t, []bool{true, true, false, true, true, true}, mask.Data())
	assert.Nil(t, masking.Parameters())
}

func TestDense_KnownWeights(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	layer := nn.NewDense[Backend](2, 2, rng, backend)
	copy(layer.Weight().Tensor().Data(), []float64{1, 2, 3, 4}) // [out, in]
	copy(layer.Bias().Tensor().Data(), []float64{0.5, -0.5})

	input, err := tensor.FromSlice([]float64{1, 1, 2, 0}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	out, mask := layer.Forward(input, nil)
	assert.Nil(t, mask)

	// y = x @ W.T + b
	want := []float64{
		1*1 + 1*2 + 0.5, 1*3 + 1*4 - 0.5,
		2*1 + 0*2 + 0.5, 2*3 + 0*4 - 0.5,
	}
	for i, w := range want {
		assert.InDelta(t, w, out.Data()[i], 1e-15)
	}
}

func TestActivations(t *testing.T) {
	backend := cpu.New()

	input, err := tensor.FromSlice([]float64{-2, 0, 2}, tensor.Shape{1, 3}, backend)
	require.NoError(t, err)

	tanhOut, _ := nn.NewTanh[Backend]().Forward(input, nil)
	sigOut, _ := nn.NewSigmoid[Backend]().Forward(input, nil)

	for i, v := range []float64{-2, 0, 2} {
		assert.InDelta(t, math.Tanh(v), tanhOut.Data()[i], 1e-15)
		assert.InDelta(t, 1/(1+math.Exp(-v)), sigOut.Data()[i], 1e-15)
	}
}

func TestSequential_ThreadsMask(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(4))

	model := nn.NewSequential[Backend](
		nn.NewMasking[Backend](),
		nn.NewSimpleRNN[Backend](features, units, true, rng, backend),
	)

	batch := raggedBatch(t, backend, 13, 3, 1, 5)
	padded, err := seq.Pad(batch)
	require.NoError(t, err)

	out, mask := model.Forward(padded, nil)
	assert.Equal(t, tensor.Shape{3, padded.Shape()[1], units}, out.Shape())
	require.NotNil(t, mask)
	assert.Equal(t, seq.MaskOf(padded).Data(), mask.Data())
}

func TestSequential_AddAndParameters(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(4))

	model := nn.NewSequential[Backend]()
	model.Add(nn.NewMasking[Backend]())
	model.Add(nn.NewSimpleRNN[Backend](features, units, false, rng, backend))
	model.Add(nn.NewDense[Backend](units, 1, rng, backend))

	assert.Equal(t, 3, model.Len())
	// 3 recurrent parameters + weight and bias of the dense head.
	assert.Len(t, model.Parameters(), 5)

	assert.Panics(t, func() { model.Module(3) })
}

func TestXavier_Bounds(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(8))

	w := nn.Xavier(64, 32, tensor.Shape{32, 64}, rng, backend)
	bound := math.Sqrt(6.0 / float64(64+32))
	for _, v := range w.Data() {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}
}
