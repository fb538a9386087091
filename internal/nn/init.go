package nn

import (
	"math"
	"math/rand"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Draws values from the uniform distribution
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))), which keeps the
// variance of activations roughly constant across layers.
//
// The random source is injected so that layer construction is
// reproducible under a fixed seed.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float64, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.Zeros[float64](shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return t
}

// Orthogonal-ish recurrent initialization: scaled normal entries.
// Used for hidden-to-hidden weights where Xavier's fan-based bound is
// dominated by the square recurrent shape anyway.
func recurrentInit[B tensor.Backend](units int, rng *rand.Rand, backend B) *tensor.Tensor[float64, B] {
	std := 1.0 / math.Sqrt(float64(units))

	t := tensor.Zeros[float64](tensor.Shape{units, units}, backend)
	data := t.Data()
	for i := range data {
		data[i] = rng.NormFloat64() * std
	}
	return t
}

// Zeros creates a zero tensor, the conventional bias initialization.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Zeros[float64](shape, backend)
}
