package nn_test

import (
	"math/rand"
	"testing"

	"github.com/ragged-ml/ragged/internal/backend/cpu"
	"github.com/ragged-ml/ragged/internal/nn"
	"github.com/ragged-ml/ragged/internal/seq"
	"github.com/ragged-ml/ragged/internal/tensor"
)

// The benchmarks compare the two evaluation strategies for a ragged
// batch: one padded batch forward pass versus one forward pass per
// sequence. Both produce the same numbers (see the equivalence tests);
// the padded pass amortizes the per-timestep work across the batch.

func benchmarkModel(rng *rand.Rand, backend *cpu.CPUBackend) *nn.Sequential[Backend] {
	return nn.NewSequential[Backend](
		nn.NewMasking[Backend](),
		nn.NewSimpleRNN[Backend](features, units, true, rng, backend),
		nn.NewSimpleRNN[Backend](units, units, false, rng, backend),
		nn.NewDense[Backend](units, 1, rng, backend),
		nn.NewSigmoid[Backend](),
	)
}

func BenchmarkPaddedBatch(b *testing.B) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))
	model := benchmarkModel(rng, backend)

	batch, err := seq.RandomBatch(64, 4, 32, features, rng, backend)
	if err != nil {
		b.Fatal(err)
	}
	padded, err := seq.Pad(batch)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		model.Forward(padded, nil)
	}
}

func BenchmarkPerSequence(b *testing.B) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))
	model := benchmarkModel(rng, backend)

	batch, err := seq.RandomBatch(64, 4, 32, features, rng, backend)
	if err != nil {
		b.Fatal(err)
	}
	singles := make([]*tensor.Tensor[float64, Backend], len(batch))
	for i, s := range batch {
		single, err := seq.Pad([]*tensor.Tensor[float64, Backend]{s})
		if err != nil {
			b.Fatal(err)
		}
		singles[i] = single
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range singles {
			model.Forward(s, nil)
		}
	}
}
