package seq

import (
	"fmt"
	"math/rand"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// RandomBatch generates n variable-length sequences of standard normal
// feature vectors. Lengths are drawn uniformly from [minLen, maxLen].
//
// Gaussian entries make an all-zero feature vector (the padding sentinel)
// occur with probability zero, so the derived mask of the padded batch
// recovers the original lengths exactly.
func RandomBatch[B tensor.Backend](n, minLen, maxLen, features int, rng *rand.Rand, b B) ([]*tensor.Tensor[float64, B], error) {
	if n <= 0 {
		return nil, fmt.Errorf("random batch: size must be positive, got %d", n)
	}
	if minLen <= 0 || maxLen < minLen {
		return nil, fmt.Errorf("random batch: invalid length range [%d, %d]", minLen, maxLen)
	}
	if features <= 0 {
		return nil, fmt.Errorf("random batch: feature width must be positive, got %d", features)
	}

	batch := make([]*tensor.Tensor[float64, B], n)
	for i := range batch {
		length := minLen + rng.Intn(maxLen-minLen+1)
		batch[i] = tensor.Randn[float64](tensor.Shape{length, features}, rng, b)
	}
	return batch, nil
}
