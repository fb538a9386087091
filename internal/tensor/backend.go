package tensor

// Backend defines the compute operations the sequence layers need.
// The CPU implementation lives in internal/backend/cpu.
//
// Every element-wise operation is row-independent: the result for batch
// row i depends only on row i of the inputs. The masked recurrent
// evaluation relies on this to make the padded-batch result match the
// per-sequence result exactly.
type Backend interface {
	// Element-wise binary operations with trailing-dimension broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// MatMul multiplies two 2D tensors: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Element-wise math.
	Tanh(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor

	// NotEqualScalar compares every element against a scalar sentinel and
	// returns a Bool tensor of the same shape.
	NotEqualScalar(x *RawTensor, scalar any) *RawTensor

	// AnyDim reduces a Bool tensor with logical OR along one dimension.
	AnyDim(x *RawTensor, dim int) *RawTensor

	// SelectRows picks, for each batch row i, row i of a when cond[i] is
	// true and row i of b otherwise. cond is a Bool tensor of shape
	// [batch]; a and b share the shape [batch, ...].
	SelectRows(cond, a, b *RawTensor) *RawTensor

	// Transpose2D swaps the two dimensions of a 2D tensor.
	Transpose2D(x *RawTensor) *RawTensor

	// Name returns the backend name.
	Name() string
}
