package tensor

// Add performs element-wise addition with broadcasting.
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Tanh applies the element-wise hyperbolic tangent.
func (t *Tensor[T, B]) Tanh() *Tensor[T, B] {
	return New[T, B](t.backend.Tanh(t.raw), t.backend)
}

// Sigmoid applies the element-wise logistic function.
func (t *Tensor[T, B]) Sigmoid() *Tensor[T, B] {
	return New[T, B](t.backend.Sigmoid(t.raw), t.backend)
}

// T transposes a 2D tensor.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	return New[T, B](t.backend.Transpose2D(t.raw), t.backend)
}

// NotEqualScalar compares every element against a scalar sentinel and
// returns a Bool tensor of the same shape.
func (t *Tensor[T, B]) NotEqualScalar(scalar T) *Tensor[bool, B] {
	return New[bool, B](t.backend.NotEqualScalar(t.raw, scalar), t.backend)
}

// AnyDim reduces a Bool tensor with logical OR along one dimension.
func AnyDim[B Backend](t *Tensor[bool, B], dim int) *Tensor[bool, B] {
	return New[bool, B](t.Backend().AnyDim(t.Raw(), dim), t.Backend())
}

// SelectRows picks, for each batch row i, row i of a when cond[i] is true
// and row i of b otherwise. This is the carry-forward primitive of the
// masked recurrent update.
func SelectRows[T DType, B Backend](cond *Tensor[bool, B], a, b *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](a.Backend().SelectRows(cond.Raw(), a.Raw(), b.Raw()), a.Backend())
}
