// Package tensor is the public tensor API of the ragged sequence library.
//
// It re-exports the internal tensor core: shapes, typed tensors over a
// compute backend, and the creation and manipulation helpers the sequence
// layers are built on.
package tensor

import (
	"math/rand"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType carries runtime type information for tensors.
type DataType = tensor.DataType

// Supported data types.
const (
	Float64 = tensor.Float64
	Float32 = tensor.Float32
	Int32   = tensor.Int32
	Bool    = tensor.Bool
)

// DType is a constraint for supported tensor element types.
type DType = tensor.DType

// Backend defines the compute operations the sequence layers need.
type Backend = tensor.Backend

// RawTensor is the untyped tensor representation used by backends.
type RawTensor = tensor.RawTensor

// Tensor is a typed tensor with element type T computed by backend B.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// New wraps a RawTensor and backend into a typed Tensor.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, b)
}

// Zeros creates a tensor filled with zero values.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones (true for Bool tensors).
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with the given value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Randn creates a float tensor with standard normal entries drawn from rng.
func Randn[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, rng, b)
}

// SelectRows picks, for each batch row i, row i of a when cond[i] is true
// and row i of b otherwise.
func SelectRows[T DType, B Backend](cond *Tensor[bool, B], a, b *Tensor[T, B]) *Tensor[T, B] {
	return tensor.SelectRows(cond, a, b)
}

// AnyDim reduces a Bool tensor with logical OR along one dimension.
func AnyDim[B Backend](t *Tensor[bool, B], dim int) *Tensor[bool, B] {
	return tensor.AnyDim(t, dim)
}
