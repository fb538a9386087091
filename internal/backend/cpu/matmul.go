package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// MatMul multiplies two 2D tensors: (M, K) @ (K, N) -> (M, N).
//
// The float64 path wraps the raw buffers in gonum Dense matrices
// (zero-copy) and delegates to gonum's BLAS-backed multiply. The float32
// path is a plain loop.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: expected 2D tensors, got %v and %v", aShape, bShape))
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %v @ %v", aShape, bShape))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	m, k, n := aShape[0], aShape[1], bShape[1]
	result := tensor.MustRaw(tensor.Shape{m, n}, a.DType())

	switch a.DType() {
	case tensor.Float64:
		am := mat.NewDense(m, k, a.AsFloat64())
		bm := mat.NewDense(k, n, b.AsFloat64())
		out := mat.NewDense(m, n, result.AsFloat64())
		out.Mul(am, bm)
	case tensor.Float32:
		av, bv, out := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var sum float32
				for p := 0; p < k; p++ {
					sum += av[i*k+p] * bv[p*n+j]
				}
				out[i*n+j] = sum
			}
		}
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// Transpose2D swaps the two dimensions of a 2D tensor.
func (cpu *CPUBackend) Transpose2D(x *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("transpose: expected 2D tensor, got %v", shape))
	}
	rows, cols := shape[0], shape[1]
	result := tensor.MustRaw(tensor.Shape{cols, rows}, x.DType())

	switch x.DType() {
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dst[j*rows+i] = src[i*cols+j]
			}
		}
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dst[j*rows+i] = src[i*cols+j]
			}
		}
	case tensor.Bool:
		src, dst := x.AsBool(), result.AsBool()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dst[j*rows+i] = src[i*cols+j]
			}
		}
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", x.DType()))
	}

	return result
}
