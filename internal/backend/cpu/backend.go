// Package cpu implements the CPU compute backend for the ragged sequence library.
package cpu

import (
	"fmt"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// CPUBackend implements tensor.Backend with pure-Go element-wise kernels
// and gonum-backed float64 matrix multiplication.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b,
		func(x, y float64) float64 { return x + y },
		func(x, y float32) float32 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b,
		func(x, y float64) float64 { return x - y },
		func(x, y float32) float32 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b,
		func(x, y float64) float64 { return x * y },
		func(x, y float32) float32 { return x * y })
}

// binaryOp applies a float kernel element-wise with NumPy-style broadcasting.
func (cpu *CPUBackend) binaryOp(
	name string,
	a, b *tensor.RawTensor,
	op64 func(x, y float64) float64,
	op32 func(x, y float32) float32,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	result := tensor.MustRaw(outShape, a.DType())

	switch a.DType() {
	case tensor.Float64:
		out := result.AsFloat64()
		if !needsBroadcast {
			av, bv := a.AsFloat64(), b.AsFloat64()
			for i := range out {
				out[i] = op64(av[i], bv[i])
			}
			return result
		}
		av, bv := a.AsFloat64(), b.AsFloat64()
		ai := newBroadcastIndexer(a.Shape(), outShape)
		bi := newBroadcastIndexer(b.Shape(), outShape)
		for i := range out {
			out[i] = op64(av[ai.index(i)], bv[bi.index(i)])
		}
	case tensor.Float32:
		out := result.AsFloat32()
		if !needsBroadcast {
			av, bv := a.AsFloat32(), b.AsFloat32()
			for i := range out {
				out[i] = op32(av[i], bv[i])
			}
			return result
		}
		av, bv := a.AsFloat32(), b.AsFloat32()
		ai := newBroadcastIndexer(a.Shape(), outShape)
		bi := newBroadcastIndexer(b.Shape(), outShape)
		for i := range out {
			out[i] = op32(av[ai.index(i)], bv[bi.index(i)])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// broadcastIndexer maps a flat index into the output shape back to a flat
// index into an input shape, treating size-1 input dimensions as repeated.
type broadcastIndexer struct {
	outStrides []int
	inStrides  []int // 0 for broadcasted dimensions
}

func newBroadcastIndexer(in, out tensor.Shape) broadcastIndexer {
	outStrides := out.ComputeStrides()
	inStrides := make([]int, len(out))
	realStrides := in.ComputeStrides()
	offset := len(out) - len(in)
	for i := range out {
		if i < offset {
			continue // missing leading dimension, stride stays 0
		}
		if in[i-offset] != 1 {
			inStrides[i] = realStrides[i-offset]
		}
	}
	return broadcastIndexer{outStrides: outStrides, inStrides: inStrides}
}

func (bi broadcastIndexer) index(flat int) int {
	idx := 0
	for d := 0; d < len(bi.outStrides); d++ {
		coord := flat / bi.outStrides[d]
		flat -= coord * bi.outStrides[d]
		idx += coord * bi.inStrides[d]
	}
	return idx
}
