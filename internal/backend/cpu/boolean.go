package cpu

import (
	"fmt"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// NotEqualScalar compares every element against a scalar sentinel and
// returns a Bool tensor of the same shape.
func (cpu *CPUBackend) NotEqualScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := tensor.MustRaw(x.Shape(), tensor.Bool)
	out := result.AsBool()

	switch x.DType() {
	case tensor.Float64:
		s, ok := scalar.(float64)
		if !ok {
			panic(fmt.Sprintf("notEqualScalar: expected float64 scalar for %s tensor, got %T", x.DType(), scalar))
		}
		for i, v := range x.AsFloat64() {
			out[i] = v != s
		}
	case tensor.Float32:
		s, ok := scalar.(float32)
		if !ok {
			panic(fmt.Sprintf("notEqualScalar: expected float32 scalar for %s tensor, got %T", x.DType(), scalar))
		}
		for i, v := range x.AsFloat32() {
			out[i] = v != s
		}
	case tensor.Int32:
		s, ok := scalar.(int32)
		if !ok {
			panic(fmt.Sprintf("notEqualScalar: expected int32 scalar for %s tensor, got %T", x.DType(), scalar))
		}
		for i, v := range x.AsInt32() {
			out[i] = v != s
		}
	default:
		panic(fmt.Sprintf("notEqualScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// AnyDim reduces a Bool tensor with logical OR along one dimension.
//
// For a [batch, steps, features] comparison result, AnyDim(x, 2) yields the
// [batch, steps] validity mask: a timestep is valid when any of its
// features differs from the sentinel.
func (cpu *CPUBackend) AnyDim(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic(fmt.Sprintf("anyDim: expected bool tensor, got %s", x.DType()))
	}
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("anyDim: dimension %d out of range for shape %v", dim, shape))
	}

	outShape := make(tensor.Shape, 0, len(shape)-1)
	outShape = append(outShape, shape[:dim]...)
	outShape = append(outShape, shape[dim+1:]...)
	result := tensor.MustRaw(outShape, tensor.Bool)

	// outer iterates over dimensions before dim, inner over dimensions
	// after dim; the reduced dimension strides by inner.
	outer, reduce, inner := 1, shape[dim], 1
	for _, d := range shape[:dim] {
		outer *= d
	}
	for _, d := range shape[dim+1:] {
		inner *= d
	}

	src := x.AsBool()
	dst := result.AsBool()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			found := false
			for r := 0; r < reduce; r++ {
				if src[o*reduce*inner+r*inner+i] {
					found = true
					break
				}
			}
			dst[o*inner+i] = found
		}
	}

	return result
}

// SelectRows picks, for each batch row i, row i of a when cond[i] is true
// and row i of b otherwise. cond has shape [batch]; a and b share the
// shape [batch, ...].
func (cpu *CPUBackend) SelectRows(cond, a, b *tensor.RawTensor) *tensor.RawTensor {
	if cond.DType() != tensor.Bool {
		panic(fmt.Sprintf("selectRows: condition must be bool, got %s", cond.DType()))
	}
	if len(cond.Shape()) != 1 {
		panic(fmt.Sprintf("selectRows: condition must be 1D [batch], got shape %v", cond.Shape()))
	}
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("selectRows: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("selectRows: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}
	batch := cond.Shape()[0]
	if len(a.Shape()) == 0 || a.Shape()[0] != batch {
		panic(fmt.Sprintf("selectRows: batch mismatch: condition has %d rows, operands have shape %v", batch, a.Shape()))
	}

	result := tensor.MustRaw(a.Shape(), a.DType())
	rowBytes := len(a.Bytes()) / batch

	keep := cond.AsBool()
	av, bv, out := a.Bytes(), b.Bytes(), result.Bytes()
	for i := 0; i < batch; i++ {
		src := bv
		if keep[i] {
			src = av
		}
		copy(out[i*rowBytes:(i+1)*rowBytes], src[i*rowBytes:(i+1)*rowBytes])
	}

	return result
}
