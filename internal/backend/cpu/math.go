package cpu

import (
	"fmt"
	"math"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// Tanh applies the element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("tanh", x, math.Tanh)
}

// Sigmoid applies the element-wise logistic function 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("sigmoid", x, func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	})
}

func (cpu *CPUBackend) unaryOp(name string, x *tensor.RawTensor, op func(float64) float64) *tensor.RawTensor {
	result := tensor.MustRaw(x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = op(v)
		}
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(op(float64(v)))
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}
