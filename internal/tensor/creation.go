package tensor

import "math/rand"

// Zeros creates a tensor filled with zero values.
//
// Example:
//
//	h := tensor.Zeros[float64](tensor.Shape{batch, units}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(err)
	}
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones (true for Bool tensors).
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = one[T]()
	}
	return t
}

// Full creates a tensor filled with the given value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a float tensor with standard normal entries drawn from rng.
// Panics for non-float element types.
func Randn[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		switch p := any(&data[i]).(type) {
		case *float64:
			*p = rng.NormFloat64()
		case *float32:
			*p = float32(rng.NormFloat64())
		default:
			panic("Randn: requires a float element type")
		}
	}
	return t
}

func one[T DType]() T {
	var dummy T
	var v any
	switch any(dummy).(type) {
	case float64:
		v = float64(1)
	case float32:
		v = float32(1)
	case int32:
		v = int32(1)
	case bool:
		v = true
	}
	return v.(T)
}
