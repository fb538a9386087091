// Package tensor provides the core tensor types for the ragged sequence library.
package tensor

// DType is a constraint for supported tensor element types.
type DType interface {
	~float64 | ~float32 | ~int32 | ~bool
}

// DataType carries runtime type information for tensors.
type DataType int

// Supported data types.
const (
	Float64 DataType = iota
	Float32
	Int32
	Bool
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64:
		return 8
	case Float32, Int32:
		return 4
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// inferDataType maps a generic element type T to its runtime tag.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case int32:
		return Int32
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
