package tensor

import "fmt"

// Step copies timestep t of a [batch, steps, features] tensor into a new
// [batch, features] tensor. Recurrent layers use this to walk a padded
// batch one timestep at a time.
func (t *Tensor[T, B]) Step(step int) *Tensor[T, B] {
	shape := t.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("Step: expected 3D [batch, steps, features] tensor, got shape %v", shape))
	}
	batch, steps, features := shape[0], shape[1], shape[2]
	if step < 0 || step >= steps {
		panic(fmt.Sprintf("Step: step %d out of range [0, %d)", step, steps))
	}

	out := Zeros[T, B](Shape{batch, features}, t.backend)
	src := t.Data()
	dst := out.Data()
	for b := 0; b < batch; b++ {
		copy(dst[b*features:(b+1)*features], src[b*steps*features+step*features:][:features])
	}
	return out
}

// SetStep copies a [batch, features] tensor into timestep t of this
// [batch, steps, features] tensor in place.
func (t *Tensor[T, B]) SetStep(step int, value *Tensor[T, B]) {
	shape := t.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("SetStep: expected 3D [batch, steps, features] tensor, got shape %v", shape))
	}
	batch, steps, features := shape[0], shape[1], shape[2]
	if step < 0 || step >= steps {
		panic(fmt.Sprintf("SetStep: step %d out of range [0, %d)", step, steps))
	}
	if !value.Shape().Equal(Shape{batch, features}) {
		panic(fmt.Sprintf("SetStep: value shape %v does not match [%d, %d]", value.Shape(), batch, features))
	}

	src := value.Data()
	dst := t.Data()
	for b := 0; b < batch; b++ {
		copy(dst[b*steps*features+step*features:][:features], src[b*features:(b+1)*features])
	}
}

// Col copies column c of a 2D tensor into a new 1D [rows] tensor.
// Masked recurrent layers use this to extract the per-timestep mask column.
func (t *Tensor[T, B]) Col(col int) *Tensor[T, B] {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Col: expected 2D tensor, got shape %v", shape))
	}
	rows, cols := shape[0], shape[1]
	if col < 0 || col >= cols {
		panic(fmt.Sprintf("Col: column %d out of range [0, %d)", col, cols))
	}

	out := Zeros[T, B](Shape{rows}, t.backend)
	src := t.Data()
	dst := out.Data()
	for r := 0; r < rows; r++ {
		dst[r] = src[r*cols+col]
	}
	return out
}

// Row copies row r of a 2D tensor into a new 1D [cols] tensor.
func (t *Tensor[T, B]) Row(row int) *Tensor[T, B] {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Row: expected 2D tensor, got shape %v", shape))
	}
	rows, cols := shape[0], shape[1]
	if row < 0 || row >= rows {
		panic(fmt.Sprintf("Row: row %d out of range [0, %d)", row, rows))
	}

	out := Zeros[T, B](Shape{cols}, t.backend)
	copy(out.Data(), t.Data()[row*cols:(row+1)*cols])
	return out
}
