package nn

import (
	"fmt"
	"math/rand"

	"github.com/ragged-ml/ragged/internal/tensor"
)

// LSTM is a single long short-term memory layer with the standard gate
// structure:
//
//	i_t = sigmoid(x_t @ Wi.T + h_{t-1} @ Ui.T + bi)
//	f_t = sigmoid(x_t @ Wf.T + h_{t-1} @ Uf.T + bf)
//	g_t = tanh   (x_t @ Wc.T + h_{t-1} @ Uc.T + bc)
//	o_t = sigmoid(x_t @ Wo.T + h_{t-1} @ Uo.T + bo)
//	c_t = f_t * c_{t-1} + i_t * g_t
//	h_t = o_t * tanh(c_t)
//
// Masking follows the same carry-forward rule as SimpleRNN, applied to
// both the hidden and the cell state: a padded timestep leaves (h, c)
// untouched. Mask propagation matches SimpleRNN as well.
//
// The forget gate bias starts at one, the common stabilization for
// freshly initialized LSTMs; all other biases start at zero.
type LSTM[B tensor.Backend] struct {
	inFeatures      int
	units           int
	returnSequences bool
	gates           [4]lstmGate[B] // input, forget, cell, output
	backend         B
}

type lstmGate[B tensor.Backend] struct {
	w *Parameter[B] // [units, inFeatures]
	u *Parameter[B] // [units, units]
	b *Parameter[B] // [units]
}

// NewLSTM creates a new LSTM layer.
func NewLSTM[B tensor.Backend](inFeatures, units int, returnSequences bool, rng *rand.Rand, backend B) *LSTM[B] {
	l := &LSTM[B]{
		inFeatures:      inFeatures,
		units:           units,
		returnSequences: returnSequences,
		backend:         backend,
	}
	names := [4]string{"input", "forget", "cell", "output"}
	for i, name := range names {
		bias := Zeros[B](tensor.Shape{units}, backend)
		if name == "forget" {
			bias = tensor.Ones[float64](tensor.Shape{units}, backend)
		}
		l.gates[i] = lstmGate[B]{
			w: NewParameter(name+".w", Xavier(inFeatures, units, tensor.Shape{units, inFeatures}, rng, backend)),
			u: NewParameter(name+".u", recurrentInit(units, rng, backend)),
			b: NewParameter(name+".b", bias),
		}
	}
	return l
}

// Forward runs the recurrence over a [batch, steps, features] input.
func (l *LSTM[B]) Forward(input *tensor.Tensor[float64, B], mask *tensor.Tensor[bool, B]) (*tensor.Tensor[float64, B], *tensor.Tensor[bool, B]) {
	shape := input.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("LSTM.Forward: expected 3D [batch, steps, features] input, got shape %v", shape))
	}
	if shape[2] != l.inFeatures {
		panic(fmt.Sprintf("LSTM.Forward: expected %d input features, got %d", l.inFeatures, shape[2]))
	}
	batch, steps := shape[0], shape[1]

	// Pre-transpose the weights once per forward pass.
	var wT, uT [4]*tensor.Tensor[float64, B]
	var bias [4]*tensor.Tensor[float64, B]
	for i, g := range l.gates {
		wT[i] = g.w.Tensor().T()
		uT[i] = g.u.Tensor().T()
		bias[i] = g.b.Tensor().Reshape(1, l.units)
	}

	h := tensor.Zeros[float64](tensor.Shape{batch, l.units}, l.backend)
	c := tensor.Zeros[float64](tensor.Shape{batch, l.units}, l.backend)

	var outputs *tensor.Tensor[float64, B]
	if l.returnSequences {
		outputs = tensor.Zeros[float64](tensor.Shape{batch, steps, l.units}, l.backend)
	}

	for t := 0; t < steps; t++ {
		xt := input.Step(t)

		gate := func(i int) *tensor.Tensor[float64, B] {
			return xt.MatMul(wT[i]).Add(h.MatMul(uT[i])).Add(bias[i])
		}
		in := gate(0).Sigmoid()
		forget := gate(1).Sigmoid()
		cand := gate(2).Tanh()
		out := gate(3).Sigmoid()

		cNext := forget.Mul(c).Add(in.Mul(cand))
		hNext := out.Mul(cNext.Tanh())

		if mask != nil {
			// padded rows keep both carried states
			col := mask.Col(t)
			cNext = tensor.SelectRows(col, cNext, c)
			hNext = tensor.SelectRows(col, hNext, h)
		}
		c, h = cNext, hNext

		if l.returnSequences {
			outputs.SetStep(t, h)
		}
	}

	if l.returnSequences {
		return outputs, mask
	}
	return h, nil
}

// Parameters returns the twelve gate parameters in gate order.
func (l *LSTM[B]) Parameters() []*Parameter[B] {
	params := make([]*Parameter[B], 0, 12)
	for _, g := range l.gates {
		params = append(params, g.w, g.u, g.b)
	}
	return params
}

// Units returns the hidden state width.
func (l *LSTM[B]) Units() int {
	return l.units
}

// ReturnSequences reports whether the layer emits per-step outputs.
func (l *LSTM[B]) ReturnSequences() bool {
	return l.returnSequences
}
