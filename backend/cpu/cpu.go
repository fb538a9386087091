// Package cpu is the public API for the CPU compute backend.
package cpu

import (
	"github.com/ragged-ml/ragged/internal/backend/cpu"
)

// CPUBackend implements tensor.Backend with pure-Go element-wise kernels
// and gonum-backed float64 matrix multiplication.
type CPUBackend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *CPUBackend {
	return cpu.New()
}
