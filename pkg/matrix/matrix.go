package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// Matrix is a complex nodal-analysis system over the sparse LU
// solver, with separated real/imaginary vectors. Indices are 1-based;
// index 0 is ground and stamping against it is a no-op.
type Matrix struct {
	size    int
	mat     *sparse.Matrix
	rhs     []float64
	rhsImag []float64
	sol     []float64
	solImag []float64
}

func New(size int) (*Matrix, error) {
	config := &sparse.Configuration{
		Real:                    false,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		Translate:               true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("matrix create failed: %v", err)
	}

	vectorSize := size + 1 // 1-based indexing
	return &Matrix{
		size:    size,
		mat:     mat,
		rhs:     make([]float64, vectorSize),
		rhsImag: make([]float64, vectorSize),
	}, nil
}

func (m *Matrix) Size() int { return m.size }

// Preallocate touches every element of the fixed stamp pattern so
// repeated Clear/stamp/solve cycles reuse the same structure.
func (m *Matrix) Preallocate() {
	for i := 1; i <= m.size; i++ {
		for j := 1; j <= m.size; j++ {
			m.mat.GetElement(int64(i), int64(j))
		}
	}
}

func (m *Matrix) AddComplex(i, j int, re, im float64) {
	if i <= 0 || j <= 0 || i > m.size || j > m.size {
		return
	}
	element := m.mat.GetElement(int64(i), int64(j))
	element.Real += re
	element.Imag += im
}

func (m *Matrix) AddRHS(i int, re, im float64) {
	if i <= 0 || i > m.size {
		return
	}
	m.rhs[i] += re
	m.rhsImag[i] += im
}

func (m *Matrix) Clear() {
	m.mat.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
		m.rhsImag[i] = 0
	}
}

func (m *Matrix) Solve() error {
	err := m.mat.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	m.sol, m.solImag, err = m.mat.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

// Solution returns unknown i from the last Solve. Zero for ground or
// out-of-range indices.
func (m *Matrix) Solution(i int) complex128 {
	if i <= 0 || i > m.size || m.sol == nil {
		return 0
	}
	return complex(m.sol[i], m.solImag[i])
}

func (m *Matrix) Destroy() {
	if m.mat != nil {
		m.mat.Destroy()
	}
}
