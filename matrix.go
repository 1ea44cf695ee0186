package tomography

import (
	"fmt"
	"math/cmplx"
)

// Matrix is a dense complex operator stored row-major.
type Matrix [][]complex128

// NewMatrix allocates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Outer returns |ket⟩⟨ket|.
func Outer(ket ...complex128) Matrix {
	m := NewMatrix(len(ket), len(ket))
	for i := range ket {
		for j := range ket {
			m[i][j] = ket[i] * cmplx.Conj(ket[j])
		}
	}
	return m
}

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Dagger returns the conjugate transpose.
func (m Matrix) Dagger() Matrix {
	out := NewMatrix(m.Cols(), m.Rows())
	for i := range m {
		for j := range m[i] {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

func (m Matrix) Trace() complex128 {
	var tr complex128
	for i := 0; i < len(m) && i < m.Cols(); i++ {
		tr += m[i][i]
	}
	return tr
}

func (m Matrix) Scale(c complex128) Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = c * m[i][j]
		}
	}
	return out
}

func (m Matrix) Add(other Matrix) (Matrix, error) {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return nil, fmt.Errorf("matrix add: shape %dx%d vs %dx%d", m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}

	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] + other[i][j]
		}
	}
	return out, nil
}

func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("matrix mul: shape %dx%d vs %dx%d", m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}

	out := NewMatrix(m.Rows(), other.Cols())
	for i := range m {
		for j := 0; j < other.Cols(); j++ {
			var sum complex128
			for k := range other {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// Equal compares element-wise within tol.
func (m Matrix) Equal(other Matrix, tol float64) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}

	for i := range m {
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func (m Matrix) IsHermitian(tol float64) bool {
	return m.Rows() == m.Cols() && m.Equal(m.Dagger(), tol)
}
