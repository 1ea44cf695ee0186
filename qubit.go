package tomography

import (
	"math"
	"math/cmplx"
)

// Qubit is a pure single-qubit state α|0⟩ + β|1⟩.
type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
}

func NewQubit(alpha, beta complex128) *Qubit {
	return &Qubit{
		alpha: alpha,
		beta:  beta,
	}
}

// ZeroQubit returns |0⟩, the state every preparation circuit starts from.
func ZeroQubit() *Qubit {
	return NewQubit(1, 0)
}

func (q *Qubit) Amplitudes() (complex128, complex128) {
	return q.alpha, q.beta
}

func (q *Qubit) ApplyHadamard() {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	newAlpha := (q.alpha + q.beta) / complex(math.Sqrt(2), 0)
	newBeta := (q.alpha - q.beta) / complex(math.Sqrt(2), 0)
	q.alpha = newAlpha
	q.beta = newBeta
}

func (q *Qubit) ApplyX() {
	q.alpha, q.beta = q.beta, q.alpha
}

func (q *Qubit) ApplyS() {
	q.beta *= 1i
}

func (q *Qubit) ApplySdg() {
	q.beta *= -1i
}

// ApplyU3 applies the generic single-qubit rotation
//
//	U3(θ,φ,λ) = [ cos(θ/2)         -e^{iλ} sin(θ/2)    ]
//	            [ e^{iφ} sin(θ/2)   e^{i(φ+λ)} cos(θ/2) ]
func (q *Qubit) ApplyU3(theta, phi, lambda float64) {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	newAlpha := c*q.alpha - cmplx.Exp(complex(0, lambda))*s*q.beta
	newBeta := cmplx.Exp(complex(0, phi))*s*q.alpha + cmplx.Exp(complex(0, phi+lambda))*c*q.beta
	q.alpha = newAlpha
	q.beta = newBeta
}

// DensityMatrix returns |ψ⟩⟨ψ|.
func (q *Qubit) DensityMatrix() Matrix {
	return Outer(q.alpha, q.beta)
}

// Expectation returns ⟨ψ|m|ψ⟩ for a 2×2 operator.
func (q *Qubit) Expectation(m Matrix) complex128 {
	a, b := q.alpha, q.beta
	return cmplx.Conj(a)*(m[0][0]*a+m[0][1]*b) + cmplx.Conj(b)*(m[1][0]*a+m[1][1]*b)
}
