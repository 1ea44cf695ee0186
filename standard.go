package tomography

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

var (
	pauliMeasurementLabels = []string{"X", "Y", "Z"}
	pauliPreparationLabels = []string{"Xp", "Xm", "Yp", "Ym", "Zp", "Zm"}
	sicPreparationLabels   = []string{"S0", "S1", "S2", "S3"}
)

// Single-qubit kets used by the standard bases.
var (
	ketZero   = []complex128{1, 0}
	ketOne    = []complex128{0, 1}
	ketPlus   = []complex128{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)}
	ketMinus  = []complex128{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)}
	ketPlusI  = []complex128{complex(1/math.Sqrt2, 0), complex(0, 1/math.Sqrt2)}
	ketMinusI = []complex128{complex(1/math.Sqrt2, 0), complex(0, -1/math.Sqrt2)}
)

// PauliBasis returns the basis of Pauli eigenstates: measurement along X, Y
// and Z, and preparation of the six eigenstates.
func PauliBasis() *Basis {
	return NewBasis(
		"Pauli",
		WithMeasurement(NewMeasurement(pauliMeasurementLabels, pauliMeasurementCircuit, pauliMeasurementMatrix)),
		WithPreparation(NewPreparation(pauliPreparationLabels, pauliPreparationCircuit, pauliPreparationMatrix)),
	)
}

// SICBasis returns the preparation-only basis of the four symmetric
// informationally complete states of a qubit.
func SICBasis() *Basis {
	return NewBasis(
		"SIC",
		WithPreparation(NewPreparation(sicPreparationLabels, sicPreparationCircuit, sicPreparationMatrix)),
	)
}

/*
DefaultBasis resolves v to a Basis. A *Basis is returned unchanged; a string
is looked up, ignoring case, in the default registry.
*/
func DefaultBasis(v any) (*Basis, error) {
	switch b := v.(type) {
	case *Basis:
		if b == nil {
			break
		}
		return b, nil
	case string:
		return DefaultRegistry().Lookup(b)
	}

	return nil, newBasisError(
		"", "default basis", ErrInvalidArgument,
		"expected a basis or a basis name, got %s", describeValue(v),
	)
}

func pauliMeasurementCircuit(op string, qubit QuantumRef, clbit ClassicalRef) (*Circuit, error) {
	circuit := NewCircuit("meas_" + op)

	switch op {
	case "X":
		circuit.H(qubit)
	case "Y":
		circuit.Sdg(qubit).H(qubit)
	case "Z":
	default:
		return nil, fmt.Errorf("pauli measurement: no circuit for %q", op)
	}

	return circuit.Measure(qubit, clbit), nil
}

func pauliMeasurementMatrix(label string, outcome Outcome) (Matrix, error) {
	var kets [2][]complex128

	if outcome > OutcomeOne {
		return nil, fmt.Errorf("pauli measurement: no outcome %d", outcome)
	}

	switch label {
	case "X":
		kets = [2][]complex128{ketPlus, ketMinus}
	case "Y":
		kets = [2][]complex128{ketPlusI, ketMinusI}
	case "Z":
		kets = [2][]complex128{ketZero, ketOne}
	default:
		return nil, fmt.Errorf("pauli measurement: no matrix for %q", label)
	}

	return Outer(kets[outcome]...), nil
}

func pauliPreparationCircuit(op string, qubit QuantumRef) (*Circuit, error) {
	circuit := NewCircuit("prep_" + op)

	switch op {
	case "Xp":
		circuit.H(qubit)
	case "Xm":
		circuit.X(qubit).H(qubit)
	case "Yp":
		circuit.H(qubit).S(qubit)
	case "Ym":
		circuit.X(qubit).H(qubit).S(qubit)
	case "Zp":
	case "Zm":
		circuit.X(qubit)
	default:
		return nil, fmt.Errorf("pauli preparation: no circuit for %q", op)
	}

	return circuit, nil
}

func pauliPreparationMatrix(label string) (Matrix, error) {
	switch label {
	case "Xp":
		return Outer(ketPlus...), nil
	case "Xm":
		return Outer(ketMinus...), nil
	case "Yp":
		return Outer(ketPlusI...), nil
	case "Ym":
		return Outer(ketMinusI...), nil
	case "Zp":
		return Outer(ketZero...), nil
	case "Zm":
		return Outer(ketOne...), nil
	}
	return nil, fmt.Errorf("pauli preparation: no matrix for %q", label)
}

// sicTheta tilts |0⟩ so that |⟨0|ψ⟩|² = 1/3.
var sicTheta = -2 * math.Atan(math.Sqrt2)

func sicPreparationCircuit(op string, qubit QuantumRef) (*Circuit, error) {
	circuit := NewCircuit("prep_" + op)

	switch op {
	case "S0":
	case "S1":
		circuit.U3(sicTheta, math.Pi, 0, qubit)
	case "S2":
		circuit.U3(sicTheta, math.Pi/3, 0, qubit)
	case "S3":
		circuit.U3(sicTheta, -math.Pi/3, 0, qubit)
	default:
		return nil, fmt.Errorf("sic preparation: no circuit for %q", op)
	}

	return circuit, nil
}

func sicPreparationMatrix(label string) (Matrix, error) {
	var phase complex128

	switch label {
	case "S0":
		return Outer(ketZero...), nil
	case "S1":
		phase = 1
	case "S2":
		phase = cmplx.Exp(complex(0, 2*math.Pi/3))
	case "S3":
		phase = cmplx.Exp(complex(0, -2*math.Pi/3))
	default:
		return nil, fmt.Errorf("sic preparation: no matrix for %q", label)
	}

	// (1/3) [ 1        √2·phase ]
	//       [ √2·phase*   2      ]
	return Matrix{
		{1, math.Sqrt2 * phase},
		{math.Sqrt2 * cmplx.Conj(phase), 2},
	}.Scale(1.0 / 3), nil
}

func normalizeBasisName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
