package tomography

import (
	"fmt"
	"slices"
)

type (
	// MeasurementCircuitFunc builds the circuit that measures qubit into clbit in the op basis.
	MeasurementCircuitFunc func(op string, qubit QuantumRef, clbit ClassicalRef) (*Circuit, error)
	// MeasurementMatrixFunc returns the ideal projector for label and outcome.
	MeasurementMatrixFunc func(label string, outcome Outcome) (Matrix, error)
	// PreparationCircuitFunc builds the circuit that prepares qubit in the op state.
	PreparationCircuitFunc func(op string, qubit QuantumRef) (*Circuit, error)
	// PreparationMatrixFunc returns the ideal density matrix for label.
	PreparationMatrixFunc func(label string) (Matrix, error)
)

// Measurement bundles the labels and builders of a measurement capability.
// The builders must accept every label in Labels and be safe for concurrent use
// if the owning Basis is shared between goroutines.
type Measurement struct {
	Labels  []string
	Circuit MeasurementCircuitFunc
	Matrix  MeasurementMatrixFunc
}

// Preparation bundles the labels and builders of a preparation capability.
type Preparation struct {
	Labels  []string
	Circuit PreparationCircuitFunc
	Matrix  PreparationMatrixFunc
}

func NewMeasurement(labels []string, circuit MeasurementCircuitFunc, matrix MeasurementMatrixFunc) *Measurement {
	return &Measurement{
		Labels:  slices.Clone(labels),
		Circuit: circuit,
		Matrix:  matrix,
	}
}

func NewPreparation(labels []string, circuit PreparationCircuitFunc, matrix PreparationMatrixFunc) *Preparation {
	return &Preparation{
		Labels:  slices.Clone(labels),
		Circuit: circuit,
		Matrix:  matrix,
	}
}

// Validate reports whether the capability is complete.
func (m *Measurement) Validate() error {
	if m == nil {
		return fmt.Errorf("measurement: %w: nil capability", ErrMalformedCapability)
	}
	if m.Circuit == nil || m.Matrix == nil {
		return fmt.Errorf("measurement: %w: circuit and matrix builders are required", ErrMalformedCapability)
	}
	return validateLabels("measurement", m.Labels)
}

func (p *Preparation) Validate() error {
	if p == nil {
		return fmt.Errorf("preparation: %w: nil capability", ErrMalformedCapability)
	}
	if p.Circuit == nil || p.Matrix == nil {
		return fmt.Errorf("preparation: %w: circuit and matrix builders are required", ErrMalformedCapability)
	}
	return validateLabels("preparation", p.Labels)
}

func validateLabels(kind string, labels []string) error {
	if len(labels) == 0 {
		return fmt.Errorf("%s: %w: no operator labels", kind, ErrMalformedCapability)
	}

	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if seen[label] {
			return fmt.Errorf("%s: %w: duplicate operator label %q", kind, ErrMalformedCapability, label)
		}
		seen[label] = true
	}
	return nil
}

/*
Bundle is the positional form of a capability: labels, circuit builder and
matrix builder, in that order. It exists for callers that assemble bases from
loosely typed data; new code should build a Measurement or Preparation.
*/
type Bundle []any

// MeasurementFromBundle unpacks a measurement Bundle.
func MeasurementFromBundle(b Bundle) (*Measurement, error) {
	if len(b) != 3 {
		return nil, fmt.Errorf("measurement: %w: bundle has %d elements, want 3", ErrMalformedCapability, len(b))
	}

	labels, err := bundleLabels("measurement", b[0])
	if err != nil {
		return nil, err
	}

	circuit, ok := b[1].(MeasurementCircuitFunc)
	if !ok {
		fn, isFunc := b[1].(func(string, QuantumRef, ClassicalRef) (*Circuit, error))
		if !isFunc {
			return nil, fmt.Errorf("measurement: %w: element 1 is %T, not a circuit builder", ErrMalformedCapability, b[1])
		}
		circuit = fn
	}

	matrix, ok := b[2].(MeasurementMatrixFunc)
	if !ok {
		fn, isFunc := b[2].(func(string, Outcome) (Matrix, error))
		if !isFunc {
			return nil, fmt.Errorf("measurement: %w: element 2 is %T, not a matrix builder", ErrMalformedCapability, b[2])
		}
		matrix = fn
	}

	m := NewMeasurement(labels, circuit, matrix)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// PreparationFromBundle unpacks a preparation Bundle.
func PreparationFromBundle(b Bundle) (*Preparation, error) {
	if len(b) != 3 {
		return nil, fmt.Errorf("preparation: %w: bundle has %d elements, want 3", ErrMalformedCapability, len(b))
	}

	labels, err := bundleLabels("preparation", b[0])
	if err != nil {
		return nil, err
	}

	circuit, ok := b[1].(PreparationCircuitFunc)
	if !ok {
		fn, isFunc := b[1].(func(string, QuantumRef) (*Circuit, error))
		if !isFunc {
			return nil, fmt.Errorf("preparation: %w: element 1 is %T, not a circuit builder", ErrMalformedCapability, b[1])
		}
		circuit = fn
	}

	matrix, ok := b[2].(PreparationMatrixFunc)
	if !ok {
		fn, isFunc := b[2].(func(string) (Matrix, error))
		if !isFunc {
			return nil, fmt.Errorf("preparation: %w: element 2 is %T, not a matrix builder", ErrMalformedCapability, b[2])
		}
		matrix = fn
	}

	p := NewPreparation(labels, circuit, matrix)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func bundleLabels(kind string, v any) ([]string, error) {
	switch labels := v.(type) {
	case []string:
		return labels, nil
	case []any:
		out := make([]string, len(labels))
		for i, label := range labels {
			s, ok := label.(string)
			if !ok {
				return nil, fmt.Errorf("%s: %w: label %d is %T, not a string", kind, ErrMalformedCapability, i, label)
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: %w: element 0 is %T, not a label list", kind, ErrMalformedCapability, v)
}
