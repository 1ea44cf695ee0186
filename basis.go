package tomography

import (
	"fmt"
	"slices"
	"strings"

	"github.com/theapemachine/errnie"
)

/*
Basis describes a tomography basis: a name plus an optional measurement
capability and an optional preparation capability. Each capability is
installed whole or not at all, and nothing changes after construction, so a
Basis can be shared freely as long as the builders it delegates to can.

Every delegating method validates its arguments first and then hands them to
the caller-supplied builder, returning whatever the builder returns.
*/
type Basis struct {
	name        string
	measurement *Measurement
	preparation *Preparation
}

// Option supplies a capability to the Basis under construction.
type Option func(*basisBuilder)

type basisBuilder struct {
	measurement    *Measurement
	preparation    *Preparation
	measurementErr error
	preparationErr error
}

func WithMeasurement(m *Measurement) Option {
	return func(b *basisBuilder) {
		if m == nil {
			b.measurement, b.measurementErr = nil, fmt.Errorf("measurement: %w: nil capability", ErrMalformedCapability)
			return
		}
		b.measurement, b.measurementErr = NewMeasurement(m.Labels, m.Circuit, m.Matrix), nil
	}
}

func WithPreparation(p *Preparation) Option {
	return func(b *basisBuilder) {
		if p == nil {
			b.preparation, b.preparationErr = nil, fmt.Errorf("preparation: %w: nil capability", ErrMalformedCapability)
			return
		}
		b.preparation, b.preparationErr = NewPreparation(p.Labels, p.Circuit, p.Matrix), nil
	}
}

// WithMeasurementBundle supplies the measurement capability in positional form.
// A nil bundle means the capability is absent.
func WithMeasurementBundle(bundle Bundle) Option {
	return func(b *basisBuilder) {
		if bundle == nil {
			return
		}
		b.measurement, b.measurementErr = MeasurementFromBundle(bundle)
	}
}

// WithPreparationBundle supplies the preparation capability in positional form.
func WithPreparationBundle(bundle Bundle) Option {
	return func(b *basisBuilder) {
		if bundle == nil {
			return
		}
		b.preparation, b.preparationErr = PreparationFromBundle(bundle)
	}
}

/*
NewBasis builds a Basis leniently: a capability that is supplied but
incomplete is left disabled and no error is reported. Use New with a strict
Config to have malformed capabilities rejected instead.
*/
func NewBasis(name string, opts ...Option) *Basis {
	basis, _ := New(name, NewConfig(), opts...)
	return basis
}

// New builds a Basis according to cfg. Only a strict cfg can produce an error.
func New(name string, cfg *Config, opts ...Option) (*Basis, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	builder := &basisBuilder{}
	for _, opt := range opts {
		opt(builder)
	}

	if builder.measurementErr == nil && builder.measurement != nil {
		builder.measurementErr = builder.measurement.Validate()
	}
	if builder.preparationErr == nil && builder.preparation != nil {
		builder.preparationErr = builder.preparation.Validate()
	}

	if cfg.Strict {
		for _, err := range []error{builder.measurementErr, builder.preparationErr} {
			if err != nil {
				return nil, &BasisError{Basis: name, Op: "new", Kind: ErrMalformedCapability, Msg: err.Error()}
			}
		}
	}

	basis := &Basis{name: name}
	if builder.measurementErr == nil {
		basis.measurement = builder.measurement
	}
	if builder.preparationErr == nil {
		basis.preparation = builder.preparation
	}

	if cfg.Verbose {
		errnie.Info(
			"NewBasis - name %s, measurement %v, preparation %v",
			name,
			basis.MeasurementLabels(),
			basis.PreparationLabels(),
		)
	}

	return basis, nil
}

func (b *Basis) Name() string {
	return b.name
}

func (b *Basis) HasMeasurement() bool {
	return b.measurement != nil
}

func (b *Basis) HasPreparation() bool {
	return b.preparation != nil
}

// MeasurementLabels returns a copy of the measurement labels, or nil if the
// basis cannot measure.
func (b *Basis) MeasurementLabels() []string {
	if b.measurement == nil {
		return nil
	}
	return slices.Clone(b.measurement.Labels)
}

// PreparationLabels returns a copy of the preparation labels, or nil if the
// basis cannot prepare.
func (b *Basis) PreparationLabels() []string {
	if b.preparation == nil {
		return nil
	}
	return slices.Clone(b.preparation.Labels)
}

// MeasurementCircuit returns the circuit measuring qubit into clbit in the op basis.
func (b *Basis) MeasurementCircuit(op string, qubit, clbit RegisterRef) (*Circuit, error) {
	const opName = "measurement circuit"

	if b.measurement == nil {
		return nil, unsupported(b.name, opName, "measurement")
	}

	q, ok := asQuantum(qubit)
	if !ok {
		return nil, newBasisError(
			b.name, opName, ErrInvalidArgument,
			"qubit must reference a quantum register, got %s", describeRef(qubit),
		)
	}

	c, ok := asClassical(clbit)
	if !ok {
		return nil, newBasisError(
			b.name, opName, ErrInvalidArgument,
			"clbit must reference a classical register, got %s", describeRef(clbit),
		)
	}

	if !slices.Contains(b.measurement.Labels, op) {
		return nil, invalidLabel(b.name, opName, "measurement", op, b.measurement.Labels)
	}

	return b.measurement.Circuit(op, q, c)
}

// PreparationCircuit returns the circuit preparing qubit in the op state.
func (b *Basis) PreparationCircuit(op string, qubit RegisterRef) (*Circuit, error) {
	const opName = "preparation circuit"

	if b.preparation == nil {
		return nil, unsupported(b.name, opName, "preparation")
	}

	q, ok := asQuantum(qubit)
	if !ok {
		return nil, newBasisError(
			b.name, opName, ErrInvalidArgument,
			"qubit must reference a quantum register, got %s", describeRef(qubit),
		)
	}

	if !slices.Contains(b.preparation.Labels, op) {
		return nil, invalidLabel(b.name, opName, "preparation", op, b.preparation.Labels)
	}

	return b.preparation.Circuit(op, q)
}

/*
MeasurementMatrix returns the ideal projector for label and outcome. The
outcome may be given as an integer or as the string "0" or "1"; it is
normalized to an Outcome before the builder sees it.
*/
func (b *Basis) MeasurementMatrix(label string, outcome any) (Matrix, error) {
	const opName = "measurement matrix"

	if b.measurement == nil {
		return nil, unsupported(b.name, opName, "measurement")
	}

	if !slices.Contains(b.measurement.Labels, label) {
		return nil, invalidLabel(b.name, opName, "measurement", label, b.measurement.Labels)
	}

	o, err := ParseOutcome(outcome)
	if err != nil {
		if be, ok := err.(*BasisError); ok {
			be.Basis, be.Op = b.name, opName
		}
		return nil, err
	}

	return b.measurement.Matrix(label, o)
}

// PreparationMatrix returns the ideal density matrix for label.
func (b *Basis) PreparationMatrix(label string) (Matrix, error) {
	const opName = "preparation matrix"

	if b.preparation == nil {
		return nil, unsupported(b.name, opName, "preparation")
	}

	if !slices.Contains(b.preparation.Labels, label) {
		return nil, invalidLabel(b.name, opName, "preparation", label, b.preparation.Labels)
	}

	return b.preparation.Matrix(label)
}

func (b *Basis) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "Basis(%s", b.name)

	if b.measurement != nil {
		fmt.Fprintf(&out, ", measurement=%s", formatLabels(b.measurement.Labels))
	}
	if b.preparation != nil {
		fmt.Fprintf(&out, ", preparation=%s", formatLabels(b.preparation.Labels))
	}

	out.WriteString(")")
	return out.String()
}
