package tomography

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCapabilityBundles(t *testing.T) {
	Convey("Given the pieces of a preparation capability", t, func() {
		circuit := func(op string, qubit QuantumRef) (*Circuit, error) {
			return NewCircuit("prep_" + op).X(qubit), nil
		}
		matrix := func(label string) (Matrix, error) {
			return Outer(ketOne...), nil
		}

		Convey("Plain function values should be accepted", func() {
			p, err := PreparationFromBundle(Bundle{[]string{"one"}, circuit, matrix})
			So(err, ShouldBeNil)
			So(p.Labels, ShouldResemble, []string{"one"})
		})

		Convey("Labels given as []any should be converted", func() {
			p, err := PreparationFromBundle(Bundle{[]any{"one", "two"}, circuit, matrix})
			So(err, ShouldBeNil)
			So(p.Labels, ShouldResemble, []string{"one", "two"})
		})

		Convey("Wrong element types should be reported", func() {
			_, err := PreparationFromBundle(Bundle{[]any{"one", 2}, circuit, matrix})
			So(errors.Is(err, ErrMalformedCapability), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "label 1 is int")

			_, err = PreparationFromBundle(Bundle{"one", circuit, matrix})
			So(errors.Is(err, ErrMalformedCapability), ShouldBeTrue)

			_, err = PreparationFromBundle(Bundle{[]string{"one"}, matrix, circuit})
			So(err.Error(), ShouldContainSubstring, "element 1")

			_, err = PreparationFromBundle(Bundle{[]string{"one"}, circuit, nil})
			So(err.Error(), ShouldContainSubstring, "element 2")
		})

		Convey("Duplicate and empty label sets should be rejected", func() {
			_, err := PreparationFromBundle(Bundle{[]string{"one", "one"}, circuit, matrix})
			So(err.Error(), ShouldContainSubstring, "duplicate operator label")

			_, err = PreparationFromBundle(Bundle{[]string{}, circuit, matrix})
			So(err.Error(), ShouldContainSubstring, "no operator labels")
		})

		Convey("A bundle basis should behave like a typed one", func() {
			basis := NewBasis("bundled", WithPreparationBundle(Bundle{[]string{"one"}, PreparationCircuitFunc(circuit), PreparationMatrixFunc(matrix)}))
			So(basis.HasPreparation(), ShouldBeTrue)

			c, err := basis.PreparationCircuit("one", NewQuantumRegister(1, "q").Bit(0))
			So(err, ShouldBeNil)
			So(c.Gates(), ShouldResemble, []string{GateX})
		})
	})

	Convey("Given the pieces of a measurement capability", t, func() {
		circuit := func(op string, qubit QuantumRef, clbit ClassicalRef) (*Circuit, error) {
			return NewCircuit("meas_" + op).Measure(qubit, clbit), nil
		}
		matrix := func(label string, outcome Outcome) (Matrix, error) {
			return NewMatrix(2, 2), nil
		}

		Convey("A complete bundle should unpack", func() {
			m, err := MeasurementFromBundle(Bundle{[]string{"Z"}, circuit, matrix})
			So(err, ShouldBeNil)
			So(m.Validate(), ShouldBeNil)
		})

		Convey("Swapped or missing builders should be reported", func() {
			_, err := MeasurementFromBundle(Bundle{[]string{"Z"}, matrix, circuit})
			So(errors.Is(err, ErrMalformedCapability), ShouldBeTrue)

			_, err = MeasurementFromBundle(Bundle{[]string{"Z"}, circuit, "matrix"})
			So(err.Error(), ShouldContainSubstring, "element 2 is string")

			_, err = MeasurementFromBundle(Bundle{[]string{"Z"}, circuit})
			So(err.Error(), ShouldContainSubstring, "bundle has 2 elements")
		})

		Convey("A nil capability should not validate", func() {
			var m *Measurement
			So(errors.Is(m.Validate(), ErrMalformedCapability), ShouldBeTrue)

			var p *Preparation
			So(errors.Is(p.Validate(), ErrMalformedCapability), ShouldBeTrue)
		})
	})
}
