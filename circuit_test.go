package tomography

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuit(t *testing.T) {
	Convey("Given a circuit on one qubit", t, func() {
		qr := NewQuantumRegister(2, "q")
		cr := NewClassicalRegister(2, "c")

		circuit := NewCircuit("meas_Y").Sdg(qr.Bit(1)).H(qr.Bit(1)).Measure(qr.Bit(1), cr.Bit(0))

		So(circuit.ID, ShouldNotBeEmpty)
		So(circuit.Gates(), ShouldResemble, []string{GateSdg, GateH, GateMeasure})

		Convey("Every circuit should get its own ID", func() {
			So(NewCircuit("meas_Y").ID, ShouldNotEqual, circuit.ID)
		})

		Convey("QASM should declare the registers it touches", func() {
			So(circuit.QASM(), ShouldEqual, "OPENQASM 2.0;\n"+
				"include \"qelib1.inc\";\n"+
				"qreg q[2];\n"+
				"creg c[2];\n"+
				"sdg q[1];\n"+
				"h q[1];\n"+
				"measure q[1] -> c[0];\n")
		})

		Convey("Parameters should be rendered in the gate call", func() {
			u := NewCircuit("u").U3(0.5, 0, -1, qr.Bit(0))
			So(u.QASM(), ShouldContainSubstring, "u3(0.5,0,-1) q[0];")
		})
	})

	Convey("Given a circuit to simulate", t, func() {
		q := NewQuantumRegister(1, "q").Bit(0)

		Convey("H then S should take |0⟩ to |+i⟩", func() {
			state := ZeroQubit()
			So(NewCircuit("prep").H(q).S(q).Evolve(state), ShouldBeNil)
			So(state.DensityMatrix().Equal(Outer(ketPlusI...), 1e-12), ShouldBeTrue)
		})

		Convey("Malformed instructions should fail", func() {
			bad := NewCircuit("bad")
			bad.Instructions = append(bad.Instructions, Instruction{Gate: GateU3, Qubit: q})
			So(bad.Evolve(ZeroQubit()), ShouldNotBeNil)

			unknown := NewCircuit("unknown")
			unknown.Instructions = append(unknown.Instructions, Instruction{Gate: "cx", Qubit: q})
			So(unknown.Evolve(ZeroQubit()), ShouldNotBeNil)
		})
	})
}
