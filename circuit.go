package tomography

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Gate names, spelled the way OpenQASM 2.0 spells them.
const (
	GateH       = "h"
	GateX       = "x"
	GateS       = "s"
	GateSdg     = "sdg"
	GateU3      = "u3"
	GateMeasure = "measure"
)

// Instruction is one gate or measurement acting on a single qubit.
type Instruction struct {
	Gate   string
	Params []float64
	Qubit  QuantumRef
	Clbit  *ClassicalRef
}

/*
Circuit is the fragment a circuit builder hands back for one operator label.
The basis descriptor never looks inside it; it exists so the standard bases
have something concrete to return and so tests can simulate and print it.
*/
type Circuit struct {
	ID           string
	Name         string
	Instructions []Instruction
}

func NewCircuit(name string) *Circuit {
	return &Circuit{
		ID:           uuid.NewString(),
		Name:         name,
		Instructions: make([]Instruction, 0),
	}
}

func (c *Circuit) append(gate string, qubit QuantumRef, params ...float64) *Circuit {
	c.Instructions = append(c.Instructions, Instruction{
		Gate:   gate,
		Params: params,
		Qubit:  qubit,
	})
	return c
}

func (c *Circuit) H(qubit QuantumRef) *Circuit   { return c.append(GateH, qubit) }
func (c *Circuit) X(qubit QuantumRef) *Circuit   { return c.append(GateX, qubit) }
func (c *Circuit) S(qubit QuantumRef) *Circuit   { return c.append(GateS, qubit) }
func (c *Circuit) Sdg(qubit QuantumRef) *Circuit { return c.append(GateSdg, qubit) }

func (c *Circuit) U3(theta, phi, lambda float64, qubit QuantumRef) *Circuit {
	return c.append(GateU3, qubit, theta, phi, lambda)
}

func (c *Circuit) Measure(qubit QuantumRef, clbit ClassicalRef) *Circuit {
	c.Instructions = append(c.Instructions, Instruction{
		Gate:  GateMeasure,
		Qubit: qubit,
		Clbit: &clbit,
	})
	return c
}

// Gates returns the gate names in order, which is mostly useful in tests.
func (c *Circuit) Gates() []string {
	gates := make([]string, len(c.Instructions))
	for i, inst := range c.Instructions {
		gates[i] = inst.Gate
	}
	return gates
}

/*
Evolve applies the unitary instructions of the circuit to q, in order.
Measurements are skipped: the caller reads outcome probabilities off the
evolved state instead.
*/
func (c *Circuit) Evolve(q *Qubit) error {
	for _, inst := range c.Instructions {
		switch inst.Gate {
		case GateH:
			q.ApplyHadamard()
		case GateX:
			q.ApplyX()
		case GateS:
			q.ApplyS()
		case GateSdg:
			q.ApplySdg()
		case GateU3:
			if len(inst.Params) != 3 {
				return fmt.Errorf("circuit %s: u3 needs 3 parameters, got %d", c.Name, len(inst.Params))
			}
			q.ApplyU3(inst.Params[0], inst.Params[1], inst.Params[2])
		case GateMeasure:
		default:
			return fmt.Errorf("circuit %s: cannot simulate gate %q", c.Name, inst.Gate)
		}
	}
	return nil
}

// QASM renders the circuit as an OpenQASM 2.0 program.
func (c *Circuit) QASM() string {
	var (
		out   strings.Builder
		qregs []*QuantumRegister
		cregs []*ClassicalRegister
		seenQ = make(map[*QuantumRegister]bool)
		seenC = make(map[*ClassicalRegister]bool)
	)

	for _, inst := range c.Instructions {
		if r := inst.Qubit.Register; r != nil && !seenQ[r] {
			seenQ[r] = true
			qregs = append(qregs, r)
		}
		if inst.Clbit != nil {
			if r := inst.Clbit.Register; r != nil && !seenC[r] {
				seenC[r] = true
				cregs = append(cregs, r)
			}
		}
	}

	out.WriteString("OPENQASM 2.0;\n")
	out.WriteString("include \"qelib1.inc\";\n")

	for _, r := range qregs {
		fmt.Fprintf(&out, "qreg %s[%d];\n", r.Name, r.Size)
	}
	for _, r := range cregs {
		fmt.Fprintf(&out, "creg %s[%d];\n", r.Name, r.Size)
	}

	for _, inst := range c.Instructions {
		switch {
		case inst.Gate == GateMeasure && inst.Clbit != nil:
			fmt.Fprintf(&out, "measure %s -> %s;\n", inst.Qubit, *inst.Clbit)
		case len(inst.Params) > 0:
			params := make([]string, len(inst.Params))
			for i, p := range inst.Params {
				params[i] = strconv.FormatFloat(p, 'g', -1, 64)
			}
			fmt.Fprintf(&out, "%s(%s) %s;\n", inst.Gate, strings.Join(params, ","), inst.Qubit)
		default:
			fmt.Fprintf(&out, "%s %s;\n", inst.Gate, inst.Qubit)
		}
	}

	return out.String()
}
