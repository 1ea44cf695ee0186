package tomography

import "fmt"

// QuantumRegister names a block of qubits.
type QuantumRegister struct {
	Name string
	Size int
}

// ClassicalRegister names a block of classical bits that measurements write into.
type ClassicalRegister struct {
	Name string
	Size int
}

func NewQuantumRegister(size int, name string) *QuantumRegister {
	return &QuantumRegister{Name: name, Size: size}
}

func NewClassicalRegister(size int, name string) *ClassicalRegister {
	return &ClassicalRegister{Name: name, Size: size}
}

// Bit returns a reference to the qubit at index i. Bounds are not checked.
func (r *QuantumRegister) Bit(i int) QuantumRef {
	return QuantumRef{Register: r, Index: i}
}

// Bit returns a reference to the classical bit at index i. Bounds are not checked.
func (r *ClassicalRegister) Bit(i int) ClassicalRef {
	return ClassicalRef{Register: r, Index: i}
}

/*
RegisterRef identifies a single bit inside a register. There are exactly two
variants, QuantumRef and ClassicalRef; the unexported method keeps the set
closed so validation is a type switch rather than structural inspection.
*/
type RegisterRef interface {
	RegisterName() string
	BitIndex() int
	isRegisterRef()
}

// QuantumRef points at one qubit of a QuantumRegister.
type QuantumRef struct {
	Register *QuantumRegister
	Index    int
}

func (q QuantumRef) RegisterName() string {
	if q.Register == nil {
		return ""
	}
	return q.Register.Name
}

func (q QuantumRef) BitIndex() int { return q.Index }
func (QuantumRef) isRegisterRef()  {}

func (q QuantumRef) String() string {
	return fmt.Sprintf("%s[%d]", q.RegisterName(), q.Index)
}

// ClassicalRef points at one bit of a ClassicalRegister.
type ClassicalRef struct {
	Register *ClassicalRegister
	Index    int
}

func (c ClassicalRef) RegisterName() string {
	if c.Register == nil {
		return ""
	}
	return c.Register.Name
}

func (c ClassicalRef) BitIndex() int { return c.Index }
func (ClassicalRef) isRegisterRef()  {}

func (c ClassicalRef) String() string {
	return fmt.Sprintf("%s[%d]", c.RegisterName(), c.Index)
}

// asQuantum accepts QuantumRef by value or pointer, as long as it names a register.
func asQuantum(ref RegisterRef) (QuantumRef, bool) {
	switch r := ref.(type) {
	case QuantumRef:
		return r, r.Register != nil
	case *QuantumRef:
		if r == nil {
			return QuantumRef{}, false
		}
		return *r, r.Register != nil
	}
	return QuantumRef{}, false
}

func asClassical(ref RegisterRef) (ClassicalRef, bool) {
	switch r := ref.(type) {
	case ClassicalRef:
		return r, r.Register != nil
	case *ClassicalRef:
		if r == nil {
			return ClassicalRef{}, false
		}
		return *r, r.Register != nil
	}
	return ClassicalRef{}, false
}
