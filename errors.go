package tomography

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var (
	// ErrUnsupportedOperation is returned when a basis lacks the capability an operation needs.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrInvalidArgument is returned for bad register references, labels or outcomes.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedCapability is returned by strict construction for a partial capability.
	ErrMalformedCapability = errors.New("malformed capability")
	// ErrUnknownBasis is returned when a registry has no basis under the requested name.
	ErrUnknownBasis = errors.New("unknown basis")
	// ErrDuplicateBasis is returned when a name is registered twice.
	ErrDuplicateBasis = errors.New("duplicate basis")
)

/*
BasisError carries the basis name and the operation that failed alongside
one of the sentinel errors above, so callers can match on the kind with
errors.Is and still print a message that is useful at the call site.
*/
type BasisError struct {
	Basis string
	Op    string
	Kind  error
	Msg   string
}

func (e *BasisError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString("tomography: ")

	if e.Basis != "" {
		b.WriteString(e.Basis)
		b.WriteString(": ")
	}

	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}

	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	}

	return b.String()
}

func (e *BasisError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

func newBasisError(basis, op string, kind error, format string, args ...any) error {
	return &BasisError{
		Basis: basis,
		Op:    op,
		Kind:  kind,
		Msg:   fmt.Sprintf(format, args...),
	}
}

func unsupported(basis, op, capability string) error {
	return newBasisError(basis, op, ErrUnsupportedOperation, "%s is not a %s basis", basis, capability)
}

func invalidLabel(basis, op, capability, label string, labels []string) error {
	return newBasisError(
		basis, op, ErrInvalidArgument,
		"invalid %s %s operator label: '%s' not in %s",
		basis, capability, label, formatLabels(labels),
	)
}

// describeValue renders an arbitrary caller value together with its type.
func describeValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	return strings.TrimSpace(spew.Sprintf("%#v", v))
}

func describeRef(ref RegisterRef) string {
	if ref == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T %v", ref, ref)
}

func formatLabels(labels []string) string {
	quoted := make([]string, len(labels))
	for i, label := range labels {
		quoted[i] = "'" + label + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
