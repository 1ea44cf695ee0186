package tomography

import "strconv"

// Outcome is a single-bit measurement result.
type Outcome uint8

const (
	OutcomeZero Outcome = iota
	OutcomeOne
)

const acceptedOutcomes = "[0, 1, '0', '1']"

func (o Outcome) String() string {
	return strconv.Itoa(int(o))
}

/*
ParseOutcome normalizes a caller supplied outcome. Integers of any width equal
to 0 or 1 and the strings "0" and "1" are accepted; nothing else is, so
booleans, floats and nil all fail with ErrInvalidArgument.
*/
func ParseOutcome(v any) (Outcome, error) {
	var (
		n  int64
		ok bool
	)

	switch x := v.(type) {
	case Outcome:
		n, ok = int64(x), true
	case int:
		n, ok = int64(x), true
	case int8:
		n, ok = int64(x), true
	case int16:
		n, ok = int64(x), true
	case int32:
		n, ok = int64(x), true
	case int64:
		n, ok = x, true
	case uint:
		n, ok = int64(x), x <= 1
	case uint8:
		n, ok = int64(x), true
	case uint16:
		n, ok = int64(x), true
	case uint32:
		n, ok = int64(x), true
	case uint64:
		n, ok = int64(x), x <= 1
	case string:
		switch x {
		case "0":
			n, ok = 0, true
		case "1":
			n, ok = 1, true
		}
	}

	if !ok || (n != 0 && n != 1) {
		return 0, newBasisError(
			"", "outcome", ErrInvalidArgument,
			"invalid measurement outcome: %s not in %s", describeValue(v), acceptedOutcomes,
		)
	}

	return Outcome(n), nil
}
