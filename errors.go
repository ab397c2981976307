package mcx

import "fmt"

// InfeasibleWidthError reports a width budget below the k+1 floor. The
// caller can retry with MaxWidth ≥ RequiredMinimum.
type InfeasibleWidthError struct {
	ControlCount    int
	MaxWidth        int
	RequiredMinimum int
}

func (e *InfeasibleWidthError) Error() string {
	return fmt.Sprintf("mcx: width %d infeasible for %d controls, need at least %d qubits",
		e.MaxWidth, e.ControlCount, e.RequiredMinimum)
}

// UnsupportedBasisError reports that no rewrite rule bridges a gate kind to
// the requested basis. Not recoverable without changing the basis.
type UnsupportedBasisError struct {
	Kind  Kind
	Basis Basis
}

func (e *UnsupportedBasisError) Error() string {
	return fmt.Sprintf("mcx: no rewrite of %s into basis %s", e.Kind, e.Basis)
}

// InvalidArgumentError rejects a malformed request before planning starts.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "mcx: invalid argument: " + e.Reason
}

func errInvalid(format string, args ...any) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}
