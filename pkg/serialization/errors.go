package serialization

import (
	"errors"
	"fmt"
)

// ContractViolation reports a caller-side contract failure: absent input to
// a decoder, a missing required argument, or an unknown enum value in a
// query filter. It is distinct from transport and API failures.
type ContractViolation struct {
	Op     string
	Reason string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Reason)
}

// Violationf builds a ContractViolation for the named operation.
func Violationf(op, format string, args ...any) *ContractViolation {
	return &ContractViolation{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsContractViolation reports whether err is or wraps a ContractViolation.
func IsContractViolation(err error) bool {
	var cv *ContractViolation
	return errors.As(err, &cv)
}
