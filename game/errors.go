package game

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedBoard = errors.New("malformed board")
	ErrIllegalMove    = errors.New("illegal move")
)

// ContractViolation is raised (as a panic value) when the rules engine is used
// incorrectly: out-of-bounds access, playing on an occupied point, corrupt cells.
// Correct callers never trigger it.
type ContractViolation struct {
	Op     string
	Detail string
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Detail)
}
