package ds

import (
	"fmt"
)

// ErrUnreachableCode marks a branch that only a programming error can reach,
// returned instead of panicking.
type ErrUnreachableCode struct {
	Caller string
}

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}
