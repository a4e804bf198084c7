package takeable

import (
	"errors"
	"fmt"
)

// ErrIllegalState is the single error condition of this package. It is raised
// (as a panic) whenever a cell is accessed while it does not hold a value.
var ErrIllegalState = errors.New("takeable: illegal state")

// IllegalStateError is the panic value raised on access to an unusable cell.
// It wraps ErrIllegalState, i.e. clients recovering from a panic may check
//
//	if err, ok := r.(error); ok && errors.Is(err, takeable.ErrIllegalState) { … }
type IllegalStateError struct {
	Op string // the operation which has been attempted, e.g. "Get" or "Borrow"
}

// Error implements the error interface.
func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("takeable: %s on unusable cell: value was taken or a borrow transform panicked", e.Op)
}

// Unwrap returns ErrIllegalState.
func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}

// illegalState traces and panics. It never returns.
func illegalState(op string) {
	err := &IllegalStateError{Op: op}
	tracer().Errorf("%s", err)
	panic(err)
}
