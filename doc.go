/*
Package takeable provides a container which always holds exactly one value, and
from which that value may be moved out through a pointer to the container.

A [Takeable] is useful whenever a value has to be transformed by value while it is
only reachable through a pointer, e.g. a state machine which stores its current state
variant in a struct field and transitions by consuming the old variant:

	type Conn struct {
	    state takeable.Takeable[State]
	}

	func (c *Conn) Open() {
	    c.state.Borrow(func(s State) State { return s.Open() })
	}

Two protocols are offered:

▪︎ scoped borrow-and-replace ([Takeable.Borrow], [BorrowResult]): the value is moved
out, handed to a transform, and the transform's result is stored back before the
call returns.

▪︎ one-shot take ([Takeable.Take], [Takeable.IntoInner]): the value is moved out for
good, leaving the cell unusable.

Internally a cell is either present or absent. Outside of the package's own methods
a cell is always present, with two exceptions: after the value has been taken, and
after a borrow transform panicked. Both leave the cell absent for the rest of its
life, and every access ([Takeable.Get], [Takeable.Ptr], [Takeable.Take],
[Takeable.Replace], a borrow) then panics with an [IllegalStateError].
Tearing a cell down with [Takeable.Close] is always safe.

A Takeable is not safe for concurrent use. Clients sharing a cell between goroutines
have to guard it themselves.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package takeable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'takeable'
func tracer() tracing.Trace {
	return tracing.Select("takeable")
}
