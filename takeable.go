package takeable

import (
	"io"
)

// Takeable is a cell which always holds a single value of type T.
//
// The zero value of a Takeable is ready to use and holds the zero value of T.
// A Takeable must not be copied after a borrow transform has been started on it.
//
// If a transform given to Borrow or BorrowResult panics, the Takeable is left in an
// unusable state without holding a T. Calling any accessor on it will then result in
// a panic with an *IllegalStateError. It is still safe to call Close, IsUsable and
// String on an unusable cell.
type Takeable[T any] struct {
	// Outside of BorrowResult the slot is always present, unless the value has
	// been taken or a transform panicked.
	slot slot[T]
}

// New constructs a Takeable holding value.
func New[T any](value T) *Takeable[T] {
	return &Takeable[T]{slot: slot[T]{value: value}}
}

// Get returns (a copy of) the inner value.
func (t *Takeable[T]) Get() T {
	return *t.slot.ref("Get")
}

// Ptr returns a pointer to the inner value. The pointer is valid until the next
// Take, IntoInner, Replace, Close or borrow on t.
func (t *Takeable[T]) Ptr() *T {
	return t.slot.ref("Ptr")
}

// Take moves the inner value out of t for good. Afterwards t is unusable; every
// further access will panic.
func (t *Takeable[T]) Take() T {
	return t.slot.take("Take")
}

// IntoInner consumes t and returns its value. Clients must not use t afterwards.
func (t *Takeable[T]) IntoInner() T {
	return t.slot.take("IntoInner")
}

// Replace stores value into t and returns the value held before.
func (t *Takeable[T]) Replace(value T) T {
	p := t.slot.ref("Replace")
	old := *p
	*p = value
	return old
}

// Borrow updates the inner value using the transform f.
//
// During the execution of f, t does not hold a value. Accessing t from within f
// will panic. If f panics, the panic is propagated and t stays unusable.
func (t *Takeable[T]) Borrow(f func(T) T) {
	borrow(t, "Borrow", func(v T) (T, struct{}) {
		return f(v), struct{}{}
	})
}

// BorrowResult updates the inner value of t using the transform f, and returns the
// auxiliary result of f. It has the same semantics as Takeable.Borrow.
//
// BorrowResult is a function rather than a method, as Go methods may not introduce
// type parameters of their own.
func BorrowResult[T, R any](t *Takeable[T], f func(T) (T, R)) R {
	return borrow(t, "BorrowResult", f)
}

func borrow[T, R any](t *Takeable[T], op string, f func(T) (T, R)) R {
	old := t.slot.take(op)
	returned := false
	defer func() {
		if !returned { // f is unwinding; we do not recover, the cell stays vacant
			tracer().Errorf("takeable: %s transform did not return, cell is unusable", op)
		}
	}()
	v, r := f(old)
	t.slot.put(v)
	returned = true
	return r
}

// IsUsable reports whether t still holds a value. A cell starts out usable and
// becomes unusable by Take, IntoInner, Close, or a panicking borrow transform.
//
// Correct code does not need to check this: presence is a property of call
// sequencing, not of a cell's run-time state. IsUsable is meant for teardown
// paths and assertions.
func (t *Takeable[T]) IsUsable() bool {
	return t.slot.present()
}

// Close tears t down. If t holds a value implementing io.Closer, the value is
// closed and its error returned. Close on an unusable cell is a no-op; it is safe
// to call Close more than once.
func (t *Takeable[T]) Close() error {
	if !t.slot.present() {
		return nil
	}
	v := t.slot.take("Close")
	if c, ok := any(v).(io.Closer); ok {
		tracer().Debugf("takeable: closing inner value of type %T", v)
		return c.Close()
	}
	return nil
}

var _ io.Closer = (*Takeable[int])(nil)
