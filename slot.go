package takeable

// slot represents the storage of a Takeable. In contrast to an option type, the
// zero value of a slot is present (holding the zero T), and a slot may only be
// emptied, never refilled from outside the package's borrow machinery.
type slot[T any] struct {
	value  T
	vacant bool
}

// present reports whether the slot holds a value.
func (s *slot[T]) present() bool {
	return !s.vacant
}

// ref returns a pointer to the stored value or panics if the slot is vacant.
func (s *slot[T]) ref(op string) *T {
	if s.vacant {
		illegalState(op)
	}
	return &s.value
}

// take moves the value out and leaves the slot vacant. The stored value is
// cleared, so the slot does not keep anything reachable.
func (s *slot[T]) take(op string) T {
	if s.vacant {
		illegalState(op)
	}
	v := s.value
	var zero T
	s.value = zero
	s.vacant = true
	return v
}

// put stores v into a vacant slot.
func (s *slot[T]) put(v T) {
	s.value = v
	s.vacant = false
}
