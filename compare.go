package takeable

import (
	"cmp"
	"fmt"
)

// Equal reports whether a and b hold equal values.
// It panics if any of them is unusable.
func Equal[T comparable](a, b *Takeable[T]) bool {
	return *a.slot.ref("Equal") == *b.slot.ref("Equal")
}

// Compare compares the values held by a and b, as cmp.Compare does.
// It panics if any of them is unusable.
func Compare[T cmp.Ordered](a, b *Takeable[T]) int {
	return cmp.Compare(*a.slot.ref("Compare"), *b.slot.ref("Compare"))
}

// String returns a debug representation of t. It does not panic for unusable cells.
func (t *Takeable[T]) String() string {
	if !t.slot.present() {
		return "Takeable(<unusable>)"
	}
	return fmt.Sprintf("Takeable(%v)", t.slot.value)
}

// Format implements fmt.Formatter. Verbs are applied to the inner value, e.g.
// "%+v" or "%#v".
func (t *Takeable[T]) Format(s fmt.State, verb rune) {
	if !t.slot.present() {
		fmt.Fprint(s, "Takeable(<unusable>)")
		return
	}
	fmt.Fprint(s, "Takeable(")
	fmt.Fprintf(s, fmt.FormatString(s, verb), t.slot.value)
	fmt.Fprint(s, ")")
}
