package adt

import (
	"strings"

	"github.com/nkpart/adt/internal/order"
)

// Compare orders two instances: by type, then by 1-based case index, then
// lexicographically by field values. Field values that are themselves
// instances are ordered the same way. nil sorts first.
func Compare(a, b *Value) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if a.typ != b.typ {
		if c := strings.Compare(a.typ.name, b.typ.name); c != 0 {
			return c
		}
		if a.typ.seq < b.typ.seq {
			return -1
		}
		return 1
	}
	if a.tag != b.tag {
		if a.tag < b.tag {
			return -1
		}
		return 1
	}
	return order.Slices(a.fields, b.fields, valueHook)
}

func valueHook(a, b any) (int, bool) {
	va, okA := a.(*Value)
	vb, okB := b.(*Value)
	if !okA || !okB {
		return 0, false
	}
	return Compare(va, vb), true
}

// Compare orders v against other; see the package-level Compare.
func (v *Value) Compare(other *Value) int { return Compare(v, other) }

// Equal reports structural equality. It agrees with Compare: two instances are
// equal exactly when Compare returns 0.
func (v *Value) Equal(other *Value) bool { return Compare(v, other) == 0 }

// Less reports v < other.
func (v *Value) Less(other *Value) bool { return Compare(v, other) < 0 }

// LessEqual reports v <= other.
func (v *Value) LessEqual(other *Value) bool { return Compare(v, other) <= 0 }

// Greater reports v > other.
func (v *Value) Greater(other *Value) bool { return Compare(v, other) > 0 }

// GreaterEqual reports v >= other.
func (v *Value) GreaterEqual(other *Value) bool { return Compare(v, other) >= 0 }

// Between reports min <= v <= max.
func (v *Value) Between(min, max *Value) bool {
	return Compare(min, v) <= 0 && Compare(v, max) <= 0
}
