package order

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

type celsius float64

func TestCompare_Numbers(t *testing.T) {
	cases := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{int8(3), int64(3), 0},
		{uint(3), uint64(4), -1},
		{1, 1.5, -1},
		{2.0, 2, 0},
		{json.Number("10"), 9, 1},
		{json.Number("2.5"), 2.5, 0},
		{celsius(3), 3, 0},
		{math.NaN(), 1, -1},
		{math.NaN(), math.NaN(), 0},
		{uint8(200), -1, 1},
		{int64(math.MaxInt64), uint64(1 << 63), -1},
		{uint64(math.MaxUint64), int64(-1), 1},
		{int64(-1), uint(0), -1},
		{int64(1 << 53), float64(1 << 53), 0},
		{int64(1<<53 + 1), float64(1 << 53), 1},
		{uint64(1<<53 + 1), float64(1 << 53), 1},
		{float64(1 << 63), int64(math.MaxInt64), 1},
		{math.Inf(1), uint64(math.MaxUint64), 1},
		{math.Inf(-1), int64(math.MinInt64), -1},
		{math.NaN(), math.Inf(-1), -1},
		{json.Number("9223372036854775808"), int64(math.MaxInt64), 1},
		{json.Number("9007199254740993"), float64(1 << 53), 1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b, nil); got != c.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := Compare(c.b, c.a, nil); got != -c.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", c.b, c.a, got, -c.want)
		}
	}
}

func TestCompare_NumbersEqualityIsTransitive(t *testing.T) {
	a, f, b := int64(1<<53), float64(1<<53), int64(1<<53+1)
	if Compare(a, f, nil) != 0 {
		t.Fatalf("%v and %v should be equal", a, f)
	}
	if Compare(b, f, nil) == 0 {
		t.Fatalf("%v and %v should differ", b, f)
	}
	if Compare(a, b, nil) != -1 {
		t.Fatalf("%v should sort before %v", a, b)
	}
}

func TestCompare_ClassesAndScalars(t *testing.T) {
	now := time.Now()
	cases := []struct {
		a, b any
		want int
	}{
		{nil, nil, 0},
		{nil, 0, -1},
		{false, true, -1},
		{true, true, 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{1, "1", -1},
		{now, now.Add(time.Second), -1},
		{now, now, 0},
		{(*int)(nil), nil, 0},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b, nil); got != c.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCompare_SequencesLexicographic(t *testing.T) {
	if c := Compare([]any{1, 2}, []any{1, 3}, nil); c != -1 {
		t.Fatalf("got %d", c)
	}
	if c := Compare([]int{1, 2}, []int{1, 2, 0}, nil); c != -1 {
		t.Fatalf("prefix should sort first, got %d", c)
	}
	if c := Compare([2]string{"a", "b"}, []string{"a", "b"}, nil); c != 0 {
		t.Fatalf("array vs slice with same elements, got %d", c)
	}
	if c := Slices([]any{"x"}, []any{}, nil); c != 1 {
		t.Fatalf("got %d", c)
	}
}

func TestCompare_OtherIsConsistentWithDeepEqual(t *testing.T) {
	a := map[string]any{"k": 1, "j": []any{2}}
	b := map[string]any{"j": []any{2}, "k": 1}
	if c := Compare(a, b, nil); c != 0 {
		t.Fatalf("equal maps should compare 0, got %d", c)
	}
	c1 := Compare(map[string]int{"a": 1}, map[string]int{"a": 2}, nil)
	c2 := Compare(map[string]int{"a": 2}, map[string]int{"a": 1}, nil)
	if c1 == 0 || c1 != -c2 {
		t.Fatalf("order must be antisymmetric, got %d and %d", c1, c2)
	}
}

func TestCompare_HookTakesPrecedence(t *testing.T) {
	hook := func(a, b any) (int, bool) {
		if _, ok := a.(string); ok {
			return 0, true
		}
		return 0, false
	}
	if c := Compare("a", "z", hook); c != 0 {
		t.Fatalf("hook ignored, got %d", c)
	}
	if c := Compare([]any{"a", 1}, []any{"z", 2}, hook); c != -1 {
		t.Fatalf("hook must apply to elements, got %d", c)
	}
}
