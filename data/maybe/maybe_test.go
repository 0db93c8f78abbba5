package maybe_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/data/maybe"
)

func onlyPositive(v any) *adt.Value {
	if v.(int) > 0 {
		return maybe.Just(v)
	}
	return maybe.Nothing()
}

func TestMap(t *testing.T) {
	got, err := maybe.Map(maybe.Just(5), func(v any) any { return v.(int) + 1 })
	if err != nil || !got.Equal(maybe.Just(6)) {
		t.Fatalf("Map(just 5) = %v, %v", got, err)
	}
	got, err = maybe.Map(maybe.Nothing(), func(v any) any { panic("not called") })
	if err != nil || got != maybe.Nothing() {
		t.Fatalf("Map(nothing) = %v, %v", got, err)
	}
}

func TestBind(t *testing.T) {
	got, err := maybe.Bind(maybe.Just(5), onlyPositive)
	if err != nil || !got.Equal(maybe.Just(5)) {
		t.Fatalf("Bind(just 5) = %v, %v", got, err)
	}
	got, err = maybe.Bind(maybe.Just(-5), onlyPositive)
	if err != nil || got != maybe.Nothing() {
		t.Fatalf("Bind(just -5) = %v, %v", got, err)
	}
	_, err = maybe.Bind(maybe.Just(1), func(any) *adt.Value { return nil })
	if !errors.Is(err, adt.ErrTypeMismatch) {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
}

func TestOrElse(t *testing.T) {
	one, two := maybe.Just(1), maybe.Just(2)
	if got, _ := maybe.OrElse(one, two); got != one {
		t.Fatalf("OrElse(just 1) = %s", got)
	}
	if got, _ := maybe.OrElse(maybe.Nothing(), two); got != two {
		t.Fatalf("OrElse(nothing) = %s", got)
	}
}

func TestOrValueAndOrNil(t *testing.T) {
	if got, err := maybe.OrValue(maybe.Just(1), 2); err != nil || got != 1 {
		t.Fatalf("OrValue(just 1) = %v, %v", got, err)
	}
	if got, err := maybe.OrValue(maybe.Nothing(), 2); err != nil || got != 2 {
		t.Fatalf("OrValue(nothing) = %v, %v", got, err)
	}
	if got, err := maybe.OrNil(maybe.Nothing()); err != nil || got != nil {
		t.Fatalf("OrNil(nothing) = %v, %v", got, err)
	}
	if got, err := maybe.Just("x").Invoke("or_value", "y"); err != nil || got != "x" {
		t.Fatalf("or_value = %v, %v", got, err)
	}
}

func TestFilter(t *testing.T) {
	if got, _ := maybe.Filter(maybe.Nothing(), func(any) bool { return true }); got != maybe.Nothing() {
		t.Fatalf("Filter(nothing) = %s", got)
	}
	if got, _ := maybe.Filter(maybe.Just(1), func(v any) bool { return v.(int) > 1 }); got != maybe.Nothing() {
		t.Fatalf("Filter rejecting = %s", got)
	}
	if got, _ := maybe.Filter(maybe.Just(1), func(v any) bool { return v == 1 }); !got.Equal(maybe.Just(1)) {
		t.Fatalf("Filter accepting = %s", got)
	}
}

func TestFromNil(t *testing.T) {
	var p *int
	if maybe.FromNil(nil) != maybe.Nothing() || maybe.FromNil(p) != maybe.Nothing() {
		t.Fatalf("nil values must give nothing")
	}
	if !maybe.FromNil(0).Equal(maybe.Just(0)) {
		t.Fatalf("zero values are not nil")
	}
}

func TestDerivedForFree(t *testing.T) {
	values := []*adt.Value{maybe.Just(1), maybe.Nothing()}
	var isJust, toA []any
	for _, v := range values {
		j, _ := v.Invoke("just?")
		a, _ := v.Invoke("to_a")
		isJust = append(isJust, j)
		toA = append(toA, a)
	}
	if d := cmp.Diff([]any{true, false}, isJust); d != "" {
		t.Fatalf("just? (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]any{[]any{1}, []any{}}, toA); d != "" {
		t.Fatalf("to_a (-want +got):\n%s", d)
	}
	if !maybe.Nothing().Less(maybe.Just(1)) {
		t.Fatalf("nothing < just")
	}
}

func TestRejectsForeignValues(t *testing.T) {
	other := adt.MustType("Maybe", adt.CaseDef{Name: "nothing"}, adt.CaseDef{Name: "just", Fields: []string{"value"}})
	if _, err := maybe.Map(other.MustConstruct("nothing"), func(v any) any { return v }); !errors.Is(err, adt.ErrTypeMismatch) {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
	if _, err := maybe.OrNil(nil); !errors.Is(err, adt.ErrTypeMismatch) {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
}
