// Package order defines a deterministic total order over arbitrary Go values
// as they appear in ADT fields.
//
// Values of the same class compare naturally: numbers numerically (mixed
// int/uint/float/json.Number included), strings lexically, false < true,
// times chronologically, slices and arrays lexicographically. Everything else
// compares by a canonical dump, so the order is total and Compare(a, b) == 0
// exactly when the values are considered equal.
package order

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cast"
)

// Hook lets the caller order values it knows about (for example nested ADT
// instances). It returns ok=false to fall through to the default order.
type Hook func(a, b any) (c int, ok bool)

// class ranks heterogeneous values.
type class int

const (
	classNil class = iota
	classBool
	classNumber
	classString
	classTime
	classSequence
	classOther
)

var dumper = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Compare returns -1, 0 or 1.
func Compare(a, b any, hook Hook) int {
	if hook != nil {
		if c, ok := hook(a, b); ok {
			return c
		}
	}
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return sign(int(ca) - int(cb))
	}
	switch ca {
	case classNil:
		return 0
	case classBool:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case classNumber:
		return compareNumbers(a, b)
	case classString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case classTime:
		x, y := a.(time.Time), b.(time.Time)
		switch {
		case x.Before(y):
			return -1
		case x.After(y):
			return 1
		}
		return 0
	case classSequence:
		return Sequences(reflect.ValueOf(a), reflect.ValueOf(b), hook)
	}
	return compareOther(a, b)
}

// Slices compares two []any lexicographically.
func Slices(a, b []any, hook Hook) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i], hook); c != 0 {
			return c
		}
	}
	return sign(len(a) - len(b))
}

// Sequences compares two slice or array values lexicographically.
func Sequences(a, b reflect.Value, hook Hook) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		if c := Compare(a.Index(i).Interface(), b.Index(i).Interface(), hook); c != 0 {
			return c
		}
	}
	return sign(a.Len() - b.Len())
}

func classOf(v any) class {
	if v == nil {
		return classNil
	}
	if _, ok := v.(json.Number); ok {
		return classNumber
	}
	if _, ok := v.(time.Time); ok {
		return classTime
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		return classString
	case reflect.Slice, reflect.Array:
		return classSequence
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return classNil
		}
	}
	return classOther
}

// compareNumbers is exact across kinds: mixed signed, unsigned and float
// values are compared as big.Float, which holds every int64, uint64 and
// float64 without rounding.
func compareNumbers(a, b any) int {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isSigned(ra) && isSigned(rb):
		return compareInt64(ra.Int(), rb.Int())
	case isUnsigned(ra) && isUnsigned(rb):
		return compareUint64(ra.Uint(), rb.Uint())
	}
	x, y := toBig(a), toBig(b)
	// NaN sorts before every number and equals itself.
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	case y == nil:
		return 1
	}
	return x.Cmp(y)
}

// toBig returns the exact value of v, or nil for NaN. Integral json.Number
// text is read as an integer; other text goes through float64.
func toBig(v any) *big.Float {
	if n, ok := v.(json.Number); ok {
		s := string(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return new(big.Float).SetInt64(i)
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return new(big.Float).SetUint64(u)
		}
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return nil
		}
		return bigFloat(f)
	}
	rv := reflect.ValueOf(v)
	// named numeric types are reduced to their base kind
	switch {
	case isSigned(rv):
		return new(big.Float).SetInt64(rv.Int())
	case isUnsigned(rv):
		return new(big.Float).SetUint64(rv.Uint())
	}
	return bigFloat(rv.Float())
}

func bigFloat(f float64) *big.Float {
	if math.IsNaN(f) {
		return nil
	}
	return new(big.Float).SetFloat64(f)
}

func isSigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func compareInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func compareUint64(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func compareOther(a, b any) int {
	if reflect.DeepEqual(a, b) {
		return 0
	}
	ta, tb := reflect.TypeOf(a).String(), reflect.TypeOf(b).String()
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return strings.Compare(Dump(a), Dump(b))
}

// Dump renders v canonically: map keys sorted, no pointer addresses.
func Dump(v any) string { return dumper.Sdump(v) }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
