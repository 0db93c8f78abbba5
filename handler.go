package adt

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// AnyArity marks a Handler that accepts any number of field values.
const AnyArity = -1

// Handler is a case handler with a declared arity. The zero Handler is
// treated as absent.
type Handler struct {
	arity int
	call  func(args []any) (any, error)
}

// Handlers maps case names to handlers for keyed folds.
type Handlers map[string]Handler

// Arity returns the number of field values the handler accepts, or AnyArity.
func (h Handler) Arity() int { return h.arity }

// IsZero reports whether the handler is absent.
func (h Handler) IsZero() bool { return h.call == nil }

// Call invokes the handler with exactly the given arguments.
func (h Handler) Call(args ...any) (any, error) {
	if h.call == nil {
		return nil, newIssue(Root(), CodeMissingHandler, "handler is not set")
	}
	if h.arity != AnyArity && h.arity != len(args) {
		return nil, newIssue(Root(), CodeArity, fmt.Sprintf("handler takes %d argument(s), got %d", h.arity, len(args)), "want", h.arity, "got", len(args))
	}
	return h.call(args)
}

// Fn0 adapts a function for nullary cases.
func Fn0(fn func() any) Handler {
	return Handler{arity: 0, call: func([]any) (any, error) { return fn(), nil }}
}

// Fn1 adapts a function for single-field cases.
func Fn1(fn func(a any) any) Handler {
	return Handler{arity: 1, call: func(args []any) (any, error) { return fn(args[0]), nil }}
}

// Fn2 adapts a function for two-field cases.
func Fn2(fn func(a, b any) any) Handler {
	return Handler{arity: 2, call: func(args []any) (any, error) { return fn(args[0], args[1]), nil }}
}

// Fn3 adapts a function for three-field cases.
func Fn3(fn func(a, b, c any) any) Handler {
	return Handler{arity: 3, call: func(args []any) (any, error) { return fn(args[0], args[1], args[2]), nil }}
}

// FnN adapts a variadic function declared to take n arguments. Pass AnyArity
// to accept any count.
func FnN(n int, fn func(args ...any) any) Handler {
	return Handler{arity: n, call: func(args []any) (any, error) { return fn(args...), nil }}
}

// FnE is FnN for functions that can fail. The error is returned from the fold
// unchanged.
func FnE(n int, fn func(args ...any) (any, error)) Handler {
	return Handler{arity: n, call: func(args []any) (any, error) { return fn(args...) }}
}

// Const returns v whatever the case's fields are.
func Const(v any) Handler {
	return Handler{arity: AnyArity, call: func([]any) (any, error) { return v, nil }}
}

// Identity returns the received field values as a []any.
func Identity() Handler {
	return Handler{arity: AnyArity, call: func(args []any) (any, error) { return append([]any{}, args...), nil }}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Func adapts an ordinary Go function. Its parameter count is the handler's
// arity (variadic functions accept any count). Results may be (), (R), (error)
// or (R, error). Arguments are converted to the parameter types when possible;
// otherwise the call fails with a type_mismatch issue. Func panics when fn is
// not a function or has an unsupported result shape.
func Func(fn any) Handler {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		panic(fmt.Sprintf("adt.Func: expected a func, got %T", fn))
	}
	ft := rv.Type()
	if ft.NumOut() > 2 || (ft.NumOut() == 2 && !ft.Out(1).Implements(errorType)) {
		panic(fmt.Sprintf("adt.Func: unsupported result shape %s", ft))
	}
	arity := ft.NumIn()
	if ft.IsVariadic() {
		arity = AnyArity
	}
	return Handler{arity: arity, call: func(args []any) (any, error) {
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			var pt reflect.Type
			if ft.IsVariadic() && i >= ft.NumIn()-1 {
				pt = ft.In(ft.NumIn() - 1).Elem()
			} else {
				pt = ft.In(i)
			}
			v, err := convertArg(a, pt, i)
			if err != nil {
				return nil, err
			}
			in[i] = v
		}
		if ft.IsVariadic() && len(args) < ft.NumIn()-1 {
			return nil, newIssue(Root(), CodeArity, fmt.Sprintf("handler takes at least %d argument(s), got %d", ft.NumIn()-1, len(args)))
		}
		return splitResults(rv.Call(in))
	}}
}

func convertArg(a any, pt reflect.Type, i int) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, newIssue(Root().Field("args").Index(i), CodeTypeMismatch, "nil is not assignable to "+pt.String())
	}
	av := reflect.ValueOf(a)
	if av.Type().AssignableTo(pt) {
		return av, nil
	}
	if isNumericKind(av.Kind()) && isNumericKind(pt.Kind()) {
		if v, ok := convertNumber(av, pt); ok {
			return v, nil
		}
		return reflect.Value{}, newIssue(Root().Field("args").Index(i), CodeTypeMismatch,
			fmt.Sprintf("%v does not fit %s", a, pt), "want", pt.String(), "got", fmt.Sprintf("%T", a))
	}
	return reflect.Value{}, newIssue(Root().Field("args").Index(i), CodeTypeMismatch, fmt.Sprintf("%T is not assignable to %s", a, pt), "want", pt.String(), "got", fmt.Sprintf("%T", a))
}

// convertNumber converts av to pt only when the value survives unchanged:
// no overflow, no dropped fraction, no rounded integer. Float to float may
// round but not overflow.
func convertNumber(av reflect.Value, pt reflect.Type) (reflect.Value, bool) {
	out := reflect.New(pt).Elem()
	if (av.Kind() == reflect.Float32 || av.Kind() == reflect.Float64) && math.IsNaN(av.Float()) {
		if pt.Kind() != reflect.Float32 && pt.Kind() != reflect.Float64 {
			return reflect.Value{}, false
		}
		out.SetFloat(av.Float())
		return out, true
	}
	exact := numberValue(av)
	switch pt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !exact.IsInt() {
			return reflect.Value{}, false
		}
		i, acc := exact.Int64()
		if acc != big.Exact || out.OverflowInt(i) {
			return reflect.Value{}, false
		}
		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !exact.IsInt() {
			return reflect.Value{}, false
		}
		u, acc := exact.Uint64()
		if acc != big.Exact || out.OverflowUint(u) {
			return reflect.Value{}, false
		}
		out.SetUint(u)
	default:
		var f float64
		var acc big.Accuracy
		if pt.Kind() == reflect.Float32 {
			var f32 float32
			f32, acc = exact.Float32()
			f = float64(f32)
		} else {
			f, acc = exact.Float64()
		}
		fromFloat := av.Kind() == reflect.Float32 || av.Kind() == reflect.Float64
		if !fromFloat && acc != big.Exact {
			return reflect.Value{}, false
		}
		if fromFloat && math.IsInf(f, 0) && !math.IsInf(av.Float(), 0) {
			return reflect.Value{}, false
		}
		out.SetFloat(f)
	}
	return out, true
}

// numberValue returns the exact value of a non-NaN numeric reflect.Value.
func numberValue(av reflect.Value) *big.Float {
	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(av.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Float).SetUint64(av.Uint())
	}
	return new(big.Float).SetFloat64(av.Float())
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func splitResults(out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if out[0].Type() == errorType {
			if out[0].IsNil() {
				return nil, nil
			}
			return nil, out[0].Interface().(error)
		}
		return out[0].Interface(), nil
	default:
		var err error
		if !out[1].IsNil() {
			err = out[1].Interface().(error)
		}
		return out[0].Interface(), err
	}
}
