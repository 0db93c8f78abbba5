package adt

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// method is one entry of an instance dispatch table.
type method func(v *Value, args []any) (any, error)

// typeMethod is one entry of the type-level dispatch table.
type typeMethod func(t *Type, args []any) (any, error)

// derive builds the dispatch tables from the schema. It runs once, in NewType;
// the tables are read-only afterwards.
func (t *Type) derive() {
	s := t.schema
	t.methods = map[string]method{
		"fold":       foldMethod,
		"case_index": nullaryMethod(func(v *Value) any { return v.CaseIndex() }),
		"case_name":  nullaryMethod(func(v *Value) any { return v.CaseName() }),
		"case_arity": nullaryMethod(func(v *Value) any { return v.CaseArity() }),
		"to_a":       nullaryMethod(func(v *Value) any { return v.Fields() }),
		"inspect":    nullaryMethod(func(v *Value) any { return v.String() }),
		"to_s":       nullaryMethod(func(v *Value) any { return v.String() }),
		"==":         compareMethod(func(c int) any { return c == 0 }),
		"<=>":        compareMethod(func(c int) any { return c }),
		"<":          compareMethod(func(c int) any { return c < 0 }),
		"<=":         compareMethod(func(c int) any { return c <= 0 }),
		">":          compareMethod(func(c int) any { return c > 0 }),
		">=":         compareMethod(func(c int) any { return c >= 0 }),
	}
	t.typeMethods = map[string]typeMethod{}

	for i, c := range s.cases {
		idx, name := i, c.Name
		t.methods[name+"?"] = nullaryMethod(func(v *Value) any { return v.tag == idx })
		t.methods["when_"+name] = func(v *Value, args []any) (any, error) {
			hs, err := handlerArgs("when_"+name, args, 2)
			if err != nil {
				return nil, err
			}
			h, _ := t.CaseHandler(name)
			return h(v, hs[0], hs[1])
		}
		t.typeMethods[name] = func(t *Type, args []any) (any, error) { return t.construct(idx, args) }
	}

	if s.IsEnumeration() {
		t.methods["to_i"] = nullaryMethod(func(v *Value) any { return v.CaseIndex() })
		// a case named all_values or from_i keeps its constructor
		t.addTypeMethod("all_values", func(t *Type, args []any) (any, error) {
			if err := noArgs("all_values", args); err != nil {
				return nil, err
			}
			return t.AllValues()
		})
		t.addTypeMethod("from_i", func(t *Type, args []any) (any, error) {
			if len(args) != 1 {
				return nil, arityIssue("from_i", 1, len(args))
			}
			i, err := integralArg(args[0])
			if err != nil {
				return nil, newIssue(methodPath("from_i").Index(0), CodeTypeMismatch, err.Error())
			}
			return t.FromIndex(i)
		})
	}

	if t.alias != "" {
		if _, taken := t.methods[t.alias]; taken {
			t.alias = ""
		} else {
			t.methods[t.alias] = foldMethod
		}
	}

	t.accessors = map[string]int{}
	for name, pos := range sharedFields(s) {
		if _, taken := t.methods[name]; taken {
			continue
		}
		p := pos
		t.accessors[name] = p
		t.methods[name] = nullaryMethod(func(v *Value) any { return v.fields[p] })
	}
}

func (t *Type) addTypeMethod(name string, m typeMethod) {
	if _, taken := t.typeMethods[name]; !taken {
		t.typeMethods[name] = m
	}
}

// sharedFields returns the field names declared by every case at the same
// position. Single-case schemas have none; names that are missing from a case
// or sit at different positions are omitted.
func sharedFields(s *Schema) map[string]int {
	out := map[string]int{}
	if len(s.cases) < 2 {
		return out
	}
	for pos, name := range s.cases[0].Fields {
		shared := true
		for _, c := range s.cases[1:] {
			if pos >= len(c.Fields) || c.Fields[pos] != name {
				shared = false
				break
			}
		}
		if shared {
			out[name] = pos
		}
	}
	return out
}

func foldMethod(v *Value, args []any) (any, error) {
	if len(args) == 1 {
		switch hs := args[0].(type) {
		case Handlers:
			return v.Match(hs)
		case map[string]Handler:
			return v.Match(hs)
		}
	}
	hs, err := handlerArgs("fold", args, -1)
	if err != nil {
		return nil, err
	}
	return v.Fold(hs...)
}

func nullaryMethod(fn func(v *Value) any) method {
	return func(v *Value, args []any) (any, error) {
		if len(args) != 0 {
			return nil, arityIssue("", 0, len(args))
		}
		return fn(v), nil
	}
}

func compareMethod(fn func(c int) any) method {
	return func(v *Value, args []any) (any, error) {
		if len(args) != 1 {
			return nil, arityIssue("", 1, len(args))
		}
		switch o := args[0].(type) {
		case *Value:
			return fn(Compare(v, o)), nil
		case nil:
			return fn(Compare(v, nil)), nil
		}
		return nil, newIssue(Root().Field("args").Index(0), CodeTypeMismatch,
			fmt.Sprintf("cannot compare with %T", args[0]))
	}
}

// handlerArgs asserts every argument is a Handler. want < 0 accepts any count.
func handlerArgs(name string, args []any, want int) ([]Handler, error) {
	if want >= 0 && len(args) != want {
		return nil, arityIssue(name, want, len(args))
	}
	hs := make([]Handler, len(args))
	for i, a := range args {
		h, ok := a.(Handler)
		if !ok {
			return nil, newIssue(methodPath(name).Index(i), CodeTypeMismatch,
				fmt.Sprintf("argument %d is %T, want adt.Handler", i, a))
		}
		hs[i] = h
	}
	return hs, nil
}

func noArgs(name string, args []any) error {
	if len(args) != 0 {
		return arityIssue(name, 0, len(args))
	}
	return nil
}

func arityIssue(name string, want, got int) error {
	p := Root()
	if name != "" {
		p = methodPath(name)
	}
	return newIssue(p, CodeArity, fmt.Sprintf("takes %d argument(s), got %d", want, got), "want", want, "got", got)
}

// Invoke calls a derived method or a defined operation by name.
//
// Derived names: fold (and the fold synonym), <case>?, when_<case>,
// case_index, case_name, case_arity, to_a, inspect, to_s, ==, <=>, <, <=, >,
// >=, to_i (enumerations) and the cross-case field accessors.
func (v *Value) Invoke(name string, args ...any) (any, error) {
	if m, ok := v.typ.methods[name]; ok {
		res, err := m(v, args)
		if err != nil {
			return nil, relocate(err, name)
		}
		return res, nil
	}
	if op, ok := v.typ.operation(name); ok {
		return v.runOperation(op, args)
	}
	return nil, newIssue(methodPath(name), CodeUnknownMethod,
		fmt.Sprintf("%s does not respond to %s", v.typ.displayName(), quote(name)), "name", name)
}

// relocate prefixes argument-level issue paths with the method name.
func relocate(err error, name string) error {
	iss, ok := err.(Issues)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" {
			it.Path = methodPath(name).Pointer()
		}
		out[i] = it
	}
	return out
}

// RespondsTo reports whether Invoke knows the name.
func (v *Value) RespondsTo(name string) bool {
	if _, ok := v.typ.methods[name]; ok {
		return true
	}
	_, ok := v.typ.operation(name)
	return ok
}

// Invoke calls a type-level method by name: one constructor per case, plus
// all_values and from_i on enumerations.
func (t *Type) Invoke(name string, args ...any) (any, error) {
	m, ok := t.typeMethods[name]
	if !ok {
		return nil, newIssue(methodPath(name), CodeUnknownMethod,
			fmt.Sprintf("%s does not respond to %s", t.displayName(), quote(name)), "name", name)
	}
	return m(t, args)
}

// RespondsTo reports whether the type-level Invoke knows the name.
func (t *Type) RespondsTo(name string) bool {
	_, ok := t.typeMethods[name]
	return ok
}

// Methods returns every instance method name, derived and defined, sorted.
func (t *Type) Methods() []string {
	out := make([]string, 0, len(t.methods))
	for k := range t.methods {
		out = append(out, k)
	}
	out = append(out, t.Operations()...)
	sort.Strings(out)
	return out
}

// TypeMethods returns the type-level method names, sorted.
func (t *Type) TypeMethods() []string {
	out := make([]string, 0, len(t.typeMethods))
	for k := range t.typeMethods {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// integralArg reads an integer argument, rejecting values with a fraction.
func integralArg(x any) (int, error) {
	i, err := cast.ToIntE(x)
	if err != nil {
		return 0, err
	}
	if f, ferr := cast.ToFloat64E(x); ferr == nil && f != float64(i) {
		return 0, fmt.Errorf("%v is not an integer", x)
	}
	return i, nil
}
