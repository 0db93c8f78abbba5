package adt

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/iancoleman/strcase"
)

var typeSeq atomic.Uint64

// Type is a generated closed sum type: a frozen Schema plus its constructors,
// derived operations and user-defined operations. A Type is built once and
// shared; it is safe for concurrent use.
type Type struct {
	name   string
	alias  string
	seq    uint64
	schema *Schema

	// one slot per case; only nullary cases use theirs
	nullary []nullarySlot
	allOnce sync.Once
	all     []*Value

	accessors   map[string]int
	methods     map[string]method
	typeMethods map[string]typeMethod

	opsMu sync.RWMutex
	ops   map[string]OperationFunc
}

type nullarySlot struct {
	once sync.Once
	v    *Value
}

// Constructor builds an instance of one case.
type Constructor func(args ...any) (*Value, error)

// NewType declares a type from ordered case declarations. An empty name
// declares an anonymous type, which has no fold synonym.
func NewType(name string, cases ...CaseDef) (*Type, error) {
	s, err := NewSchema(cases...)
	if err != nil {
		return nil, err
	}
	t := &Type{
		name:    name,
		alias:   foldAlias(name),
		seq:     typeSeq.Add(1),
		schema:  s,
		nullary: make([]nullarySlot, s.Len()),
		ops:     map[string]OperationFunc{},
	}
	t.derive()
	return t, nil
}

// MustType is NewType that panics on error. Intended for package-level
// declarations.
func MustType(name string, cases ...CaseDef) *Type {
	t, err := NewType(name, cases...)
	if err != nil {
		panic(err)
	}
	return t
}

// foldAlias converts "ValidatedValue" (or "pkg::ValidatedValue") to
// "validated_value". Names that do not produce an identifier yield "".
func foldAlias(name string) string {
	if name == "" {
		return ""
	}
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	a := strcase.ToSnake(name)
	if !IsIdentifier(a) {
		return ""
	}
	return a
}

// Name returns the declared name ("" for anonymous types).
func (t *Type) Name() string { return t.name }

// Schema returns the frozen case schema.
func (t *Type) Schema() *Schema { return t.schema }

// FoldAlias returns the fold synonym derived from the type name, or "" when
// the type has none.
func (t *Type) FoldAlias() string { return t.alias }

// IsEnumeration reports whether every case is nullary.
func (t *Type) IsEnumeration() bool { return t.schema.IsEnumeration() }

// Constructor returns the constructor of the named case.
func (t *Type) Constructor(caseName string) (Constructor, error) {
	idx, ok := t.schema.Index(caseName)
	if !ok {
		return nil, t.unknownCase(caseName)
	}
	return func(args ...any) (*Value, error) { return t.construct(idx, args) }, nil
}

// Construct builds an instance of the named case from positional field values.
func (t *Type) Construct(caseName string, args ...any) (*Value, error) {
	idx, ok := t.schema.Index(caseName)
	if !ok {
		return nil, t.unknownCase(caseName)
	}
	return t.construct(idx, args)
}

// MustConstruct is Construct that panics on error.
func (t *Type) MustConstruct(caseName string, args ...any) *Value {
	v, err := t.Construct(caseName, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func (t *Type) construct(idx int, args []any) (*Value, error) {
	c := t.schema.cases[idx]
	if len(args) != len(c.Fields) {
		return nil, newIssue(casePath(c.Name), CodeArity,
			fmt.Sprintf("%s takes %d argument(s), got %d", c.Name, len(c.Fields), len(args)),
			"want", len(c.Fields), "got", len(args))
	}
	if len(c.Fields) == 0 {
		return t.singleton(idx), nil
	}
	return &Value{typ: t, tag: idx, fields: append([]any(nil), args...)}, nil
}

// singleton returns the one shared instance of a nullary case.
func (t *Type) singleton(idx int) *Value {
	slot := &t.nullary[idx]
	slot.once.Do(func() {
		slot.v = &Value{typ: t, tag: idx}
	})
	return slot.v
}

// AllValues returns every case instance in declaration order. Only
// enumerations support it.
func (t *Type) AllValues() ([]*Value, error) {
	if !t.IsEnumeration() {
		return nil, t.notEnumeration("all_values")
	}
	t.allOnce.Do(func() {
		all := make([]*Value, t.schema.Len())
		for i := range all {
			all[i] = t.singleton(i)
		}
		t.all = all
	})
	return append([]*Value(nil), t.all...), nil
}

// FromIndex returns the case instance with the given 1-based index. Only
// enumerations support it.
func (t *Type) FromIndex(i int) (*Value, error) {
	if !t.IsEnumeration() {
		return nil, t.notEnumeration("from_i")
	}
	n := t.schema.Len()
	if i < 1 || i > n {
		return nil, newIssue(Root().Field("from_i"), CodeIndexOutOfRange,
			fmt.Sprintf("index %d outside [1, %d]", i, n), "index", i, "min", 1, "max", n)
	}
	return t.singleton(i - 1), nil
}

// Predicate returns a test for the named case.
func (t *Type) Predicate(caseName string) (func(*Value) bool, error) {
	idx, ok := t.schema.Index(caseName)
	if !ok {
		return nil, t.unknownCase(caseName)
	}
	return func(v *Value) bool { return v != nil && v.typ == t && v.tag == idx }, nil
}

// CaseHandler returns a two-way dispatch on the named case: onMatch receives
// the instance's field values when it holds the case, otherwise is called with
// no arguments.
func (t *Type) CaseHandler(caseName string) (func(v *Value, onMatch, otherwise Handler) (any, error), error) {
	idx, ok := t.schema.Index(caseName)
	if !ok {
		return nil, t.unknownCase(caseName)
	}
	return func(v *Value, onMatch, otherwise Handler) (any, error) {
		if v != nil && v.typ == t && v.tag == idx {
			return v.dispatch(onMatch)
		}
		if otherwise.IsZero() {
			return nil, newIssue(handlerPath("otherwise"), CodeMissingHandler, "otherwise handler is not set")
		}
		if otherwise.arity != AnyArity && otherwise.arity != 0 {
			return nil, newIssue(handlerPath("otherwise"), CodeArity,
				fmt.Sprintf("otherwise handler takes %d argument(s), it is called with none", otherwise.arity))
		}
		return otherwise.call(nil)
	}, nil
}

// Accessors returns the cross-case field accessor names, sorted.
func (t *Type) Accessors() []string {
	out := make([]string, 0, len(t.accessors))
	for k := range t.accessors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clone declares an independent type with the same schema and a copy of the
// current operations. Instances of the clone are distinct from the original's.
func (t *Type) Clone(name string) (*Type, error) {
	c, err := NewType(name, t.schema.Cases()...)
	if err != nil {
		return nil, err
	}
	t.opsMu.RLock()
	for k, fn := range t.ops {
		c.ops[k] = fn
	}
	t.opsMu.RUnlock()
	return c, nil
}

// String renders the type as "Maybe = nothing | just(value)".
func (t *Type) String() string {
	if t.name == "" {
		return t.schema.String()
	}
	return t.name + " = " + t.schema.String()
}

func (t *Type) unknownCase(name string) error {
	return newIssue(casePath(name), CodeUnknownCase,
		fmt.Sprintf("%s has no case %s", t.displayName(), quote(name)), "name", name)
}

func (t *Type) notEnumeration(op string) error {
	return newIssue(methodPath(op), CodeNotEnumeration,
		t.displayName()+" has cases with fields", "method", op)
}

func (t *Type) displayName() string {
	if t.name == "" {
		return "anonymous type"
	}
	return t.name
}
