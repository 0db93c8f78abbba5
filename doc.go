// Package adt provides runtime-generated closed sum types (algebraic data
// types):
//
// - Types declared from ordered case declarations (case name plus ordered field names)
// - Immutable instances built by per-case constructors; nullary cases are singletons
// - Exhaustive folds, positional (Fold) and keyed by case name (Match)
// - Derived operations: case predicates, two-way case handlers, case metadata,
// cross-case field accessors, ordering, equality, rendering and, for
// enumerations, AllValues / FromIndex / ToInt
// - User operations defined per case and dispatched by the fold engine
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the declaration DSLs under dsl/, codecs under codec/, schema documents under
// schemadoc/ and the CLI under cmd/adt.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	maybe := adt.MustType("Maybe",
//		adt.CaseDef{Name: "nothing"},
//		adt.CaseDef{Name: "just", Fields: []string{"value"}},
//	)
//	v := maybe.MustConstruct("just", 5)
//	n, err := v.Fold(adt.Const(0), adt.Fn1(func(x any) any { return x }))
//	s := v.String() // #<Maybe just value:5>
package adt
