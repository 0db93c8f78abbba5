// Package dsl provides declaration DSLs for adt types and operations.
//
// Overview
//   - Block form: Define(name, func(c *CaseRecorder){ ... }) records one case per c.Case call, in call order.
//   - Chained form: New(name).Case(...).Case(...).Build()/MustBuild().
//   - Anonymous types: Anonymous(block) declares a type without a name (and therefore without a fold synonym).
//   - Operations: Operation(t, name, body) runs body on every call and records one handler per on.Case call.
//
// Entry points
//   - Define/MustDefine/Anonymous: block form, returns *adt.Type.
//   - New(name): chained builder; end with Build()/MustBuild().
//   - Operation/MustOperation: install an operation backed by the keyed fold.
//
// File layout (roles)
//   - cases.go: CaseRecorder, Define/MustDefine/Anonymous.
//   - builder.go: chained TypeBuilder.
//   - operation.go: OperationRecorder and Operation/MustOperation.
//
// The recorders accept any identifier as a case name; there is no fixed
// vocabulary. Validation (identifiers, duplicate cases and fields) happens once
// the block returns, in adt.NewType, and all problems are reported together.
//
// Example (quickstart)
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/nkpart/adt"
//	    "github.com/nkpart/adt/dsl"
//	)
//
//	func main() {
//	    maybe := dsl.MustDefine("Maybe", func(c *dsl.CaseRecorder) {
//	        c.Case("nothing")
//	        c.Case("just", "value")
//	    })
//	    dsl.MustOperation(maybe, "or_value", func(on *dsl.OperationRecorder, args ...any) {
//	        on.Case("nothing", adt.Const(args[0]))
//	        on.Case("just", adt.Fn1(func(v any) any { return v }))
//	    })
//	    v := maybe.MustConstruct("nothing")
//	    out, _ := v.Invoke("or_value", 42)
//	    fmt.Println(out) // 42
//	}
package dsl
