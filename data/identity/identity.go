// Package identity provides the single-case wrapper wrap(value) with a get
// operation.
package identity

import (
	"github.com/nkpart/adt"
	"github.com/nkpart/adt/data"
	"github.com/nkpart/adt/dsl"
)

// Type is the Identity type. Instances respond to get.
var Type = declare()

func declare() *adt.Type {
	t := dsl.MustDefine("Identity", func(c *dsl.CaseRecorder) {
		c.Case("wrap", "value")
	})
	dsl.MustOperation(t, "get", func(on *dsl.OperationRecorder, args ...any) {
		on.Case("wrap", adt.Fn1(func(v any) any { return v }))
	})
	return t
}

// Wrap builds an instance.
func Wrap(v any) *adt.Value { return Type.MustConstruct("wrap", v) }

// Get unwraps an instance.
func Get(v *adt.Value) (any, error) {
	if err := data.Check(Type, v); err != nil {
		return nil, err
	}
	return v.Invoke("get")
}
