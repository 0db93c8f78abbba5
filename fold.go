package adt

import (
	"fmt"
	"sort"
)

// Fold dispatches to the handler at the instance's case position. Exactly one
// handler per case must be supplied, in declaration order.
func (v *Value) Fold(hs ...Handler) (any, error) {
	n := v.typ.schema.Len()
	if len(hs) != n {
		return nil, newIssue(Root().Field("handlers"), CodeArity,
			fmt.Sprintf("fold takes %d handler(s), one per case, got %d", n, len(hs)),
			"want", n, "got", len(hs))
	}
	return v.dispatch(hs[v.tag])
}

// Match dispatches to the handler keyed by the instance's case name. Keys that
// name no case are rejected; a missing handler is reported only when the
// instance holds that case.
func (v *Value) Match(hs Handlers) (any, error) {
	var unknown []string
	for k := range hs {
		if _, ok := v.typ.schema.Index(k); !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		var iss Issues
		for _, k := range unknown {
			iss = AppendIssues(iss, newIssue(handlerPath(k), CodeUnknownCase,
				fmt.Sprintf("%s has no case %s", v.typ.displayName(), quote(k)), "name", k)...)
		}
		return nil, iss
	}
	h, ok := hs[v.CaseName()]
	if !ok || h.IsZero() {
		return nil, v.missingHandler()
	}
	return v.dispatch(h)
}

// dispatch invokes h with the instance's field values.
func (v *Value) dispatch(h Handler) (any, error) {
	if h.IsZero() {
		return nil, v.missingHandler()
	}
	if h.arity != AnyArity && h.arity != len(v.fields) {
		name := v.CaseName()
		return nil, newIssue(handlerPath(name), CodeArity,
			fmt.Sprintf("handler for %s takes %d argument(s), case has %d field(s)", quote(name), h.arity, len(v.fields)),
			"want", len(v.fields), "got", h.arity)
	}
	return h.call(v.Fields())
}

func (v *Value) missingHandler() error {
	name := v.CaseName()
	return newIssue(handlerPath(name), CodeMissingHandler,
		"no handler for case "+quote(name), "name", name)
}

// FoldAs is Fold with the result asserted to R. A nil result yields R's zero
// value.
func FoldAs[R any](v *Value, hs ...Handler) (R, error) {
	return resultAs[R](v.Fold(hs...))
}

// MatchAs is Match with the result asserted to R. A nil result yields R's zero
// value.
func MatchAs[R any](v *Value, hs Handlers) (R, error) {
	return resultAs[R](v.Match(hs))
}

func resultAs[R any](res any, err error) (R, error) {
	var zero R
	if err != nil || res == nil {
		return zero, err
	}
	r, ok := res.(R)
	if !ok {
		return zero, newIssue(Root().Field("result"), CodeTypeMismatch,
			fmt.Sprintf("handler returned %T, want %T", res, zero))
	}
	return r, nil
}
