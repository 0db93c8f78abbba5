package dsl

import (
	"github.com/nkpart/adt"
	"github.com/nkpart/adt/i18n"
	"github.com/nkpart/adt/internal/tape"
)

// OperationRecorder captures per-case handlers inside an operation body.
type OperationRecorder struct {
	self *adt.Value
	tape tape.Tape[adt.Handler]
}

// Case records the handler for the named case.
func (r *OperationRecorder) Case(name string, h adt.Handler) *OperationRecorder {
	r.tape.Record(name, h)
	return r
}

// Self returns the instance the operation was invoked on.
func (r *OperationRecorder) Self() *adt.Value { return r.self }

// OperationBody declares the handlers of one operation call. args are the
// call-time arguments.
type OperationBody func(on *OperationRecorder, args ...any)

// Operation installs name on t. body runs on every invocation; the handlers it
// records are dispatched with the keyed fold, so a case without a handler
// fails only when an instance of that case is reached.
func Operation(t *adt.Type, name string, body OperationBody) error {
	if body == nil {
		return t.DefineOperation(name, nil)
	}
	return t.DefineOperation(name, func(self *adt.Value, args []any) (adt.Handlers, error) {
		on := &OperationRecorder{self: self}
		body(on, args...)
		return on.handlers(name)
	})
}

// MustOperation is Operation that panics on error.
func MustOperation(t *adt.Type, name string, body OperationBody) {
	if err := Operation(t, name, body); err != nil {
		panic(err)
	}
}

func (r *OperationRecorder) handlers(op string) (adt.Handlers, error) {
	if dups := r.tape.Duplicates(); len(dups) > 0 {
		var iss adt.Issues
		for _, d := range dups {
			it := adt.Root().Field("operations").Field(op).Field(d).
				Issue(adt.CodeDuplicateCase, i18n.T(adt.CodeDuplicateCase, nil), "name", d)
			it.Hint = "handler for '" + d + "' declared more than once"
			iss = adt.AppendIssues(iss, it)
		}
		return nil, iss
	}
	hs := make(adt.Handlers, r.tape.Len())
	for _, e := range r.tape.Entries() {
		hs[e.Name] = e.Payload
	}
	return hs, nil
}
