package schemadoc

import (
	"fmt"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/i18n"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// pos is a source position; the zero value means unknown.
type pos struct {
	line, col int
}

func newIssue(p adt.PathRef, code string, at pos, hint string, kv ...any) adt.Issue {
	if at.line > 0 {
		kv = append(kv, "line", at.line, "column", at.col)
		hint = fmt.Sprintf("line %d: %s", at.line, hint)
	}
	it := p.Issue(code, i18n.T(code, nil), kv...)
	it.Hint = hint
	return it
}

// rebase prefixes every issue path with the document path.
func rebase(err error, doc adt.PathRef, at pos) error {
	iss, ok := adt.AsIssues(err)
	if !ok {
		return err
	}
	out := make(adt.Issues, len(iss))
	for i, it := range iss {
		p := doc
		if it.Path != "/" {
			p = adt.At(doc.Pointer() + it.Path)
		}
		it.Path = p.Pointer()
		if at.line > 0 {
			if it.Params == nil {
				it.Params = map[string]any{}
			}
			it.Params["line"] = at.line
		}
		out[i] = it
	}
	return out
}
