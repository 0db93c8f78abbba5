package adt

import (
	"regexp"
	"strings"
)

// CaseDef declares one case: its name and its ordered field names.
type CaseDef struct {
	Name   string
	Fields []string
}

// Arity returns the number of declared fields.
func (c CaseDef) Arity() int { return len(c.Fields) }

func (c CaseDef) clone() CaseDef {
	return CaseDef{Name: c.Name, Fields: append([]string(nil), c.Fields...)}
}

// Schema is the frozen, ordered list of cases of a generated type.
// Declaration order fixes each case's index and the positional fold order.
type Schema struct {
	cases  []CaseDef
	index  map[string]int
	isEnum bool
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether s can be used as a case, field or operation name.
func IsIdentifier(s string) bool { return identRe.MatchString(s) }

// NewSchema validates the declarations and freezes them into a Schema.
// All problems are reported together.
func NewSchema(cases ...CaseDef) (*Schema, error) {
	var iss Issues
	if len(cases) == 0 {
		iss = AppendIssues(iss, newIssue(Root().Field("cases"), CodeInvalidName, "at least one case is required")...)
		return nil, iss
	}
	s := &Schema{cases: make([]CaseDef, 0, len(cases)), index: make(map[string]int, len(cases)), isEnum: true}
	for _, c := range cases {
		p := casePath(c.Name)
		if !IsIdentifier(c.Name) {
			iss = AppendIssues(iss, newIssue(Root().Field("cases").Index(len(s.cases)), CodeInvalidName, "case name "+quote(c.Name)+" is not an identifier", "name", c.Name)...)
		}
		if _, dup := s.index[c.Name]; dup {
			iss = AppendIssues(iss, newIssue(p, CodeDuplicateCase, "case "+quote(c.Name)+" declared more than once", "name", c.Name)...)
			continue
		}
		seen := make(map[string]struct{}, len(c.Fields))
		for i, f := range c.Fields {
			fp := p.Field("fields").Index(i)
			if !IsIdentifier(f) {
				iss = AppendIssues(iss, newIssue(fp, CodeInvalidName, "field name "+quote(f)+" is not an identifier", "name", f)...)
			}
			if _, dup := seen[f]; dup {
				iss = AppendIssues(iss, newIssue(fp, CodeDuplicateField, "field "+quote(f)+" declared more than once in case "+quote(c.Name), "name", f)...)
			}
			seen[f] = struct{}{}
		}
		s.index[c.Name] = len(s.cases)
		s.cases = append(s.cases, c.clone())
		if len(c.Fields) > 0 {
			s.isEnum = false
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

// Len returns the number of cases.
func (s *Schema) Len() int { return len(s.cases) }

// Case returns the case at 0-based position i.
func (s *Schema) Case(i int) CaseDef { return s.cases[i].clone() }

// Cases returns a copy of all cases in declaration order.
func (s *Schema) Cases() []CaseDef {
	out := make([]CaseDef, len(s.cases))
	for i, c := range s.cases {
		out[i] = c.clone()
	}
	return out
}

// Names returns the case names in declaration order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.cases))
	for i, c := range s.cases {
		out[i] = c.Name
	}
	return out
}

// Index returns the 0-based position of the named case.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Arity returns the arity of the case at 0-based position i.
func (s *Schema) Arity(i int) int { return len(s.cases[i].Fields) }

// IsEnumeration reports whether every case is nullary.
func (s *Schema) IsEnumeration() bool { return s.isEnum }

// String renders the schema as "nothing | just(value)".
func (s *Schema) String() string {
	parts := make([]string, len(s.cases))
	for i, c := range s.cases {
		if len(c.Fields) == 0 {
			parts[i] = c.Name
			continue
		}
		parts[i] = c.Name + "(" + strings.Join(c.Fields, ", ") + ")"
	}
	return strings.Join(parts, " | ")
}

func quote(s string) string { return "'" + s + "'" }
