package adt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nkpart/adt/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDuplicateCase   = "duplicate_case"
	CodeArity           = "arity"
	CodeMissingHandler  = "missing_handler"
	CodeIndexOutOfRange = "index_out_of_range"
	CodeUnknownCase     = "unknown_case"
	// Declaration problems
	CodeInvalidName    = "invalid_name"
	CodeDuplicateField = "duplicate_field"
	CodeMethodConflict = "method_conflict"
	// Use-site problems
	CodeNotEnumeration = "not_enumeration"
	CodeUnknownMethod  = "unknown_method"
	CodeUnknownField   = "unknown_field"
	CodeMissingField   = "missing_field"
	CodeTypeMismatch   = "type_mismatch"
	CodeParseError     = "parse_error"
)

// Issue represents a single engine error.
type Issue struct {
	Path    string // JSON Pointer-like location (for example: /cases/just/fields/0).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected counts, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"want":1, "got":2}).
	Params map[string]any
}

// Issues is a collection of engine errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_handler at /handlers/just (no handler for case)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue carries the code of a sentinel such as ErrArity.
func (iss Issues) Is(target error) bool {
	var ce codeError
	if !errors.As(target, &ce) {
		return false
	}
	for _, it := range iss {
		if it.Code == string(ce) {
			return true
		}
	}
	return false
}

// Unwrap exposes the causes attached to the issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// codeError is a sentinel matching Issues by code.
type codeError string

func (e codeError) Error() string { return "adt: " + string(e) }

// Sentinels for errors.Is.
var (
	ErrDuplicateCase   error = codeError(CodeDuplicateCase)
	ErrArity           error = codeError(CodeArity)
	ErrMissingHandler  error = codeError(CodeMissingHandler)
	ErrIndexOutOfRange error = codeError(CodeIndexOutOfRange)
	ErrUnknownCase     error = codeError(CodeUnknownCase)
	ErrInvalidName     error = codeError(CodeInvalidName)
	ErrDuplicateField  error = codeError(CodeDuplicateField)
	ErrMethodConflict  error = codeError(CodeMethodConflict)
	ErrNotEnumeration  error = codeError(CodeNotEnumeration)
	ErrUnknownMethod   error = codeError(CodeUnknownMethod)
	ErrUnknownField    error = codeError(CodeUnknownField)
	ErrMissingField    error = codeError(CodeMissingField)
	ErrTypeMismatch    error = codeError(CodeTypeMismatch)
	ErrParseError      error = codeError(CodeParseError)
)

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// newIssue builds a single-issue error with a localized message.
func newIssue(p PathRef, code, hint string, kv ...any) Issues {
	it := p.Issue(code, i18n.T(code, nil), kv...)
	it.Hint = hint
	return Issues{it}
}
