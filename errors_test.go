package adt_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nkpart/adt"
	"github.com/nkpart/adt/i18n"
)

func TestIssues_ErrorsIsBySentinel(t *testing.T) {
	_, err := newMaybe(t).Construct("just")
	if !errors.Is(err, adt.ErrArity) {
		t.Fatalf("errors.Is(ErrArity) = false for %v", err)
	}
	if errors.Is(err, adt.ErrMissingHandler) {
		t.Fatalf("errors.Is matched the wrong sentinel")
	}
	wrapped := fmt.Errorf("declaring: %w", err)
	if !errors.Is(wrapped, adt.ErrArity) {
		t.Fatalf("sentinel match must survive wrapping")
	}
	iss, ok := adt.AsIssues(wrapped)
	if !ok || len(iss) != 1 {
		t.Fatalf("AsIssues = %v, %v", iss, ok)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := adt.Issues{
		{Path: "/a", Code: adt.CodeArity, Hint: "takes 1"},
		{Path: "/b", Code: adt.CodeUnknownCase},
		{Path: "/c", Code: adt.CodeUnknownCase},
		{Path: "/d", Code: adt.CodeUnknownCase},
	}
	got := iss.Error()
	if !strings.HasPrefix(got, "arity at /a (takes 1); unknown_case at /b") {
		t.Fatalf("Error = %q", got)
	}
	if !strings.HasSuffix(got, "(total 4)") {
		t.Fatalf("Error should report the total, got %q", got)
	}
	if (adt.Issues{}).Error() != "" {
		t.Fatalf("empty Issues should render empty")
	}
}

func TestIssues_UnwrapCauses(t *testing.T) {
	cause := errors.New("cause")
	iss := adt.Issues{{Code: adt.CodeParseError, Cause: cause}}
	if !errors.Is(iss, cause) {
		t.Fatalf("causes must be reachable through errors.Is")
	}
}

func TestIssues_LocalizedMessage(t *testing.T) {
	defer i18n.SetLanguage("en")
	_, err := newMaybe(t).Construct("nope")
	iss, _ := adt.AsIssues(err)
	if iss[0].Message == "" || iss[0].Message == adt.CodeUnknownCase {
		t.Fatalf("message should be translated, got %q", iss[0].Message)
	}
	en := iss[0].Message

	i18n.SetLanguage("ja")
	_, err = newMaybe(t).Construct("nope")
	iss, _ = adt.AsIssues(err)
	if iss[0].Message == en {
		t.Fatalf("ja message should differ from en, got %q", iss[0].Message)
	}
}

func TestPathRef_Escaping(t *testing.T) {
	p := adt.Root().Field("cases").Field("a/b~c").Index(2)
	if got := p.Pointer(); got != "/cases/a~1b~0c/2" {
		t.Fatalf("Pointer = %s", got)
	}
	if got := adt.At("/cases/just").Field("fields").Pointer(); got != "/cases/just/fields" {
		t.Fatalf("At = %s", got)
	}
	it := adt.Root().Issue(adt.CodeArity, "msg", "want", 1, "got", 2)
	if it.Path != "/" || it.Params["want"] != 1 || it.Params["got"] != 2 {
		t.Fatalf("Issue = %+v", it)
	}
}
