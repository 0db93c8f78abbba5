package dsl

import (
	"github.com/nkpart/adt"
)

// TypeBuilder declares a type case by case.
type TypeBuilder struct {
	name string
	rec  CaseRecorder
}

// New creates a chained type builder.
func New(name string) *TypeBuilder {
	return &TypeBuilder{name: name}
}

// Case appends a case declaration.
func (b *TypeBuilder) Case(name string, fields ...string) *TypeBuilder {
	b.rec.Case(name, fields...)
	return b
}

// Build validates the declarations and returns the type.
func (b *TypeBuilder) Build() (*adt.Type, error) {
	return adt.NewType(b.name, b.rec.defs()...)
}

// MustBuild is Build that panics on error.
func (b *TypeBuilder) MustBuild() *adt.Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
