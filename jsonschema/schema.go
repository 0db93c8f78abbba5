// Package jsonschema holds the JSON Schema document model used to describe the
// wire form of generated types.
package jsonschema

// Draft is the $schema URI emitted on root documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	SchemaURI   string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Core
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Const any    `json:"const,omitempty" yaml:"const,omitempty"`
	Enum  []any  `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
}

// Object returns a closed object schema with the given required properties.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: false,
	}
}

// ConstString returns a string schema that admits exactly s.
func ConstString(s string) *Schema {
	return &Schema{Type: "string", Const: s}
}
