// Package schemadoc declares adt types from schema documents.
//
// A document declares one type:
//
//	name: Maybe
//	cases:
//	  - nothing
//	  - just: [value]
//
// YAML input may hold several documents separated by "---". JSON input is one
// such object or an array of them:
//
//	[{"name": "Maybe", "cases": ["nothing", {"just": ["value"]}]}]
//
// Readers are strict: duplicate keys, unknown keys and wrong node kinds are
// reported as Issues whose paths start with the document index
// ("/0/cases/1"). YAML issues also carry "line" and "column" params.
package schemadoc
