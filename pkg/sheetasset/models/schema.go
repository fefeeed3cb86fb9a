// Package models defines data structures for the sheet-to-asset compiler.
package models

import "strings"

// TypeTag is the declared semantic type of a column. It drives both the
// serialized zero default and the declared member type in the generated script.
type TypeTag string

const (
	// TypeString is plain or rich text.
	TypeString TypeTag = "string"
	// TypeBool serializes as 0 or 1.
	TypeBool TypeTag = "bool"
	// TypeInt is a whole number.
	TypeInt TypeTag = "int"
	// TypeFloat is a decimal number.
	TypeFloat TypeTag = "float"
	// TypeVector3 is a comma-separated triple of numbers.
	TypeVector3 TypeTag = "vector3"
)

// ParseTypeTag parses a declared type cell. Matching is case-insensitive and
// unknown tags fall back to TypeString so generation always succeeds.
func ParseTypeTag(s string) TypeTag {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool", "boolean":
		return TypeBool
	case "int", "integer":
		return TypeInt
	case "float", "double":
		return TypeFloat
	case "vector3":
		return TypeVector3
	default:
		return TypeString
	}
}

// Field is one column of the table header.
type Field struct {
	// Name is the field name from header row 0. Columns with an empty name
	// are ignored entirely: never formatted, never declared.
	Name string
	// Type is the declared type from header row 1.
	Type TypeTag
}

// Schema is the ordered column layout, index-aligned to the table columns.
type Schema struct {
	Fields []Field
}
