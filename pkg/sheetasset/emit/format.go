// Package emit turns schema and row data into artifact text.
package emit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"sheetasset/pkg/sheetasset/models"
)

// typeInfo carries everything derived from a TypeTag. Keeping the zero
// literal and the declared type in one table keeps the value formatter and
// the script emitter in lockstep: a type added to one is added to both.
type typeInfo struct {
	// zero is the serialized literal for a missing or empty value.
	zero string
	// decl is the member type in the generated script.
	decl string
}

var typeTable = map[models.TypeTag]typeInfo{
	models.TypeString:  {zero: `""`, decl: "string"},
	models.TypeBool:    {zero: "0", decl: "bool"},
	models.TypeInt:     {zero: "0", decl: "int"},
	models.TypeFloat:   {zero: "0", decl: "float"},
	models.TypeVector3: {zero: "{x: 0, y: 0, z: 0}", decl: "Vector3"},
}

// Format maps a raw cell value and its declared type to a serialized literal.
// Unparsable input never fails: it degrades to the type's zero literal so
// generation always succeeds.
func Format(raw string, tag models.TypeTag) string {
	info, ok := typeTable[tag]
	if !ok {
		info = typeTable[models.TypeString]
		tag = models.TypeString
	}
	if raw == "" {
		return info.zero
	}

	switch tag {
	case models.TypeBool:
		if strings.EqualFold(raw, "true") || raw == "1" {
			return "1"
		}
		return "0"
	case models.TypeInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return "0"
		}
		return strconv.FormatInt(n, 10)
	case models.TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return "0"
		}
		return formatFloat(f)
	case models.TypeVector3:
		return formatVector3(raw)
	default:
		return quote(raw)
	}
}

// formatVector3 parses a comma-separated triple. Missing or unparsable
// components default to 0; the output is always the full 3-component form.
func formatVector3(raw string) string {
	var xyz [3]float64
	for i, part := range strings.Split(raw, ",") {
		if i >= len(xyz) {
			break
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(part), 64); err == nil {
			xyz[i] = f
		}
	}
	return fmt.Sprintf("{x: %s, y: %s, z: %s}",
		formatFloat(xyz[0]), formatFloat(xyz[1]), formatFloat(xyz[2]))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quote escapes a string and wraps it in double quotes.
func quote(s string) string {
	return `"` + escape(s) + `"`
}

// escape applies the literal escaping rule shared by the plain string path
// and the rich text encoder: code points at or above 0x80 become 4-hex-digit
// \u escapes (UTF-16 units, so astral characters become surrogate pairs),
// double quotes become \", and raw line breaks become the two-character \n
// and \r sequences. Everything else, backslashes included, passes through
// unchanged so escape sequences already present in encoder output survive.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x80:
			b.WriteRune(r)
		default:
			for _, u := range utf16.Encode([]rune{r}) {
				fmt.Fprintf(&b, `\u%04x`, u)
			}
		}
	}
	return b.String()
}
