package emit

import (
	"fmt"
	"strings"

	"sheetasset/pkg/sheetasset/models"
)

// Fixed suffixes for the generated type names: <base>Table holds an ordered
// list of <base>Record items.
const (
	containerSuffix = "Table"
	itemSuffix      = "Record"
)

// ScriptFileName returns the artifact file name for the generated script.
func ScriptFileName(baseName string) string {
	return baseName + containerSuffix + ".cs"
}

// BuildScript emits the C# ScriptableObject declaration matching the table's
// columns. Member types come from the same table that drives the value
// formatter's zero defaults, so the two can never drift apart.
func BuildScript(schema models.Schema, baseName string) string {
	container := baseName + containerSuffix
	item := baseName + itemSuffix

	var b strings.Builder
	b.WriteString("using System;\n")
	b.WriteString("using System.Collections.Generic;\n")
	b.WriteString("using UnityEngine;\n\n")
	fmt.Fprintf(&b, "public class %s : ScriptableObject\n{\n", container)
	fmt.Fprintf(&b, "    public List<%s> items;\n}\n\n", item)
	b.WriteString("[Serializable]\n")
	fmt.Fprintf(&b, "public class %s\n{\n", item)
	for _, f := range schema.Fields {
		if f.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "    public %s %s;\n", declFor(f.Type), f.Name)
	}
	b.WriteString("}\n")
	return b.String()
}

// declFor maps a TypeTag to its declared member type. Unknown tags were
// already folded to TypeString by the parser, but fall back again here so a
// hand-built schema cannot produce an invalid declaration.
func declFor(tag models.TypeTag) string {
	if info, ok := typeTable[tag]; ok {
		return info.decl
	}
	return typeTable[models.TypeString].decl
}
