package emit

import (
	"strings"

	"sheetasset/pkg/sheetasset/models"
)

// recordIndent separates the fields of one record: newline plus one level of
// indentation under the record marker.
const recordIndent = "\n    "

// ProjectRow assembles one serialized record from a data row. It returns
// ok=false for rows that do not participate in output (comment rows and rows
// with no data beyond the first column). Columns with an empty field name or
// beyond the row's length are skipped. String-typed cells with a styled
// representation go through the rich text encoder, everything else through
// the value formatter.
func ProjectRow(row models.Row, schema models.Schema) (record string, ok bool) {
	if !row.IsContent() {
		return "", false
	}

	var pairs []string
	for i, f := range schema.Fields {
		if f.Name == "" || i >= len(row.Cells) {
			continue
		}
		var lit string
		if styled := row.Styled[i]; f.Type == models.TypeString && len(styled) > 0 {
			lit = EncodeStyledCell(styled)
		} else {
			lit = Format(row.Cells[i], f.Type)
		}
		pairs = append(pairs, f.Name+": "+lit)
	}
	if len(pairs) == 0 {
		return "", false
	}
	return strings.Join(pairs, recordIndent), true
}
