// Package parser reads schema, rows, and settings from a workbook.
package parser

import (
	"errors"

	"sheetasset/pkg/sheetasset/models"
)

// ErrNoHeader indicates the sheet is missing the two header rows.
var ErrNoHeader = errors.New("sheet has no header rows")

// ReadSchema extracts the column schema from a sheet's raw rows: row 0 holds
// field names, row 1 declared types. Columns are kept index-aligned, so a
// column with an empty name still occupies its slot and is skipped later.
func ReadSchema(rows [][]string) (models.Schema, error) {
	if len(rows) < 2 {
		return models.Schema{}, ErrNoHeader
	}

	names, types := rows[0], rows[1]
	fields := make([]models.Field, len(names))
	for i, name := range names {
		declared := ""
		if i < len(types) {
			declared = types[i]
		}
		fields[i] = models.Field{
			Name: name,
			Type: models.ParseTypeTag(declared),
		}
	}
	return models.Schema{Fields: fields}, nil
}
