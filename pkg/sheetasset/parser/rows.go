package parser

import (
	"log/slog"

	"github.com/xuri/excelize/v2"

	"sheetasset/pkg/sheetasset/models"
)

// headerRowCount is the number of header rows preceding the data rows.
const headerRowCount = 2

// ReadRows extracts the data rows of a sheet, attaching a per-character
// styled representation to string-typed cells that carry rich text. A failed
// style lookup never aborts the row: the cell falls back to its plain value
// and a diagnostic is logged.
func ReadRows(f *excelize.File, sheetName string, rows [][]string, schema models.Schema, log *slog.Logger) []models.Row {
	var result []models.Row
	for rowIdx := headerRowCount; rowIdx < len(rows); rowIdx++ {
		row := models.Row{
			Index: rowIdx,
			Cells: rows[rowIdx],
		}
		for colIdx, field := range schema.Fields {
			if field.Name == "" || field.Type != models.TypeString {
				continue
			}
			if colIdx >= len(row.Cells) || row.Cells[colIdx] == "" {
				continue
			}
			styled, err := readStyledCell(f, sheetName, rowIdx, colIdx)
			if err != nil {
				log.Warn("style lookup failed, using plain value",
					"sheet", sheetName, "row", rowIdx+1, "col", colIdx+1, "error", err)
				continue
			}
			if len(styled) > 0 {
				if row.Styled == nil {
					row.Styled = make(map[int][]models.StyledChar)
				}
				row.Styled[colIdx] = styled
			}
		}
		result = append(result, row)
	}
	return result
}

// readStyledCell queries a cell's rich text runs and expands them into a
// per-character sequence. Cells without rich text yield nil.
func readStyledCell(f *excelize.File, sheetName string, rowIdx, colIdx int) ([]models.StyledChar, error) {
	cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return nil, err
	}
	runs, err := f.GetCellRichText(sheetName, cellName)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}

	var chars []models.StyledChar
	for _, run := range runs {
		style := styleFromFont(run.Font)
		for _, r := range run.Text {
			chars = append(chars, models.StyledChar{Ch: r, Style: style})
		}
	}
	return chars, nil
}

// styleFromFont maps an excelize font to the effective StyleSet, suppressing
// attributes that match the document defaults.
func styleFromFont(font *excelize.Font) models.StyleSet {
	if font == nil {
		return models.StyleSet{}
	}
	return models.NewStyleSet(
		font.Bold, font.Italic, font.Strike,
		font.Color, font.Size, font.Family,
	)
}
