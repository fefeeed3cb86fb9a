package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sheetasset/pkg/sheetasset/models"
)

var testSchema = models.Schema{Fields: []models.Field{
	{Name: "ID", Type: models.TypeString},
	{Name: "Value", Type: models.TypeInt},
}}

func TestProjectRow(t *testing.T) {
	row := models.Row{Cells: []string{"r1", "5"}}
	rec, ok := ProjectRow(row, testSchema)
	assert.True(t, ok)
	assert.Equal(t, "ID: \"r1\"\n    Value: 5", rec)
}

func TestProjectRowSkipsCommentRow(t *testing.T) {
	row := models.Row{Cells: []string{"// note", "5"}}
	_, ok := ProjectRow(row, testSchema)
	assert.False(t, ok)
}

func TestProjectRowSkipsEmptyRow(t *testing.T) {
	for _, cells := range [][]string{
		{"r1"},
		{"r1", ""},
		{},
		nil,
	} {
		_, ok := ProjectRow(models.Row{Cells: cells}, testSchema)
		assert.False(t, ok, "cells %v must be skipped", cells)
	}
}

func TestProjectRowSkipsUnnamedColumns(t *testing.T) {
	schema := models.Schema{Fields: []models.Field{
		{Name: "ID", Type: models.TypeString},
		{Name: "", Type: models.TypeInt},
		{Name: "Flag", Type: models.TypeBool},
	}}
	row := models.Row{Cells: []string{"r1", "99", "true"}}
	rec, ok := ProjectRow(row, schema)
	assert.True(t, ok)
	assert.Equal(t, "ID: \"r1\"\n    Flag: 1", rec)
}

func TestProjectRowOmitsColumnsBeyondRowLength(t *testing.T) {
	schema := models.Schema{Fields: []models.Field{
		{Name: "ID", Type: models.TypeString},
		{Name: "A", Type: models.TypeInt},
		{Name: "B", Type: models.TypeInt},
	}}
	row := models.Row{Cells: []string{"r1", "7"}}
	rec, ok := ProjectRow(row, schema)
	assert.True(t, ok)
	assert.Equal(t, "ID: \"r1\"\n    A: 7", rec)
}

func TestProjectRowUsesEncoderForStyledCells(t *testing.T) {
	row := models.Row{
		Cells: []string{"Hi", "5"},
		Styled: map[int][]models.StyledChar{
			0: {
				{Ch: 'H', Style: models.StyleSet{Bold: true}},
				{Ch: 'i'},
			},
		},
	}
	rec, ok := ProjectRow(row, testSchema)
	assert.True(t, ok)
	assert.Equal(t, "ID: \"<b>H</b>i\"\n    Value: 5", rec)
}

func TestProjectRowIgnoresStylingOnNonStringColumns(t *testing.T) {
	row := models.Row{
		Cells: []string{"r1", "5"},
		Styled: map[int][]models.StyledChar{
			1: {{Ch: '5', Style: models.StyleSet{Bold: true}}},
		},
	}
	rec, ok := ProjectRow(row, testSchema)
	assert.True(t, ok)
	assert.Equal(t, "ID: \"r1\"\n    Value: 5", rec)
}
