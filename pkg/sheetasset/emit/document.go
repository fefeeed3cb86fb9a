package emit

import (
	"fmt"
	"strings"

	"sheetasset/pkg/sheetasset/models"
)

// documentHeader is the fixed asset document preamble. The layout is consumed
// verbatim by the host application, so it is reproduced byte for byte; only
// the script GUID and the document name vary.
const documentHeader = `%%YAML 1.1
%%TAG !u! tag:unity3d.com,2011:
--- !u!114 &11400000
MonoBehaviour:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: 0}
  m_Enabled: 1
  m_EditorHideFlags: 0
  m_Script: {fileID: 11500000, guid: %s, type: 3}
  m_Name: %s
  m_EditorClassIdentifier:
`

// BuildDocument assembles the complete asset document: the fixed header
// followed by one record per content row, in source table order.
func BuildDocument(schema models.Schema, rows []models.Row, scriptGUID, name string) string {
	var records []string
	for _, row := range rows {
		if rec, ok := ProjectRow(row, schema); ok {
			records = append(records, rec)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, documentHeader, scriptGUID, name)
	if len(records) == 0 {
		b.WriteString("  items: []\n")
		return b.String()
	}
	b.WriteString("  items:\n")
	for _, rec := range records {
		b.WriteString("  - ")
		b.WriteString(rec)
		b.WriteString("\n")
	}
	return b.String()
}
