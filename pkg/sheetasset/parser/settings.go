package parser

import (
	"log/slog"

	"github.com/xuri/excelize/v2"

	"sheetasset/pkg/sheetasset/models"
)

// Fixed keys looked up on the settings sheet.
const (
	// KeyScriptGUID names the script reference the asset document points at.
	KeyScriptGUID = "script_guid"
	// KeyOutputClass names the base type name for the generated artifacts.
	KeyOutputClass = "output_class"
)

// Placeholder values substituted when the settings sheet or a key is absent.
const (
	// PlaceholderScriptGUID is an all-zero identifier the host application
	// flags as unresolved.
	PlaceholderScriptGUID = "00000000000000000000000000000000"
	// PlaceholderClassName is the fallback base type name.
	PlaceholderClassName = "SheetData"
)

// ReadSettings reads the key/value settings sheet. A missing sheet or key is
// recovered with a placeholder and a diagnostic; generation never fails on
// absent settings.
func ReadSettings(f *excelize.File, sheetName string, log *slog.Logger) models.Settings {
	settings := models.Settings{
		ScriptGUID: PlaceholderScriptGUID,
		ClassName:  PlaceholderClassName,
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Warn("settings sheet not found, using placeholders", "sheet", sheetName, "error", err)
		return settings
	}

	values := make(map[string]string)
	for _, row := range rows {
		if len(row) >= 2 && row[0] != "" {
			values[row[0]] = row[1]
		}
	}

	if v, ok := values[KeyScriptGUID]; ok && v != "" {
		settings.ScriptGUID = v
	} else {
		log.Warn("setting missing, using placeholder", "key", KeyScriptGUID)
	}
	if v, ok := values[KeyOutputClass]; ok && v != "" {
		settings.ClassName = v
	} else {
		log.Warn("setting missing, using placeholder", "key", KeyOutputClass)
	}
	return settings
}
