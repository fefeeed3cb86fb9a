// Package sheetasset compiles a typed spreadsheet table into a Unity-style
// asset document and a matching ScriptableObject script.
package sheetasset

import "log/slog"

// DefaultSettingsSheet is the sheet holding key/value compiler settings.
const DefaultSettingsSheet = "settings"

// Options configures a compile pass.
type Options struct {
	// Sheet is the data sheet to compile. Empty means the workbook's first
	// sheet.
	Sheet string
	// SettingsSheet is the key/value settings sheet name. Empty means
	// DefaultSettingsSheet.
	SettingsSheet string
	// ClassName overrides the output_class setting when non-empty.
	ClassName string
	// ScriptGUID overrides the script_guid setting when non-empty.
	ScriptGUID string
	// Logger receives diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default compile options.
func DefaultOptions() Options {
	return Options{
		SettingsSheet: DefaultSettingsSheet,
	}
}

// settingsSheet returns the effective settings sheet name.
func (o Options) settingsSheet() string {
	if o.SettingsSheet != "" {
		return o.SettingsSheet
	}
	return DefaultSettingsSheet
}

// logger returns the effective logger.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
