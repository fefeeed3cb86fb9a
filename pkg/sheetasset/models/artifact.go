package models

// Artifact is one generated output file, fully assembled in memory before any
// write happens.
type Artifact struct {
	// FileName is the name within the output container, no path.
	FileName string
	// Content is the complete file text.
	Content string
}

// Settings holds the externally supplied values read from the settings sheet,
// after placeholder substitution.
type Settings struct {
	// ScriptGUID is the identifier the asset document's script reference
	// resolves to.
	ScriptGUID string
	// ClassName is the base name for the generated container type and for
	// the artifact file names.
	ClassName string
}
