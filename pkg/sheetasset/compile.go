package sheetasset

import (
	"fmt"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"

	"sheetasset/pkg/sheetasset/emit"
	"sheetasset/pkg/sheetasset/models"
	"sheetasset/pkg/sheetasset/output"
	"sheetasset/pkg/sheetasset/parser"
)

// Result holds the artifacts of one compile pass, fully assembled in memory.
// Nothing has been written yet: Commit is the separate, retryable write step.
type Result struct {
	// BaseName is the resolved output type base name.
	BaseName string
	// Artifacts are the generated files, asset document first.
	Artifacts []models.Artifact
}

// Compile runs one synchronous pass over a workbook snapshot and builds the
// asset document and the script declaration. It holds no state between
// invocations; running it twice on an unchanged workbook produces identical
// results.
func Compile(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log := opts.logger()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	schema, err := parser.ReadSchema(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	data := parser.ReadRows(f, sheetName, rows, schema, log)

	settings := parser.ReadSettings(f, opts.settingsSheet(), log)
	if opts.ScriptGUID != "" {
		settings.ScriptGUID = opts.ScriptGUID
	}
	if opts.ClassName != "" {
		settings.ClassName = opts.ClassName
	}

	doc := emit.BuildDocument(schema, data, settings.ScriptGUID, settings.ClassName)
	script := emit.BuildScript(schema, settings.ClassName)

	result := &Result{
		BaseName: settings.ClassName,
		Artifacts: []models.Artifact{
			{FileName: settings.ClassName + ".asset", Content: doc},
			{FileName: emit.ScriptFileName(settings.ClassName), Content: script},
		},
	}
	for _, a := range result.Artifacts {
		log.Debug("artifact built", "file", a.FileName, "bytes", len(a.Content))
	}
	return result, nil
}

// Commit writes every artifact into dir, overwriting files already present.
// On failure the error identifies the artifact; the result keeps all built
// text so the caller can retry without recompiling.
func (r *Result) Commit(dir string) error {
	for _, a := range r.Artifacts {
		if err := output.Commit(dir, a); err != nil {
			return err
		}
	}
	return nil
}
