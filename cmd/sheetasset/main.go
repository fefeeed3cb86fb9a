// Package main provides the CLI entry point for sheetasset.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sheetasset/pkg/sheetasset"
)

var (
	sheet         string
	settingsSheet string
	outDir        string
	className     string
	scriptGUID    string
	dryRun        bool
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetasset [input.xlsx]",
		Short: "Compile a spreadsheet table into an asset document and script",
		Long: `sheetasset reads one sheet of an Excel workbook (row 1 = field names,
row 2 = declared types, remaining rows = data) and generates a Unity-style
.asset document plus the matching ScriptableObject C# declaration.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Data sheet name (default: first sheet)")
	rootCmd.Flags().StringVar(&settingsSheet, "settings-sheet", sheetasset.DefaultSettingsSheet, "Settings sheet name")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: alongside the workbook)")
	rootCmd.Flags().StringVar(&className, "class", "", "Override the output_class setting")
	rootCmd.Flags().StringVar(&scriptGUID, "guid", "", "Override the script_guid setting")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print artifacts to stdout instead of writing files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := sheetasset.Options{
		Sheet:         sheet,
		SettingsSheet: settingsSheet,
		ClassName:     className,
		ScriptGUID:    scriptGUID,
		Logger:        logger,
	}

	result, err := sheetasset.Compile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}

	if dryRun {
		for _, a := range result.Artifacts {
			fmt.Printf("==> %s\n%s", a.FileName, a.Content)
		}
		return nil
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	if err := result.Commit(dir); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	for _, a := range result.Artifacts {
		logger.Info("wrote artifact", "file", filepath.Join(dir, a.FileName))
	}
	return nil
}
