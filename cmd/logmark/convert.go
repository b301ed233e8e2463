package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/logmark/internal/convert"
	"github.com/avolkov/logmark/internal/logfile"
)

var convertCmd = &cobra.Command{
	Use:   "convert [paths...]",
	Short: "Convert chat-log JSON exports to Markdown",
	Long: `Convert transforms AI Studio chat-log exports into Markdown documents.
Each path may be a file, a directory, or a glob pattern; without arguments
the input/ directory is scanned. Embedded images are decoded into an
assets/ directory next to the output documents.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("out", defaultOutputDir, "output directory for Markdown documents")
	convertCmd.Flags().Bool("overwrite", false, "overwrite existing output files")
	convertCmd.Flags().BoolP("recursive", "r", false, "scan directories recursively")
	convertCmd.Flags().Bool("fast", false, "skip the Google Drive pre-scan used for the filename indicator")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	recursive, _ := cmd.Flags().GetBool("recursive")
	fast, _ := cmd.Flags().GetBool("fast")

	ensureConfigFile()

	cfg := loadConvertConfig()
	if fast {
		cfg.EnableDriveIndicator = false
	}
	loc := loadLocale(cfg.Language)

	if len(args) == 0 {
		args = []string{defaultInputDir}
	}

	var inputs []string
	for _, arg := range args {
		found, err := logfile.Discover(arg, recursive)
		if err != nil {
			return err
		}
		inputs = append(inputs, found...)
	}
	if len(inputs) == 0 {
		fmt.Fprintf(os.Stderr, "No valid JSON files found in %v.\n", args)
		return nil
	}

	fmt.Printf("Found %d valid JSON files to process. Output will be saved to %q.\n", len(inputs), outDir)

	result := convert.ConvertBatch(inputs, outDir, overwrite, cfg, loc, os.Stdout)
	printSummary(result)

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
