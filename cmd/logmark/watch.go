package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avolkov/logmark/internal/convert"
	"github.com/avolkov/logmark/internal/locale"
	"github.com/avolkov/logmark/internal/logfile"
	"github.com/avolkov/logmark/internal/watch"
	"github.com/avolkov/logmark/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and convert new chat logs automatically",
	Long: `Watch performs an initial scan of the input directory, then monitors it
for new or changed JSON exports and converts each one after it has been
quiet for the quiescence interval. Conversions run one at a time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("out", defaultOutputDir, "output directory for Markdown documents")
	watchCmd.Flags().Bool("overwrite", false, "overwrite existing output files")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	inputDir := defaultInputDir
	if len(args) == 1 {
		inputDir = args[0]
	}

	ensureConfigFile()
	cfg := loadConvertConfig()
	loc := loadLocale(cfg.Language)
	wcfg := types.WatchConfig{Quiescence: viper.GetDuration("watch.quiescence")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nWatch mode stopped.")
		cancel()
	}()

	// Convert whatever already sits in the directory before watching.
	fmt.Println("Performing initial scan of the directory...")
	initial, err := logfile.Discover(inputDir, false)
	if err != nil {
		return err
	}
	if len(initial) > 0 {
		printSummary(convert.ConvertBatch(initial, outDir, overwrite, cfg, loc, os.Stdout))
	} else {
		fmt.Println("No initial files to process.")
	}

	fmt.Printf("\nWatching folder: %q\n", inputDir)
	fmt.Printf("Saving output to: %q\n", outDir)
	fmt.Printf("Overwrite existing files: %t\n", overwrite)
	fmt.Println("(Press Ctrl+C to stop watching)")

	w, err := watch.New(inputDir, wcfg.Quiescence, func(path string) {
		handleWatchEvent(path, outDir, overwrite, cfg, loc)
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// handleWatchEvent converts one quiesced file. The watcher calls it from
// a single goroutine, so conversions never race on the same input.
func handleWatchEvent(path string, outDir string, overwrite bool, cfg types.ConvertConfig, loc locale.Table) {
	// The generated config file lives beside the input in some setups;
	// never feed it back into the converter.
	if filepath.Base(path) == configFileName {
		return
	}
	if !logfile.IsLog(path) {
		return
	}

	fmt.Printf("\n[%s] Detected valid file %q. Processing...\n",
		time.Now().Format("15:04:05"), filepath.Base(path))
	printSummary(convert.ConvertBatch([]string{path}, outDir, overwrite, cfg, loc, os.Stdout))
}
