// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avolkov/logmark/internal/index"
	"github.com/avolkov/logmark/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the full-text index over converted documents",
	Long: `Index maintains a local SQLite database with FTS5 search over every
converted document. Use subcommands to (re)build the index or query it.`,
}

// --- store subcommand ---

var indexStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest converted Markdown documents into the index",
	Long: `Store scans the output directory for Markdown documents and ingests
them into the index. Documents unchanged since the previous run are
skipped.`,
	RunE: runIndexStore,
}

func runIndexStore(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d document(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var indexSearchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search converted documents with full-text queries",
	Long: `Search runs an FTS5 full-text query over the indexed documents and
prints ranked hits with contextual snippets.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndexSearch,
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	hits, err := store.Search(context.Background(), strings.Join(args, " "), maxResults)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for i, h := range hits {
		fmt.Printf("%d. %s\n   %s\n   %s\n", i+1, h.Title, h.Path, h.Snippet)
	}
	return nil
}

func openStore(cmd *cobra.Command) (*index.Store, error) {
	outDir, _ := cmd.Flags().GetString("out")
	cfg := types.IndexConfig{
		IndexDir:   viper.GetString("index.index_dir"),
		MaxResults: viper.GetInt("index.max_results"),
	}
	return index.NewStore(cfg, outDir)
}

func init() {
	indexStoreCmd.Flags().String("out", defaultOutputDir, "directory holding converted documents")
	indexSearchCmd.Flags().String("out", defaultOutputDir, "directory holding converted documents")
	indexSearchCmd.Flags().Int("max-results", 0, "maximum number of hits (0 uses the configured default)")
	indexSearchCmd.Flags().Bool("json", false, "output results as JSON")

	indexCmd.AddCommand(indexStoreCmd)
	indexCmd.AddCommand(indexSearchCmd)
	rootCmd.AddCommand(indexCmd)
}
