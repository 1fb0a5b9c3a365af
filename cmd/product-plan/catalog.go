// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/product-plan/internal/catalog"
	"github.com/pdiddy/product-plan/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the product catalog (store, search, export)",
	Long: `Catalog manages a local SQLite index of the product plan: the
description, each problem, each feature and each roadmap section. Use
subcommands to index the plan, query it, or export it.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Index the product plan into the catalog",
	Long: `Store loads the product plan and replaces the catalog contents with
its entries, indexed for full-text search.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, cfg, err := newLoader()
		if err != nil {
			return err
		}
		data, err := loader.Load()
		if err != nil {
			return err
		}

		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		_, err = store.Ingest(context.Background(), data, cmd.OutOrStdout())
		return err
	},
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query the catalog with full-text search and filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		opts := queryOptsFromFlags(cmd, args)
		if opts.IsEmpty() {
			return fmt.Errorf("query or filter required: provide a search query or --kind")
		}
		entries, err := store.Search(context.Background(), opts)
		if err != nil {
			return err
		}
		if cfg.Format == types.OutputJSON {
			return writeRecord(cmd.OutOrStdout(), cfg.Format, entries)
		}
		return formatSearchOutput(cmd.OutOrStdout(), entries)
	},
}

func formatSearchOutput(w io.Writer, entries []catalog.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-11s  %-24s  %s\n", "Rank", "Kind", "Ref", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for i, e := range entries {
		ref := e.Ref
		if len(ref) > 24 {
			ref = ref[:21] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-11s  %-24s  %s\n", i+1, e.Kind, ref, e.Title)
	}
	fmt.Fprintf(w, "\n%d results\n", len(entries))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog (or a filtered subset) to export.yaml or
export.json in the catalog directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		opts := queryOptsFromFlags(cmd, args)
		var path string
		switch cfg.Format {
		case types.OutputJSON:
			path, err = store.ExportJSON(context.Background(), opts)
		default:
			path, err = store.ExportYAML(context.Background(), opts)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}
	kind, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Kind:       catalog.EntryKind(kind),
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "catalog", "directory holding catalog.db and export files")
	catalogCmd.PersistentFlags().Int("max-results", 20, "default maximum number of search results")
	viper.BindPFlag("catalog.dir", catalogCmd.PersistentFlags().Lookup("catalog-dir"))
	viper.BindPFlag("catalog.max_results", catalogCmd.PersistentFlags().Lookup("max-results"))

	for _, c := range []*cobra.Command{catalogSearchCmd, catalogExportCmd} {
		c.Flags().String("query", "", "full-text search query")
		c.Flags().String("kind", "", "filter by entry kind: description, problem, feature, section")
		c.Flags().Int("limit", 0, "maximum results (0 = use default)")
	}

	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
