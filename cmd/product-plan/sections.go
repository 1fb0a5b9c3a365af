// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/product-plan/internal/markdown"
	"github.com/pdiddy/product-plan/internal/product"
	"github.com/pdiddy/product-plan/pkg/types"
)

// --- slug ---

var slugCmd = &cobra.Command{
	Use:   "slug <text>...",
	Short: "Print the slug of each argument",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range args {
			fmt.Fprintln(cmd.OutOrStdout(), markdown.Slugify(a))
		}
	},
}

// --- sections ---

var sectionsCmd = &cobra.Command{
	Use:   "sections [id]",
	Short: "List section directories or show one section spec",
	Long: `Sections lists the directories under <product-dir>/sections in
roadmap order, followed by any directories the roadmap does not mention.
Given an id, it prints that section's parsed spec.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	loader, cfg, err := newLoader()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		sec, err := loader.LoadSection(args[0])
		if err != nil {
			return err
		}
		if sec.Parsed == nil {
			return fmt.Errorf("section spec not defined: %s", sec.ID)
		}
		return writeRecord(cmd.OutOrStdout(), cfg.Format, sec)
	}

	data, err := loader.Load()
	if err != nil {
		return err
	}
	ids, err := loader.SectionIDs()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, id := range product.OrderSectionIDs(data.Roadmap, ids) {
		title := ""
		if sec, ok := product.FindSection(data.Roadmap, id); ok {
			title = sec.Title
		}
		fmt.Fprintf(out, "%-30s  %s\n", id, title)
	}
	return nil
}

// --- outline ---

var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Print the CommonMark heading outline of a markdown file",
	Long: `Outline parses a markdown file as CommonMark and prints every heading
indented by level. Headings inside fenced code blocks are not headings
here, which helps explain why the line-based parsers pick up or skip a
heading.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		entries := markdown.Outline(src)
		if cfg.Format == types.OutputJSON {
			return writeRecord(cmd.OutOrStdout(), cfg.Format, entries)
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%*s%s\n", (e.Level-1)*2, "", e.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(outlineCmd)
}
