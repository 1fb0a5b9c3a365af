// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/product-plan/internal/product"
	"github.com/pdiddy/product-plan/pkg/types"
)

// --- overview ---

var overviewCmd = &cobra.Command{
	Use:   "overview [file]",
	Short: "Parse product-overview.md",
	Long: `Overview parses the product overview document and prints its name,
description, problems and features. With no argument it reads
<product-dir>/product-overview.md; "-" reads standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOverview,
}

func runOverview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, err := readDocument(cfg.Plan, product.OverviewDoc, args)
	if err != nil {
		return err
	}
	overview := product.ParseOverview(text)
	if overview == nil {
		return fmt.Errorf("product overview not defined")
	}
	return writeRecord(cmd.OutOrStdout(), cfg.Format, overview)
}

// --- roadmap ---

var roadmapCmd = &cobra.Command{
	Use:   "roadmap [file]",
	Short: "Parse product-roadmap.md",
	Long: `Roadmap parses the numbered "### N. Title" sections of the roadmap
document and prints them ordered by number. With no argument it reads
<product-dir>/product-roadmap.md; "-" reads standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoadmap,
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, err := readDocument(cfg.Plan, product.RoadmapDoc, args)
	if err != nil {
		return err
	}
	roadmap := product.ParseRoadmap(text)
	if roadmap == nil {
		return fmt.Errorf("product roadmap not defined")
	}
	return writeRecord(cmd.OutOrStdout(), cfg.Format, roadmap)
}

// --- load ---

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the whole product plan",
	Long: `Load reads every document of the product plan and prints the
aggregate record. Missing or unparseable documents appear as null.`,
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
		return writeRecord(cmd.OutOrStdout(), cfg.Format, data)
	},
}

// readDocument returns the text of the file named in args, standard input
// for "-", or the default document of the plan directory. A missing default
// document reads as empty.
func readDocument(plan types.PlanConfig, name string, args []string) (string, error) {
	if len(args) == 1 {
		if args[0] == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return "", fmt.Errorf("reading stdin: %w", err)
			}
			return string(data), nil
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	dir := plan.ProductDir
	if dir == "" {
		dir = "product"
	}
	data, err := product.DirSource{Dir: dir}.ReadDocument(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(loadCmd)
}
