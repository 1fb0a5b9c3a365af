// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the product-plan CLI.
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/product-plan/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the product-plan CLI.
var rootCmd = &cobra.Command{
	Use:   "product-plan",
	Short: "Parse product overview and roadmap documents into structured records",
	Long: `product-plan reads the markdown documents of a product plan
(product-overview.md, product-roadmap.md, section specs, the shell spec,
the data model and design tokens) and turns them into typed records.

Records print as YAML or JSON. The catalog subcommands index a plan into
SQLite for full-text search, and serve exposes it over read-only HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("path", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./product-plan.yaml or ~/.config/product-plan/product-plan.yaml)")
	rootCmd.PersistentFlags().String("product-dir", "product", "directory holding the product plan documents")
	rootCmd.PersistentFlags().String("shell-components-dir", "src/shell/components", "directory checked for shell component sources")
	rootCmd.PersistentFlags().String("format", string(types.OutputYAML), "output format: yaml or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	viper.BindPFlag("plan.product_dir", rootCmd.PersistentFlags().Lookup("product-dir"))
	viper.BindPFlag("plan.shell_components_dir", rootCmd.PersistentFlags().Lookup("shell-components-dir"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("product-plan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "product-plan"))
		}
	}

	viper.SetEnvPrefix("PRODUCT_PLAN")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Msg("reading config file")
		}
	}
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
