// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/pdiddy/product-plan/internal/product"
	"github.com/pdiddy/product-plan/pkg/types"
)

// envKeyReplacer maps nested keys such as plan.product_dir to
// PRODUCT_PLAN_PLAN_PRODUCT_DIR.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

func init() {
	viper.SetDefault("catalog.dir", "catalog")
	viper.SetDefault("catalog.max_results", 20)
	viper.SetDefault("serve.addr", ":8090")
}

// loadConfig reads the effective configuration from viper.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		Plan: types.PlanConfig{
			ProductDir:         viper.GetString("plan.product_dir"),
			ShellComponentsDir: viper.GetString("plan.shell_components_dir"),
		},
		Catalog: types.CatalogConfig{
			Dir:        viper.GetString("catalog.dir"),
			MaxResults: viper.GetInt("catalog.max_results"),
		},
		Serve: types.ServeConfig{
			Addr: viper.GetString("serve.addr"),
		},
		Format: types.OutputFormat(viper.GetString("format")),
	}
	switch cfg.Format {
	case "":
		cfg.Format = types.OutputYAML
	case types.OutputYAML, types.OutputJSON:
	default:
		return types.Config{}, fmt.Errorf("unsupported format %q: use yaml or json", cfg.Format)
	}
	return cfg, nil
}

// newLoader builds a product loader from the effective configuration.
func newLoader() (*product.Loader, types.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, types.Config{}, err
	}
	return product.NewLoader(cfg.Plan, log.Logger), cfg, nil
}
