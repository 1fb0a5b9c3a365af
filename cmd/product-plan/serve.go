// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/product-plan/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the product plan over read-only HTTP",
	Long: `Serve exposes the product plan as JSON. Documents are re-read on
every request.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, cfg, err := newLoader()
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Serve.Addr,
			Handler:           api.NewServer(loader, log.Logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", srv.Addr).Str("product_dir", cfg.Plan.ProductDir).Msg("serving product plan")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8090", "listen address")
	viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
