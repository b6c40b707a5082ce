package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"FinDash/internal/di"
	"FinDash/pkg/config"
	"FinDash/pkg/server"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "findash",
		Short:         "Futures dashboard API with synthetic fallback data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "config/config.yaml", "config file path (empty for built-in defaults)")

	root.AddCommand(serveCmd(opts))
	root.AddCommand(snapshotCmd(opts))
	root.AddCommand(historyCmd(opts))
	return root
}

func loadConfig(opts *rootOptions, oneShot bool) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	if oneShot {
		// stdout carries the command's JSON
		cfg.Log.Output = "stderr"
		cfg.Kafka.Enabled = false
	}
	return cfg, nil
}

func buildApp(opts *rootOptions, oneShot bool) (*server.App, func(), error) {
	cfg, err := loadConfig(opts, oneShot)
	if err != nil {
		return nil, nil, err
	}
	app, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("app initialization failed: %w", err)
	}
	return app, cleanup, nil
}

func serveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := buildApp(opts, false)
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Run(cmd.Context())
		},
	}
}

func snapshotCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot SYMBOL",
		Short: "Fetch one futures snapshot, falling back to curated or synthetic data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := buildApp(opts, true)
			if err != nil {
				return err
			}
			defer cleanup()

			res := app.Futures().Fetch(cmd.Context(), args[0])
			app.Futures().Wait()
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
}

func historyCmd(opts *rootOptions) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "history SYMBOL",
		Short: "Generate a synthetic daily price series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must not be negative")
			}
			app, cleanup, err := buildApp(opts, true)
			if err != nil {
				return err
			}
			defer cleanup()
			return writeJSON(cmd.OutOrStdout(), app.Futures().History(args[0], days))
		},
	}
	cmd.Flags().IntVar(&days, "days", 90, "calendar days to cover, weekends are skipped")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
