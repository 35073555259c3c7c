package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	appconfig "github.com/saf-hub/sentinel/config"
	"github.com/saf-hub/sentinel/internal/catalog"
	"github.com/saf-hub/sentinel/internal/runner"
	"github.com/saf-hub/sentinel/internal/search"
	"github.com/saf-hub/sentinel/internal/server"
	sig "github.com/saf-hub/sentinel/internal/signal"
)

func main() {
	var cfgPath string
	var dataDir string

	root := &cobra.Command{
		Use:           "sentinel",
		Short:         "SAF intelligence signal collector",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (optional)")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override data directory")

	loadConfig := func() (*appconfig.Config, error) {
		cfg, err := appconfig.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		if dataDir != "" {
			cfg.Storage.DataDir = dataDir
		}
		return cfg, nil
	}

	var live bool
	run := &cobra.Command{
		Use:   "run [category|all]",
		Short: "Run one collection tick for a category (or all categories)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			liveMode := live || cfg.Fetch.Live

			target := "all"
			if len(args) == 1 {
				target = args[0]
			}

			ctx := cmd.Context()
			if target == "all" {
				results, err := runner.RunAll(ctx, cfg.Storage.DataDir, cfg.Fetch.Timeout, liveMode)
				if err != nil {
					return err
				}
				return printJSON(results)
			}

			cat, err := sig.ParseCategory(target)
			if err != nil {
				return err
			}
			def, err := catalog.Get(cat)
			if err != nil {
				return err
			}
			res, err := runner.New(def, cfg.Storage.DataDir, cfg.Fetch.Timeout).Run(ctx, liveMode)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
	run.Flags().BoolVar(&live, "live", false, "attempt live collection before degrading to synthetic")

	var serveAddr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the retained signal stores over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			addr := serveAddr
			if addr == "" {
				addr = cfg.Server.Address
			}
			return server.Run(addr, cfg.Storage.DataDir)
		},
	}
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")

	var schedule string
	var watchLive bool
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Run all categories on a cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sched, err := runner.NewScheduler(schedule, cfg.Storage.DataDir, cfg.Fetch.Timeout, watchLive || cfg.Fetch.Live)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := sched.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
	watch.Flags().StringVar(&schedule, "schedule", "@hourly", "cron expression, @hourly or @daily")
	watch.Flags().BoolVar(&watchLive, "live", false, "attempt live collection on each tick")

	var searchLimit int
	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the retained signals across all categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			idx, err := search.Build(cfg.Storage.DataDir)
			if err != nil {
				return err
			}
			defer idx.Close()
			hits, err := idx.Query(args[0], searchLimit)
			if err != nil {
				return err
			}
			return printJSON(hits)
		},
	}
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum hits to return")

	root.AddCommand(run, serve, watch, searchCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func printJSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
