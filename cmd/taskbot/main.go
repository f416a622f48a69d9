// Package main is the entry point for the taskbot daemon.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Importing commands also registers the bot commands via init().
	"taskbot/internal/commands"
	"taskbot/internal/config"
	"taskbot/internal/router"
	"taskbot/internal/store"
	"taskbot/internal/telegram"
)

const version = "0.1.0"

func main() {
	var configDir string
	var debug bool

	root := &cobra.Command{
		Use:           "taskbot",
		Short:         "Telegram bot that keeps a task list per chat",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configDir, debug)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", "", "override config directory")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("taskbot %s\n", version)
		},
	})

	// Cancel on interrupt so polling shuts down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configDir string, debug bool) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	r := router.New(commands.DefaultRegistry, store.New())

	bot, err := telegram.New(telegram.Options{
		Token:       cfg.Token,
		PollTimeout: cfg.PollTimeout,
		Debug:       cfg.Debug,
	}, r, log)
	if err != nil {
		return fmt.Errorf("connect to bot api: %w", err)
	}

	return bot.Run(ctx)
}
