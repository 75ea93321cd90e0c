package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohammad-safakhou/concierge/config"
	"github.com/mohammad-safakhou/concierge/internal/agent"
	"github.com/mohammad-safakhou/concierge/internal/console"
	srv "github.com/mohammad-safakhou/concierge/internal/server"
	"github.com/mohammad-safakhou/concierge/internal/telemetry"
)

func main() {
	var cfgPath string

	root := &cobra.Command{Use: "concierge", Short: "Local concierge research agent"}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")

	chat := &cobra.Command{
		Use:   "chat",
		Short: "Run the interactive terminal session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndValidate(cfgPath)
			if err != nil {
				return err
			}
			logger := log.New(os.Stderr, "[ORCH] ", log.LstdFlags)
			tele := telemetry.New(nil)
			prompter := console.NewStdio(os.Stdin, os.Stdout)
			orch, err := agent.NewOrchestrator(cfg, logger, tele, prompter, os.Stdout)
			if err != nil {
				return err
			}
			repl := &console.REPL{In: os.Stdin, Out: os.Stdout, Model: cfg.LLM.Model}
			return repl.Run(context.Background(), orch)
		},
	}

	ask := &cobra.Command{
		Use:   "ask [goal]",
		Short: "Run a single research turn and print the summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndValidate(cfgPath)
			if err != nil {
				return err
			}
			goal := ""
			for i, a := range args {
				if i > 0 {
					goal += " "
				}
				goal += a
			}
			logger := log.New(os.Stderr, "[ORCH] ", log.LstdFlags)
			tele := telemetry.New(nil)
			orch, err := agent.NewOrchestrator(cfg, logger, tele, console.Nop{}, os.Stderr)
			if err != nil {
				return err
			}
			summary, err := orch.RunTurn(context.Background(), goal)
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		},
	}

	var serveAddr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndValidate(cfgPath)
			if err != nil {
				return err
			}
			return srv.Run(serveAddr, cfg)
		},
	}
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")

	root.AddCommand(chat, ask, serve)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadAndValidate(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}
