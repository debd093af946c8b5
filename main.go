package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"

	"github.com/karanbhatia-svg/portfolio/internal/config"
	"github.com/karanbhatia-svg/portfolio/internal/content"
	"github.com/karanbhatia-svg/portfolio/internal/logger"
	"github.com/karanbhatia-svg/portfolio/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve the portfolio site",
		Long:         "Serves the portfolio page, its sections and the resume download.\nSettings come from the environment (and .env), overridden by flags.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *cfg)
		},
	}
	cfg.BindFlags(root.PersistentFlags())
	root.AddCommand(newCheckCmd(cfg))
	return root
}

func serve(ctx context.Context, cfg config.Config) error {
	portfolio, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	srv, err := server.New(cfg, portfolio)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
