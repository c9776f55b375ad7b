package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/showroom/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "showroom: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "showroom",
		Short:         "Browse a company profile and its product catalog in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/showroom/config.toml)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/showroom/prefs.toml)")
	root.Flags().StringVar(&opts.CatalogPath, "catalog", "", "catalog YAML file, watched for changes (default built-in)")
	root.Flags().StringVar(&opts.Platform, "platform", "", "input platform: web or native")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newLogsCmd(&opts))
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog.yaml]",
		Short: "Check a catalog file and print a summary",
		Long:  "Check a catalog file and print a summary. Without an argument the built-in catalog is checked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return app.ValidateCatalog(path, cmd.OutOrStdout())
		},
	}
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	var (
		lines int
		raw   bool
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the showroom log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ShowLogs(*opts, lines, raw, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 200, "number of lines to show (0 for all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print JSON lines unformatted")
	return cmd
}
