package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pario-ai/tagtally/pkg/config"
)

var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:           "tagtally",
		Short:         "tagtally — hashtag co-occurrence from cached Twitter searches",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, gf)
		},
	}

	root.PersistentFlags().StringVarP(&gf.configPath, "config", "c", config.DefaultPath, "path to config file")
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(
		newShellCmd(gf),
		newSearchCmd(gf),
		newCacheCmd(gf),
		newHistoryCmd(gf),
	)
	return root
}
