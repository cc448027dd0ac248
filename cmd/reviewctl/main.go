// Package main is the offline companion of the review API: it exports,
// pushes and pulls annotations using the same configuration.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/translation-review/internal/app"
	"github.com/spf13/cobra"
)

const defaultEnvPath = "cmd/reviewctl/.env"

func main() {
	app.ConfigureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reviewctl",
		Short:         "Manage translation review annotations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newExportCmd(),
		newPushCmd(),
		newPullCmd(),
		newStatusCmd(),
	)
	return root
}

// withApp builds the application from the environment, runs fn and flushes
// everything afterwards.
func withApp(ctx context.Context, fn func(a *app.App) error) error {
	cfg, err := app.LoadConfig(defaultEnvPath)
	if err != nil {
		return err
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
