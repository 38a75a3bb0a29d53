package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/kanban-board/internal/app"
	"github.com/BuzzLyutic/kanban-board/internal/config"
)

// NewRootCmd builds the kanban command tree.
func NewRootCmd(version string) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Single-user kanban board",
		Long: `kanban keeps boards, columns and tasks in a local sqlite file and,
when configured, mirrors them to postgres or redis.

Run "kanban serve" for the HTTP API or use the other commands directly.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	load := func() (config.Config, error) {
		return config.Load(configPath)
	}

	rootCmd.AddCommand(newServeCmd(load))
	rootCmd.AddCommand(newDispatchCmd(load))
	rootCmd.AddCommand(newShowCmd(load))
	rootCmd.AddCommand(newExportCmd(load))
	rootCmd.AddCommand(newImportCmd(load))
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

type configLoader func() (config.Config, error)

// withApp opens the app, waits for the remote state so the command sees it,
// runs fn and flushes pending saves.
func withApp(ctx context.Context, load configLoader, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	<-a.Service.Hydrate(ctx)
	return fn(ctx, a)
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kanban %s\n", version)
		},
	}
}
