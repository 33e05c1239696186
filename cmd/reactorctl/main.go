// cmd/reactorctl/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-reactor-sim/internal/app"
	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/logging"
)

// options хранит глобальные флаги, общие для всех подкоманд.
type options struct {
	configPath string
	storePath  string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "reactorctl",
		Short: "Headless reactor simulation and save management",
		Long: `reactorctl runs the reactor simulation without a window.

It steps the world a fixed number of ticks, prints reactor and grid state,
and manages the save slots stored in SQLite.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(opts.configPath, !cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if opts.storePath != "" {
				cfg.Storage.Path = opts.storePath
			}
			if opts.verbose {
				cfg.Logging.Level = "debug"
			}
			log, err := logging.New(cfg.Logging)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.cfg, opts.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.toml", "TOML configuration file")
	root.PersistentFlags().StringVar(&opts.storePath, "store", "", "save database path (overrides storage.path)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newRunCmd(opts), newSavesCmd(opts), newSweepCmd(opts), newLayoutCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
