package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pf9/region-wizard/internal/config"
)

// RootCmd returns the region-wizard command. Without a subcommand it runs
// the interactive menu. Record files are read and written through fs.
func RootCmd(ctx context.Context, fs afero.Fs) *cobra.Command {
	var configFile string

	v := config.NewViper()
	a := &app{fs: fs}

	cmd := &cobra.Command{
		Use:   "region-wizard",
		Short: "Register regions and the hosts to attach to them",
		// Silence because we want to use our logger instead
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
			zap.S().Named("cli").Debugw("configuration loaded", "config", cfg.DebugMap())

			a.init(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Optional configuration file (yaml, json or toml)")
	flags.String("config-dir", "", "Directory holding du.conf and hosts.conf (default ~/.pf9-wizard)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "console", "Log format: console or json")
	for _, name := range []string{"config-dir", "log-level", "log-format"} {
		mustBind(v, name, flags.Lookup(name))
	}

	cmd.AddCommand(regionCmd(a))
	cmd.AddCommand(hostCmd(a))
	cmd.AddCommand(statusCmd(a))
	cmd.AddCommand(exportCmd(a))
	cmd.AddCommand(serveCmd(a, v))

	cmd.SetContext(ctx)
	return cmd
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Errorf("failed to bind flag %s: %w", key, err))
	}
}
