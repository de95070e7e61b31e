package cmd

import (
	"fmt"

	"github.com/ecordell/optgen/helpers"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool/internal/config"
	"github.com/kubev2v/threadpool/internal/logger"
)

type app struct {
	v       *viper.Viper
	cfg     *config.Configuration
	restore func()
}

// NewRootCommand returns the threadpool command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}
	defaults := config.NewConfigurationWithOptionsAndDefaults()

	root := &cobra.Command{
		Use:           "threadpool",
		Short:         "Run jobs on a fixed-size worker pool",
		SilenceUsage:  true,
		SilenceErrors: true,
		// THREADPOOL_<FLAG> variables (e.g. THREADPOOL_HTTP_PORT) set any flag
		// the user left unset before the configuration is loaded.
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(config.EnvPrefix),
			func(cmd *cobra.Command, _ []string) error {
				return a.init(cmd)
			},
		),
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("log-format", defaults.LogFormat, "Log format: 'console' or 'json'")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	flags.Int("workers", defaults.Pool.Workers, "Number of pool workers")

	root.AddCommand(
		newRunCommand(a, defaults),
		newServeCommand(a, defaults),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.v, configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	_, restore, err := logger.Setup(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.restore = restore

	zap.S().Debugw("configuration loaded", "config", helpers.Flatten(cfg.DebugMap()))
	return nil
}

func (a *app) close() {
	_ = zap.L().Sync()
	if a.restore != nil {
		a.restore()
	}
}
