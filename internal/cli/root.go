// Package cli implements the slugify command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/anishsharma21/cassius-frontend-sub001/internal/config"
	"github.com/anishsharma21/cassius-frontend-sub001/pkg/logger"
)

// Config is the environment configuration of the tool.
type Config struct {
	Log         logger.Config
	Reserved    []string `env:"SLUG_RESERVED" envDefault:"admin,api,new,edit"`
	MaxAttempts int      `env:"SLUG_MAX_ATTEMPTS" envDefault:"100"`
	Fold        bool     `env:"SLUG_FOLD" envDefault:"false"`
}

// runtime is the state shared by subcommands of one root command.
type runtime struct {
	log        *slog.Logger
	cfg        Config
	logLevel   string
	outputJSON bool
}

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rt := &runtime{log: logger.NewNope()}

	cmd := &cobra.Command{
		Use:           "slugify",
		Short:         "Generate and check URL slugs for blog posts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVar(&rt.outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().StringVar(&rt.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	cmd.AddCommand(newMakeCmd(rt))
	cmd.AddCommand(newUniqueCmd(rt))
	cmd.AddCommand(newExtractCmd(rt))
	cmd.AddCommand(newCheckCmd(rt))
	cmd.AddCommand(newPostCmd(rt))

	return cmd
}

func (rt *runtime) setup(cmd *cobra.Command) error {
	if err := config.Load(&rt.cfg); err != nil {
		return err
	}
	if rt.logLevel != "" {
		if _, ok := logger.ParseLevel(rt.logLevel); !ok {
			return fmt.Errorf("unknown log level %q", rt.logLevel)
		}
		rt.cfg.Log.Level = rt.logLevel
	}
	rt.log = logger.New(rt.cfg.Log, cmd.ErrOrStderr(), logExtractors...)
	cmd.SetContext(withCommand(cmd.Context(), cmd.Name()))
	return nil
}
