// Package main is the entry point for the almanac CLI.
package main

import (
	"fmt"
	"os"

	"github.com/liznear/almanac-from-scratch/internal/config"
	"github.com/liznear/almanac-from-scratch/internal/log"
	"github.com/liznear/almanac-from-scratch/parser"
	"github.com/liznear/almanac-from-scratch/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	envFile   string
	verbose   bool
	workers   int
	logFormat string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "almanac",
		Short:         "Find the lowest location reachable from an almanac's seeds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "path to a .env file (default .env)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every table stage")
	cmd.PersistentFlags().IntVar(&flags.workers, "workers", config.DefaultWorkers, "goroutines per table for seed ranges")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", string(config.DefaultLogFormat), "log format: console or json")

	cmd.AddCommand(solveCmd(flags))
	cmd.AddCommand(traceCmd(flags))
	cmd.AddCommand(checkCmd(flags))
	cmd.AddCommand(versionCmd())
	return cmd
}

// session is what every subcommand needs before it can do its work.
type session struct {
	cfg     config.EnvConfig
	logger  *zap.Logger
	almanac *parser.Almanac
}

// open loads the configuration, lets explicitly set flags override it, and
// parses the almanac in filename.
func (f *globalFlags) open(cmd *cobra.Command, filename string) (*session, error) {
	s := &session{}
	err := utils.Run(
		utils.Step("load config", func() (err error) {
			s.cfg, err = config.LoadConfig(f.envFile)
			return err
		}),
		utils.Step("apply flags", func() error {
			return f.override(cmd, &s.cfg)
		}),
		func() error {
			s.logger = log.New(cmd.ErrOrStderr(), s.cfg.LogLevel, s.cfg.LogFormat)
			return nil
		},
		utils.Step("read almanac", func() (err error) {
			s.almanac, err = parser.ParseFile(filename)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Loaded almanac",
		zap.String("file", filename),
		zap.Int("seeds", len(s.almanac.Seeds)),
		zap.Int("tables", len(s.almanac.Tables)),
	)
	return s, nil
}

func (f *globalFlags) override(cmd *cobra.Command, cfg *config.EnvConfig) error {
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = config.LogFormat(f.logFormat)
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg.Validate()
}

func (s *session) close() {
	_ = s.logger.Sync()
}
