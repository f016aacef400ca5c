// Package main is the entry point for the molcheck CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rmera/molcheck"
	"github.com/rmera/molcheck/internal/config"
	"github.com/rmera/molcheck/internal/logging"
	"github.com/rmera/molcheck/internal/metrics"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is the configuration loaded before any subcommand runs.
var cfg *config.Config

// logger is built from cfg.Log and shared with the molcheck package.
var logger = zap.NewNop()

// recorder collects the metrics of the run, written out by flushMetrics.
var recorder = metrics.New()

// rootCmd is the base command for the molcheck CLI.
var rootCmd = &cobra.Command{
	Use:   "molcheck",
	Short: "Validate molecular structure files and extract their atoms and bonds",
	Long: `molcheck checks PDB, MOL2 and SDF files against the rules of their
format and reports what is wrong with them. For PDB files it can also
extract the atoms and infer a bond graph from interatomic distances,
ready for 3D viewers.

Files ending in .gz or .zst are decompressed on the fly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c
		l, err := logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
		molcheck.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./molcheck.yaml or ~/.config/molcheck/molcheck.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("metrics-file", "", "write Prometheus metrics to this file after the run")
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("metrics.file", rootCmd.PersistentFlags().Lookup("metrics-file"))
}

// flushMetrics writes the recorded metrics if a metrics file is configured.
// A failure is logged but doesn't change the outcome of the command.
func flushMetrics() {
	if cfg == nil || cfg.Metrics.File == "" {
		return
	}
	if err := recorder.WriteFile(cfg.Metrics.File); err != nil {
		logger.Error("writing metrics", zap.String("file", cfg.Metrics.File), zap.Error(err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("molcheck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "molcheck"))
		}
	}

	viper.SetEnvPrefix("MOLCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
