package main

import (
	"github.com/spf13/cobra"

	"github.com/rmera/molcheck/chemjson"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return chemjson.Encode(cmd.OutOrStdout(), cfg, cfg.Output.Format)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
