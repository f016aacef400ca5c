package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/molcheck"
	"github.com/rmera/molcheck/chemjson"
)

// stdinName is the file name that stands for standard input.
const stdinName = "-"

// readInput reads a whole file, or standard input if name is "-".
func readInput(name string) ([]byte, error) {
	if name == stdinName {
		return io.ReadAll(os.Stdin)
	}
	return molcheck.ReadFile(name)
}

var framesCmd = &cobra.Command{
	Use:   "frames [results.json]",
	Short: "Turn a simulation trajectory sample into per-frame records",
	Long: `Frames reads the trajectory sample returned by a simulation (the
"trajectory_sample" object of its results, or the bare sample) and prints
one record per time step with the potential and kinetic energies and the
temperature. Missing values are reported as 0.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if args[0] != stdinName {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		frames, err := chemjson.FramesFromSample(in)
		if err != nil {
			return err
		}
		return chemjson.Encode(cmd.OutOrStdout(), frames, cfg.Output.Format)
	},
}

func init() {
	rootCmd.AddCommand(framesCmd)
}
