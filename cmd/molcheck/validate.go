package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rmera/molcheck"
	"github.com/rmera/molcheck/chemjson"
	"github.com/rmera/molcheck/internal/resultcache"
)

// fileResult pairs a validated file with its verdict.
type fileResult struct {
	File   string                    `json:"file"`
	Result molcheck.ValidationResult `json:"result"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check that molecular files are valid instances of their format",
	Long: `Validate checks each file against the rules of its format and prints
the verdict and diagnostics. The format is taken from --format or, when
omitted, from each file extension (.pdb, .ent, .mol2, .sdf, .mol).

Files with identical content are validated once. The command exits with
status 1 if any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		jobs, _ := cmd.Flags().GetInt("jobs")
		defer flushMetrics()
		results := validateFiles(args, formatName, jobs, resultcache.New(cfg.Cache.TTL))

		if err := chemjson.Encode(cmd.OutOrStdout(), results, cfg.Output.Format); err != nil {
			return err
		}
		invalid := 0
		for _, r := range results {
			if !r.Result.Valid {
				invalid++
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d files are invalid", invalid, len(results))
		}
		return nil
	},
}

// validateFiles validates every path concurrently, with at most jobs files
// in flight, and returns the results in the order of paths.
func validateFiles(paths []string, formatName string, jobs int, cache *resultcache.Cache) []fileResult {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]fileResult, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			start := time.Now()
			res := validatePath(p, formatName, cache)
			recorder.RecordValidation(res.Format, res.Valid, time.Since(start))
			results[i] = fileResult{File: p, Result: res}
			return nil
		})
	}
	_ = g.Wait()
	hits, misses := cache.Stats()
	recorder.RecordCache(hits, misses)
	logger.Debug("validation done", zap.Int("files", len(paths)), zap.Int("cacheHits", hits), zap.Int("cacheMisses", misses))
	return results
}

// validatePath resolves the format of p and validates it. Like the
// validators, it reports every problem in the result.
func validatePath(p, formatName string, cache *resultcache.Cache) molcheck.ValidationResult {
	var format molcheck.Format
	var err error
	if formatName != "" {
		format, err = molcheck.ParseFormat(formatName)
	} else {
		format, err = molcheck.FormatFromFilename(p)
	}
	if err != nil {
		// unknown formats are reported by Validate itself
		logger.Warn("unknown format", zap.String("file", p), zap.Error(err))
	}
	content, err := molcheck.ReadFile(p)
	if err != nil {
		logger.Error("reading file", zap.String("file", p), zap.Error(err))
		return molcheck.FailureResult(format, err)
	}
	res := cache.Validate(content, format)
	logger.Info("validated", zap.String("file", p), zap.Stringer("format", format), zap.Bool("valid", res.Valid))
	return res
}

func init() {
	validateCmd.Flags().StringP("format", "f", "", "declared format: pdb, mol2 or sdf (default: from the file extension)")
	validateCmd.Flags().IntP("jobs", "j", 0, "files validated at the same time (default: number of CPUs)")

	rootCmd.AddCommand(validateCmd)
}
