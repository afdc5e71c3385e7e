package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/configloader"
	"github.com/yaklabco/mdsplit/internal/logging"
	"github.com/yaklabco/mdsplit/pkg/analysis"
	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/reporter"
	"github.com/yaklabco/mdsplit/pkg/runner"
	"github.com/yaklabco/mdsplit/pkg/split"
)

type statsFlags struct {
	format   string
	flavor   string
	maxLevel int
	jobs     int
	sortBy   string
	desc     bool
	noLangs  bool
}

func newStatsCommand() *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats [paths...]",
		Short: "Report section statistics",
		Long: `Analyze Markdown files and report section statistics: totals,
section counts by heading level, per-file breakdowns, and a census of
fenced code block languages.

Examples:
  mdsplit stats                       # Summary for current directory
  mdsplit stats docs/                 # Summary for docs directory
  mdsplit stats --format json         # Machine-readable report
  mdsplit stats --sort-by bytes --desc  # Largest files first`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "summary", "output format: summary, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor: gfm, commonmark")
	cmd.Flags().IntVar(&flags.maxLevel, "max-level", 0, "deepest heading level that opens a section (0 = all)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.sortBy, "sort-by", "path", "per-file sort field: path, sections, bytes")
	cmd.Flags().BoolVar(&flags.desc, "desc", false, "sort per-file table in descending order")
	cmd.Flags().BoolVar(&flags.noLangs, "no-languages", false, "skip the code block language census")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, flags *statsFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	overlay := &configloader.Overlay{}
	if cmd.Flags().Changed("flavor") {
		flavor := configloader.NormalizeFlavor(config.Flavor(flags.flavor))
		overlay.Flavor = &flavor
	}
	if cmd.Flags().Changed("max-level") {
		overlay.MaxLevel = &flags.maxLevel
	}
	if cmd.Flags().Changed("jobs") {
		overlay.Jobs = &flags.jobs
	}

	cfg, err := loadConfig(cmd, overlay)
	if err != nil {
		return err
	}

	sortBy, err := analysis.ParseSortField(flags.sortBy)
	if err != nil {
		return fmt.Errorf("invalid sort field: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	splitOpts := &split.Options{
		Flavor:          string(cfg.Flavor),
		KeepFrontMatter: cfg.FrontMatter,
		MaxLevel:        cfg.MaxLevel,
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     cfg.Files.Extensions,
		IncludeGlobs:   cfg.Files.Include,
		ExcludeGlobs:   cfg.Files.Exclude,
		FollowSymlinks: cfg.Files.FollowSymlinks,
		Jobs:           cfg.Jobs,
		Split:          splitOpts,
	}

	logger.Debug("starting stats run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(runOpts).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("stats run failed"), err)
	}

	analysisOpts := analysis.Options{
		SortBy:           sortBy,
		SortDesc:         flags.desc,
		WorkingDir:       workDir,
		IncludeByFile:    true,
		IncludeLanguages: !flags.noLangs,
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case "json":
		report := analysis.Analyze(result, analysisOpts)
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	case "summary":
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			colorMode = "auto"
		}
		report := analysis.Analyze(result, analysisOpts)
		renderer := reporter.NewSummaryRenderer(reporter.Options{
			Writer:     out,
			Color:      colorMode,
			WorkingDir: workDir,
		})
		if err := renderer.Render(ctx, report); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	default:
		return fmt.Errorf("invalid format %q: must be summary or json", flags.format)
	}

	if result.HasFailures() {
		return ErrSplitFailures
	}

	return nil
}
