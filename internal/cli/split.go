package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/configloader"
	"github.com/yaklabco/mdsplit/internal/logging"
	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/fsutil"
	"github.com/yaklabco/mdsplit/pkg/reporter"
	"github.com/yaklabco/mdsplit/pkg/runner"
	"github.com/yaklabco/mdsplit/pkg/split"
	"github.com/yaklabco/mdsplit/pkg/writer"
)

// stdinPath is the argument that selects standard input.
const stdinPath = "-"

type splitFlags struct {
	outDir      string
	check       bool
	backup      bool
	format      string
	flavor      string
	frontMatter bool
	maxLevel    int
	jobs        int
	include     []string
	exclude     []string
	compact     bool
	perFile     bool
	noText      bool
}

func newSplitCommand() *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split [paths...]",
		Short: "Split Markdown files into per-section files",
		Long:  splitLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, flags)
		},
	}

	addSplitFlags(cmd, flags)

	return cmd
}

const splitLongDescription = `Split Markdown files at top-level heading boundaries.

By default, splits all .md and .markdown files in the current directory
and subdirectories, printing sections to stdout. With --out-dir, each
input file's sections are written to <out-dir>/<input-stem>/NN-<slug>.md.

Concatenating a file's sections always reproduces the input byte for
byte. Pass "-" as the only path to read from standard input.

Examples:
  mdsplit split                       # Split current directory to stdout
  mdsplit split docs/                 # Split docs directory
  mdsplit split README.md             # Split single file
  mdsplit split - < notes.md          # Split standard input
  mdsplit split -o build/sections     # Write section files
  mdsplit split -o build --check      # Verify section files are fresh
  mdsplit split --max-level 2         # Split only at levels 1-2
  mdsplit split --format json         # Machine-readable output`

func runSplit(cmd *cobra.Command, args []string, flags *splitFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd, splitOverlay(cmd, flags))
	if err != nil {
		return err
	}

	if flags.check && flags.outDir == "" {
		return errors.New("--check requires --out-dir")
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

	logger.Debug("configuration loaded",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldFrontMatter, cfg.FrontMatter,
		logging.FieldMaxLevel, cfg.MaxLevel,
		logging.FieldJobs, cfg.Jobs,
	)

	var result *runner.Result
	if len(args) == 1 && args[0] == stdinPath {
		result, err = splitStdin(ctx, cmd.InOrStdin(), splitOpts)
	} else {
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

		logger.Debug("starting split run",
			logging.FieldPaths, runOpts.Paths,
			logging.FieldWorkingDir, runOpts.WorkingDir,
			logging.FieldJobs, runOpts.Jobs,
		)

		result, err = runner.New(runOpts).Run(ctx, runOpts)
	}
	if err != nil {
		return errors.Join(errors.New("split run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	if flags.outDir != "" {
		if flags.check {
			return checkOutputs(ctx, cmd, result, flags.outDir, colorMode)
		}
		return writeOutputs(ctx, cmd, result, flags, workDir)
	}

	format, err := reporter.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
		IncludeText: !flags.noText,
		PerFile:     flags.perFile,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasFailures() {
		return ErrSplitFailures
	}

	return nil
}

// splitStdin splits a single document read from standard input and
// wraps it in a Result so reporters and writers see a normal run.
func splitStdin(ctx context.Context, in io.Reader, opts *split.Options) (*runner.Result, error) {
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	result := &runner.Result{}
	result.Stats.FilesDiscovered = 1

	fr := runner.FileResult{Path: "stdin"}

	sections, err := split.New(opts).SplitFile(ctx, "stdin", content)
	if err != nil {
		fr.Err = err
		result.Files = append(result.Files, fr)
		result.Stats.FilesFailed = 1
		return result, nil
	}

	fr.Sections = sections
	result.Files = append(result.Files, fr)
	result.Stats.FilesProcessed = 1
	result.Stats.SectionsTotal = len(sections)
	for _, s := range sections {
		result.Stats.BytesTotal += s.Len()
	}

	return result, nil
}

// writeOutputs writes every successfully split file's sections to the
// output directory.
func writeOutputs(ctx context.Context, cmd *cobra.Command, result *runner.Result, flags *splitFlags, workDir string) error {
	logger := logging.Default()

	backup := fsutil.DefaultBackupConfig()
	backup.Enabled = flags.backup

	w, err := writer.New(writer.Options{
		OutDir: flags.outDir,
		Backup: backup,
	})
	if err != nil {
		return fmt.Errorf("create writer: %w", err)
	}

	var filesWritten, filesUnchanged int
	for _, fr := range result.Files {
		if fr.Err != nil {
			logger.Error("skipping failed file",
				logging.FieldPath, fr.Path,
				logging.FieldError, fr.Err,
			)
			continue
		}

		manifest, err := w.WriteDocument(ctx, fr.Path, fr.Sections)
		if err != nil {
			return fmt.Errorf("write sections for %s: %w", fr.Path, err)
		}

		// Flag inputs that changed between read and write; their
		// sections describe the old content.
		if fr.Info != nil {
			if modified, err := fsutil.CheckModified(ctx, fr.Info); err == nil && modified {
				logger.Warn("input changed during split; sections reflect the content at read time",
					logging.FieldPath, fr.Path,
				)
			}
		}

		filesWritten += manifest.FilesWritten()
		filesUnchanged += manifest.FilesUnchanged()

		logger.Debug("wrote document sections",
			logging.FieldInput, fr.Path,
			logging.FieldOutput, manifest.Dir,
			logging.FieldFilesWritten, manifest.FilesWritten(),
		)
	}

	logger.Info("split complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldSections, result.Stats.SectionsTotal,
		logging.FieldFilesWritten, filesWritten,
		"files_unchanged", filesUnchanged,
		logging.FieldOutDir, flags.outDir,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
	fmt.Fprintln(cmd.OutOrStdout(), styles.FormatSummaryOneLine(result.Stats))

	if result.HasFailures() {
		return ErrSplitFailures
	}

	return nil
}

// checkOutputs verifies that on-disk section files match a fresh split,
// reporting missing, stale, and leftover files.
func checkOutputs(ctx context.Context, cmd *cobra.Command, result *runner.Result, outDir, colorMode string) error {
	logger := logging.Default()
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	w, err := writer.New(writer.Options{OutDir: outDir})
	if err != nil {
		return fmt.Errorf("create writer: %w", err)
	}

	clean := true
	for _, fr := range result.Files {
		if fr.Err != nil {
			logger.Error("skipping failed file",
				logging.FieldPath, fr.Path,
				logging.FieldError, fr.Err,
			)
			continue
		}

		check, err := w.CheckDocument(ctx, fr.Path, fr.Sections)
		if err != nil {
			return fmt.Errorf("check sections for %s: %w", fr.Path, err)
		}
		if check.Clean() {
			continue
		}
		clean = false

		for _, path := range check.Missing {
			fmt.Fprintf(out, "%s %s\n", styles.Failure.Render("missing:"), styles.FilePath.Render(path))
		}
		for _, stale := range check.Stale {
			fmt.Fprintf(out, "%s %s\n", styles.Failure.Render("stale:"), styles.FilePath.Render(stale.Path))
			printDiff(out, styles, stale.Diff)
		}
		for _, path := range check.Extra {
			fmt.Fprintf(out, "%s %s\n", styles.Warning.Render("extra:"), styles.FilePath.Render(path))
		}
	}

	if result.HasFailures() {
		return ErrSplitFailures
	}

	if !clean {
		return ErrStaleOutputs
	}

	fmt.Fprintln(out, styles.Success.Render("All section files are up to date."))
	return nil
}

// printDiff renders a unified diff with per-line styling.
func printDiff(out io.Writer, styles *pretty.Styles, diff *writer.Diff) {
	if !diff.HasChanges() {
		return
	}

	fmt.Fprintln(out, styles.DiffHeader.Render("--- a/"+diff.Path))
	fmt.Fprintln(out, styles.DiffHeader.Render("+++ b/"+diff.Path))

	for _, hunk := range diff.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		fmt.Fprintln(out, styles.DiffHunk.Render(header))

		for _, line := range hunk.Lines {
			switch line.Kind {
			case writer.DiffLineAdd:
				fmt.Fprintln(out, styles.DiffAdd.Render("+"+line.Content))
			case writer.DiffLineRemove:
				fmt.Fprintln(out, styles.DiffRemove.Render("-"+line.Content))
			default:
				fmt.Fprintln(out, styles.DiffContext.Render(" "+line.Content))
			}
		}
	}
}

// splitOverlay builds a config overlay from the flags the user actually
// set on the command line.
func splitOverlay(cmd *cobra.Command, flags *splitFlags) *configloader.Overlay {
	overlay := &configloader.Overlay{}

	if cmd.Flags().Changed("flavor") {
		flavor := configloader.NormalizeFlavor(config.Flavor(flags.flavor))
		overlay.Flavor = &flavor
	}
	if cmd.Flags().Changed("front-matter") {
		overlay.FrontMatter = &flags.frontMatter
	}
	if cmd.Flags().Changed("max-level") {
		overlay.MaxLevel = &flags.maxLevel
	}
	if cmd.Flags().Changed("jobs") {
		overlay.Jobs = &flags.jobs
	}
	if cmd.Flags().Changed("format") {
		format := configloader.NormalizeFormat(config.OutputFormat(flags.format))
		overlay.Output.Format = &format
	}
	if cmd.Flags().Changed("include") {
		overlay.Files.Include = flags.include
	}
	if cmd.Flags().Changed("exclude") {
		overlay.Files.Exclude = flags.exclude
	}

	return overlay
}

func addSplitFlags(cmd *cobra.Command, flags *splitFlags) {
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "write section files under this directory")
	cmd.Flags().BoolVar(&flags.check, "check", false, "verify section files are up to date instead of writing")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep sidecar backups of overwritten section files")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor: gfm, commonmark")
	cmd.Flags().BoolVar(&flags.frontMatter, "front-matter", true, "keep front matter attached to the first section")
	cmd.Flags().IntVar(&flags.maxLevel, "max-level", 0, "deepest heading level that opens a section (0 = all)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns to include")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format (JSON)")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output separate table for each file (table format)")
	cmd.Flags().BoolVar(&flags.noText, "no-text", false, "omit raw section text from JSON output")
}
