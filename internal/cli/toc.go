package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/configloader"
	"github.com/yaklabco/mdsplit/internal/logging"
	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/fsutil"
	goldmarkparser "github.com/yaklabco/mdsplit/pkg/parser/goldmark"
	"github.com/yaklabco/mdsplit/pkg/slug"
	"github.com/yaklabco/mdsplit/pkg/split"
)

type tocFlags struct {
	format   string
	flavor   string
	maxLevel int
}

func newTocCommand() *cobra.Command {
	flags := &tocFlags{}

	cmd := &cobra.Command{
		Use:   "toc [paths...]",
		Short: "Print document outlines",
		Long: `Print the heading outline of Markdown files.

Unlike split boundaries, the outline includes headings at every depth,
including headings nested inside blockquotes and lists.

Examples:
  mdsplit toc README.md               # Markdown list with anchors
  mdsplit toc --format table doc.md   # Aligned table
  mdsplit toc --format json docs/*.md # Machine-readable output
  mdsplit toc --max-level 2 doc.md    # Only levels 1-2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToc(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "markdown", "output format: markdown, table, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor: gfm, commonmark")
	cmd.Flags().IntVar(&flags.maxLevel, "max-level", 0, "deepest heading level to include (0 = all)")

	return cmd
}

// tocEntry is one outline entry in JSON output.
type tocEntry struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Line   int    `json:"line"`
	Anchor string `json:"anchor"`
}

// tocDocument is one file's outline in JSON output.
type tocDocument struct {
	Path     string     `json:"path"`
	Headings []tocEntry `json:"headings"`
}

func runToc(cmd *cobra.Command, args []string, flags *tocFlags) error {
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

	cfg, err := loadConfig(cmd, overlay)
	if err != nil {
		return err
	}

	parser := goldmarkparser.New(string(cfg.Flavor))

	var documents []tocDocument
	failed := false
	for _, path := range args {
		content, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			logger.Error("read failed", logging.FieldPath, path, logging.FieldError, err)
			failed = true
			continue
		}

		doc, err := parser.Parse(ctx, path, content)
		if err != nil {
			logger.Error("parse failed", logging.FieldPath, path, logging.FieldError, err)
			failed = true
			continue
		}

		outline := split.Outline(doc)
		documents = append(documents, tocDocument{
			Path:     path,
			Headings: outlineEntries(outline, cfg.MaxLevel),
		})
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case "markdown":
		renderTocMarkdown(out, documents, len(args) > 1)
	case "table":
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			colorMode = "auto"
		}
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
		renderTocTable(out, styles, documents)
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(documents); err != nil {
			return fmt.Errorf("encode outline: %w", err)
		}
	default:
		return fmt.Errorf("invalid format %q: must be markdown, table, or json", flags.format)
	}

	if failed {
		return ErrSplitFailures
	}

	return nil
}

// outlineEntries converts an outline to entries, capping depth and
// generating GitHub-style anchors with duplicate suffixes.
func outlineEntries(outline []split.Heading, maxLevel int) []tocEntry {
	dedupe := slug.NewDeduper()

	entries := make([]tocEntry, 0, len(outline))
	for _, h := range outline {
		if maxLevel > 0 && h.Level > maxLevel {
			continue
		}
		entries = append(entries, tocEntry{
			Level:  h.Level,
			Title:  h.Title,
			Line:   h.Line,
			Anchor: dedupe.Take(h.Title),
		})
	}
	return entries
}

// renderTocMarkdown prints outlines as nested Markdown lists with
// anchor links.
func renderTocMarkdown(out io.Writer, documents []tocDocument, multi bool) {
	for i, doc := range documents {
		if multi {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "<!-- %s -->\n", doc.Path)
		}
		for _, h := range doc.Headings {
			indent := strings.Repeat("  ", max(h.Level-1, 0))
			fmt.Fprintf(out, "%s- [%s](#%s)\n", indent, h.Title, h.Anchor)
		}
	}
}

// renderTocTable prints outlines as aligned LEVEL/LINE/TITLE tables.
func renderTocTable(out io.Writer, styles *pretty.Styles, documents []tocDocument) {
	for i, doc := range documents {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, styles.FilePath.Render(doc.Path))
		fmt.Fprintln(out, styles.TableHeader.Render("LEVEL  LINE   TITLE"))
		for _, h := range doc.Headings {
			fmt.Fprintf(out, "%-6d %-6d %s\n", h.Level, h.Line, styles.HeadingTitle.Render(h.Title))
		}
	}
}
