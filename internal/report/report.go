package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/Cyclone1070/filesize"
	"github.com/Cyclone1070/filesize/internal/config"
	"github.com/Cyclone1070/filesize/internal/scan"
)

// Renderer turns scan results into a styled text report.
type Renderer struct {
	styles Styles
	format filesize.OptionMap
	short  bool
	top    int
}

// NewRenderer creates a Renderer. format is used for the grand total; each
// result's sizes already carry their own options.
func NewRenderer(cfg config.ReportConfig, format filesize.OptionMap) *Renderer {
	return &Renderer{
		styles: NewStyles(cfg),
		format: format,
		short:  cfg.Short,
		top:    cfg.Top,
	}
}

// Render lists each result's total and largest entries, then a grand total
// when there is more than one root.
func (r *Renderer) Render(results []*scan.Result) (string, error) {
	var b strings.Builder

	for i, result := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		if err := r.renderResult(&b, result); err != nil {
			return "", err
		}
	}

	if len(results) > 1 {
		total, err := GrandTotal(results, r.format)
		if err != nil {
			return "", err
		}
		formatted, err := total.ForHumans(r.short)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\n%s\n", r.styles.Total.Render("Total: "+formatted))
	}

	return b.String(), nil
}

func (r *Renderer) renderResult(b *strings.Builder, result *scan.Result) error {
	total, err := result.Total.ForHumans(r.short)
	if err != nil {
		return fmt.Errorf("failed to format total for %s: %w", result.Root, err)
	}

	files := "files"
	if result.FileCount == 1 {
		files = "file"
	}
	fmt.Fprintf(b, "%s  %s %s\n",
		r.styles.Root.Render(result.Root),
		r.styles.Total.Render(total),
		r.styles.Faint.Render(fmt.Sprintf("(%d %s)", result.FileCount, files)))

	entries := result.Entries
	if len(entries) > r.top {
		entries = entries[:r.top]
	}
	if len(entries) > 0 {
		sizes := make([]string, len(entries))
		for i, entry := range entries {
			s, err := entry.Size.ForHumans(r.short)
			if err != nil {
				return fmt.Errorf("failed to format %s: %w", entry.RelativePath, err)
			}
			sizes[i] = s
		}
		width := lo.Max(lo.Map(sizes, func(s string, _ int) int { return lipgloss.Width(s) }))
		sizeStyle := r.styles.Size.Width(width)

		for i, entry := range entries {
			path := r.styles.Path.Render(entry.RelativePath)
			if entry.IsDir {
				path = r.styles.Dir.Render(entry.RelativePath + "/")
			}
			fmt.Fprintf(b, "  %s  %s\n", sizeStyle.Render(sizes[i]), path)
		}
		if hidden := len(result.Entries) - len(entries); hidden > 0 {
			fmt.Fprintf(b, "  %s\n", r.styles.Faint.Render(fmt.Sprintf("... %d more", hidden)))
		}
	}

	unreadable := lo.Filter(result.Skipped, func(s scan.Skipped, _ int) bool {
		return s.Reason == scan.SkipUnreadable
	})
	if len(unreadable) > 0 {
		fmt.Fprintf(b, "  %s\n", r.styles.Warning.Render(fmt.Sprintf("%d entries could not be read", len(unreadable))))
	}
	if result.Truncated {
		fmt.Fprintf(b, "  %s\n", r.styles.Warning.Render(result.TruncationReason))
	}
	return nil
}

// GrandTotal sums the totals of results.
func GrandTotal(results []*scan.Result, format filesize.OptionMap) (filesize.FileSize, error) {
	total, err := filesize.Zero(format)
	if err != nil {
		return filesize.FileSize{}, err
	}
	for _, result := range results {
		bytes, err := result.Total.GetBytes()
		if err != nil {
			return filesize.FileSize{}, err
		}
		total = total.AddBytes(bytes)
	}
	return total.Evaluate()
}
