package config

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/Cyclone1070/filesize"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// Format validation
	if _, err := filesize.OptionsFromMap(c.Format); err != nil {
		errs = append(errs, fmt.Sprintf("format: %v", err))
	}

	// Scan validation
	if c.Scan.MaxDepth < -1 {
		errs = append(errs, "scan.max_depth must be >= -1")
	}
	if c.Scan.MaxEntries < 1 {
		errs = append(errs, "scan.max_entries must be >= 1")
	}
	if c.Scan.MinSize != "" {
		if _, err := humanize.ParseBytes(c.Scan.MinSize); err != nil {
			errs = append(errs, fmt.Sprintf("scan.min_size is not a size: %q", c.Scan.MinSize))
		}
	}

	// Report validation
	if c.Report.Top < 0 {
		errs = append(errs, "report.top must be >= 0")
	}
	colors := []struct {
		key, value string
	}{
		{"report.color_path", c.Report.ColorPath},
		{"report.color_size", c.Report.ColorSize},
		{"report.color_total", c.Report.ColorTotal},
		{"report.color_warning", c.Report.ColorWarning},
	}
	for _, color := range colors {
		if !isValidColor(color.value) {
			errs = append(errs, fmt.Sprintf("%s must be an ANSI code (0-255) or hex color, got %q", color.key, color.value))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

// Options builds the library options from the format section.
func (c *Config) Options() (filesize.Options, error) {
	return filesize.OptionsFromMap(c.Format)
}

// MinSizeBytes returns the scan threshold in bytes, 0 when unset.
func (c *Config) MinSizeBytes() (uint64, error) {
	if c.Scan.MinSize == "" {
		return 0, nil
	}
	return humanize.ParseBytes(c.Scan.MinSize)
}

// isValidColor accepts what lipgloss.Color understands. Empty means terminal default.
func isValidColor(s string) bool {
	if s == "" {
		return true
	}
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
