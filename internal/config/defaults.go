package config

import "github.com/Cyclone1070/filesize"

// Config holds all configuration for the filesize command.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	// Format is handed to filesize.OptionsFromMap, so its keys are the
	// library option names (precision, byte_base, label_style, ...).
	Format filesize.OptionMap `json:"format"`
	Scan   ScanConfig         `json:"scan"`
	Report ReportConfig       `json:"report"`
}

type ScanConfig struct {
	MaxDepth       int    `json:"max_depth"`       // Default: -1 (unlimited)
	IncludeIgnored bool   `json:"include_ignored"` // Default: false
	MinSize        string `json:"min_size"`        // Default: "" (no threshold), e.g. "10 kB"
	MaxEntries     int    `json:"max_entries"`     // Default: 50000
}

type ReportConfig struct {
	Short        bool   `json:"short"`         // Default: false (long unit names)
	Top          int    `json:"top"`           // Default: 10 (largest entries listed per root, 0 = totals only)
	ColorPath    string `json:"color_path"`    // Default: "63"
	ColorSize    string `json:"color_size"`    // Default: "42"
	ColorTotal   string `json:"color_total"`   // Default: "214"
	ColorWarning string `json:"color_warning"` // Default: "196"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format: filesize.OptionMap{},
		Scan: ScanConfig{
			MaxDepth:   -1,
			MaxEntries: 50000,
		},
		Report: ReportConfig{
			Top:          10,
			ColorPath:    "63",
			ColorSize:    "42",
			ColorTotal:   "214",
			ColorWarning: "196",
		},
	}
}
