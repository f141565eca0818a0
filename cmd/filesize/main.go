// Package main provides the filesize command. It reports the size of files
// and directory trees in human-readable units.
package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Cyclone1070/filesize"
	"github.com/Cyclone1070/filesize/internal/config"
	"github.com/Cyclone1070/filesize/internal/fsutil"
	"github.com/Cyclone1070/filesize/internal/report"
	"github.com/Cyclone1070/filesize/internal/scan"
)

// fileSystem is what the command reads paths through.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// Dependencies holds the components required to run the command.
type Dependencies struct {
	LoadConfig func() (*config.Config, error)
	NewLogger  func(verbose bool) (*zap.Logger, error)
	FS         fileSystem
	Stdout     io.Writer
	Stderr     io.Writer
}

func defaultDependencies() Dependencies {
	return Dependencies{
		LoadConfig: config.Load,
		NewLogger:  newLogger,
		FS:         fsutil.NewOSFileSystem(),
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// newLogger builds a development logger on stderr: warnings by default,
// everything with verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func newApp(deps Dependencies) *cli.App {
	return &cli.App{
		Name:      "filesize",
		Usage:     "Report the size of files and directories",
		ArgsUsage: "PATH...",
		Writer:    deps.Stdout,
		ErrWriter: deps.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "decimal",
				Usage: "convert with powers of 1000 instead of 1024",
			},
			&cli.BoolFlag{
				Name:  "short",
				Usage: "use short unit names (MiB, MB)",
			},
			&cli.IntFlag{
				Name:  "precision",
				Usage: fmt.Sprintf("fractional digits to show (0-%d)", filesize.MaxPrecision),
			},
			&cli.StringFlag{
				Name:  "label-style",
				Usage: "unit names to display: binary or decimal (defaults to the byte base)",
			},
			&cli.IntFlag{
				Name:  "depth",
				Usage: "list entries at most this deep, -1 for unlimited (totals always include everything)",
			},
			&cli.BoolFlag{
				Name:  "include-ignored",
				Usage: "count files matched by .gitignore files",
			},
			&cli.StringFlag{
				Name:  "min-size",
				Usage: "skip files smaller than this, e.g. 10kB or 1MiB",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "number of largest entries to list per path",
			},
			&cli.IntFlag{
				Name:  "max-entries",
				Usage: "stop walking a path after this many entries",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log skipped entries",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, deps)
		},
	}
}

func run(c *cli.Context, deps Dependencies) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one PATH is required")
	}

	logger, err := deps.NewLogger(c.Bool("verbose"))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Load configuration (from defaults + ~/.config/filesize/config.json)
	cfg, err := deps.LoadConfig()
	if err != nil {
		logger.Warn("failed to load config, using default configuration", zap.Error(err))
		cfg = config.DefaultConfig()
	}

	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	minSize, err := cfg.MinSizeBytes()
	if err != nil {
		return err
	}

	scanner := scan.NewScanner(deps.FS, cfg.Format, cfg.Scan.MaxEntries, logger)
	results := make([]*scan.Result, 0, len(paths))
	for _, path := range paths {
		result, err := scanner.Run(c.Context, scan.Request{
			Root:           path,
			MaxDepth:       cfg.Scan.MaxDepth,
			IncludeIgnored: cfg.Scan.IncludeIgnored,
			MinSize:        minSize,
		})
		if err != nil {
			return err
		}
		logger.Debug("scanned",
			zap.String("root", path),
			zap.Int("files", result.FileCount),
			zap.Int("skipped", len(result.Skipped)))
		results = append(results, result)
	}

	out, err := report.NewRenderer(cfg.Report, cfg.Format).Render(results)
	if err != nil {
		return err
	}
	_, err = io.WriteString(deps.Stdout, out)
	return err
}

// applyFlags overlays explicitly set flags onto cfg.
func applyFlags(c *cli.Context, cfg *config.Config) {
	format := filesize.OptionMap{}
	maps.Copy(format, cfg.Format)

	if c.Bool("decimal") {
		format[filesize.OptionByteBase] = filesize.Decimal
	}
	if c.IsSet("precision") {
		format[filesize.OptionPrecision] = c.Int("precision")
	}
	if c.IsSet("label-style") {
		format[filesize.OptionLabelStyle] = c.String("label-style")
	}
	cfg.Format = format

	if c.IsSet("depth") {
		cfg.Scan.MaxDepth = c.Int("depth")
	}
	if c.Bool("include-ignored") {
		cfg.Scan.IncludeIgnored = true
	}
	if c.IsSet("min-size") {
		cfg.Scan.MinSize = c.String("min-size")
	}
	if c.IsSet("max-entries") {
		cfg.Scan.MaxEntries = c.Int("max-entries")
	}
	if c.Bool("short") {
		cfg.Report.Short = true
	}
	if c.IsSet("top") {
		cfg.Report.Top = c.Int("top")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(defaultDependencies()).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
