package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/sigman78/zafran/internal/config"
	"github.com/sigman78/zafran/internal/workload"
	"github.com/sigman78/zafran/pkg/zafran"
)

// runFlags holds the raw flag values of the run command. Only flags set on
// the command line override the file and environment.
type runFlags struct {
	configPath string
	total      string
	prefix     string
	suffix     string
	done       string
	ncols      int
	fill       string
	unfilled   string
	format     string
	interval   time.Duration
	workers    int
	strict     bool
	debug      bool
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive one progress bar over a simulated workload",
		Long: `Drive one progress bar over a simulated workload.

Settings are read from, in increasing precedence: built-in defaults, the
YAML file given with --config, ZAFRAN_* environment variables and flags.

Example:
  zafran run --total 2MiB --format download --prefix Downloading --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(cmd, f)
			if err != nil {
				return err
			}
			return runBar(cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&f.total, "total", "", "Units of work, e.g. 100 or 2MiB (default 100)")
	fs.StringVar(&f.prefix, "prefix", "", "Label before the bar")
	fs.StringVar(&f.suffix, "suffix", "", "Label after the bar")
	fs.StringVar(&f.done, "done", "", "Prefix shown once the bar finishes")
	fs.IntVar(&f.ncols, "ncols", zafran.DefaultNCols, fmt.Sprintf("Bar width, 1..%d", zafran.MaxBarWidth))
	fs.StringVar(&f.fill, "fill", string(zafran.DefaultFill), "Glyph for completed work")
	fs.StringVar(&f.unfilled, "unfilled", string(zafran.DefaultUnfilled), "Glyph for remaining work")
	fs.StringVar(&f.format, "format", zafran.DefaultFormat, "Bar style: default or download")
	fs.DurationVar(&f.interval, "interval", 50*time.Millisecond, "Pause between steps")
	fs.IntVar(&f.workers, "workers", 1, "Concurrent workers")
	fs.BoolVar(&f.strict, "strict", false, "Reject settings the bar would silently replace")
	fs.BoolVar(&f.debug, "debug", false, "Enable verbose debug logging")
	return cmd
}

// loadRunConfig layers defaults, the config file, the environment and the
// flags that were set explicitly.
func loadRunConfig(cmd *cobra.Command, f runFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		cfg, err = config.LoadFromFile(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return config.Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("total") {
		n, err := config.ParseSize(f.total)
		if err != nil {
			return config.Config{}, &usageError{err: fmt.Errorf("--total: %w", err)}
		}
		cfg.Total = n
	}
	if fs.Changed("prefix") {
		cfg.Prefix = f.prefix
	}
	if fs.Changed("suffix") {
		cfg.Suffix = f.suffix
	}
	if fs.Changed("done") {
		cfg.Done = f.done
	}
	if fs.Changed("ncols") {
		cfg.NCols = f.ncols
	}
	if fs.Changed("fill") {
		cfg.Fill = f.fill
	}
	if fs.Changed("unfilled") {
		cfg.Unfilled = f.unfilled
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("interval") {
		cfg.Interval = f.interval
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	if fs.Changed("debug") {
		cfg.Debug = f.debug
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runBar(cmd *cobra.Command, cfg config.Config) error {
	if cfg.Debug {
		log.SetOutput(cmd.ErrOrStderr())
		log.Printf("config: %+v", cfg)
	}

	bar, err := zafran.New(cfg.Total, zafran.WithOutput(cmd.OutOrStdout()))
	if err != nil {
		return fmt.Errorf("create bar: %w", err)
	}
	bar.SetPrefix(cfg.Prefix)
	bar.SetSuffix(cfg.Suffix)
	bar.SetNCols(cfg.NCols)
	bar.SetFillChars(cfg.FillChars())
	bar.SetFormat(cfg.Format)
	if cfg.Strict {
		if err := bar.Validate(); err != nil {
			return err
		}
	}

	bar.Update(0)
	res, err := workload.Run(cmd.Context(), bar, workload.Options{
		Total:    cfg.Total,
		Workers:  cfg.Workers,
		Interval: cfg.Interval,
		Debug:    cfg.Debug,
	})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	bar.Finish(cfg.Done, "")

	if res.Failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d chunk(s) failed.\n", res.Failed)
	}
	return nil
}
