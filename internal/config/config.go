// Package config defines configuration for the zafran CLI.
//
// Values come from, in increasing precedence: Default, a YAML file,
// ZAFRAN_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	sanitize "github.com/mrz1836/go-sanitize"
	"gopkg.in/yaml.v3"

	"github.com/sigman78/zafran/pkg/zafran"
)

// Config describes one progress bar and the simulated work driving it.
type Config struct {
	Total    uint64        `yaml:"total"`
	Prefix   string        `yaml:"prefix"`
	Suffix   string        `yaml:"suffix"`
	Done     string        `yaml:"done"`
	NCols    int           `yaml:"ncols"`
	Fill     string        `yaml:"fill"`
	Unfilled string        `yaml:"unfilled"`
	Format   string        `yaml:"format"`
	Interval time.Duration `yaml:"interval"`
	Workers  int           `yaml:"workers"`
	Strict   bool          `yaml:"strict"`
	Debug    bool          `yaml:"debug"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Total:    100,
		NCols:    zafran.DefaultNCols,
		Fill:     string(zafran.DefaultFill),
		Unfilled: string(zafran.DefaultUnfilled),
		Format:   zafran.DefaultFormat,
		Interval: 50 * time.Millisecond,
		Workers:  1,
	}
}

// yamlConfig is used for YAML unmarshaling with string sizes and durations.
type yamlConfig struct {
	Total    string `yaml:"total"`
	Prefix   string `yaml:"prefix"`
	Suffix   string `yaml:"suffix"`
	Done     string `yaml:"done"`
	NCols    int    `yaml:"ncols"`
	Fill     string `yaml:"fill"`
	Unfilled string `yaml:"unfilled"`
	Format   string `yaml:"format"`
	Interval string `yaml:"interval"`
	Workers  int    `yaml:"workers"`
	Strict   bool   `yaml:"strict"`
	Debug    bool   `yaml:"debug"`
}

// LoadFromFile loads configuration from a YAML file on top of Default.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.Total != "" {
		n, err := ParseSize(yc.Total)
		if err != nil {
			return Config{}, fmt.Errorf("parse total: %w", err)
		}
		cfg.Total = n
	}
	if yc.Interval != "" {
		d, err := time.ParseDuration(yc.Interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse interval: %w", err)
		}
		cfg.Interval = d
	}

	return cfg.Merge(Config{
		Prefix:   yc.Prefix,
		Suffix:   yc.Suffix,
		Done:     yc.Done,
		NCols:    yc.NCols,
		Fill:     yc.Fill,
		Unfilled: yc.Unfilled,
		Format:   yc.Format,
		Workers:  yc.Workers,
		Strict:   yc.Strict,
		Debug:    yc.Debug,
	}), nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the ZAFRAN_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("ZAFRAN_TOTAL"); v != "" {
		n, err := ParseSize(v)
		if err != nil {
			return fmt.Errorf("parse ZAFRAN_TOTAL: %w", err)
		}
		c.Total = n
	}
	if v := os.Getenv("ZAFRAN_PREFIX"); v != "" {
		c.Prefix = v
	}
	if v := os.Getenv("ZAFRAN_SUFFIX"); v != "" {
		c.Suffix = v
	}
	if v := os.Getenv("ZAFRAN_DONE"); v != "" {
		c.Done = v
	}
	if v := os.Getenv("ZAFRAN_NCOLS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse ZAFRAN_NCOLS: %w", err)
		}
		c.NCols = n
	}
	if v := os.Getenv("ZAFRAN_FILL"); v != "" {
		c.Fill = v
	}
	if v := os.Getenv("ZAFRAN_UNFILLED"); v != "" {
		c.Unfilled = v
	}
	if v := os.Getenv("ZAFRAN_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("ZAFRAN_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse ZAFRAN_INTERVAL: %w", err)
		}
		c.Interval = d
	}
	if v := os.Getenv("ZAFRAN_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse ZAFRAN_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("ZAFRAN_STRICT"); v != "" {
		c.Strict = v == "true" || v == "1"
	}
	if v := os.Getenv("ZAFRAN_DEBUG"); v != "" {
		c.Debug = v == "true" || v == "1"
	}
	return nil
}

// Normalize folds every label onto a single line. A label containing a
// line break would otherwise break the in-place redraw.
func (c *Config) Normalize() {
	c.Prefix = sanitize.SingleLine(c.Prefix)
	c.Suffix = sanitize.SingleLine(c.Suffix)
	c.Done = sanitize.SingleLine(c.Done)
}

// Validate validates the configuration. In strict mode settings the bar
// would silently replace with defaults are rejected as well.
func (c *Config) Validate() error {
	if c.Total == 0 {
		return errors.New("config: total must be positive")
	}
	if c.Workers <= 0 {
		return errors.New("config: workers must be positive")
	}
	if c.Interval < 0 {
		return errors.New("config: interval must not be negative")
	}
	if _, err := glyph("fill", c.Fill); err != nil {
		return err
	}
	if _, err := glyph("unfilled", c.Unfilled); err != nil {
		return err
	}
	if c.Strict {
		if err := zafran.CheckNCols(c.NCols); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := zafran.CheckFormat(c.Format); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// FillChars returns the fill and unfilled glyphs. Empty settings yield
// zero runes, which the bar treats as "keep" and "default".
func (c *Config) FillChars() (fill, unfilled rune) {
	fill, _ = glyph("fill", c.Fill)
	unfilled, _ = glyph("unfilled", c.Unfilled)
	return fill, unfilled
}

func glyph(name, s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("config: %s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.Total != 0 {
		c.Total = override.Total
	}
	if override.Prefix != "" {
		c.Prefix = override.Prefix
	}
	if override.Suffix != "" {
		c.Suffix = override.Suffix
	}
	if override.Done != "" {
		c.Done = override.Done
	}
	if override.NCols != 0 {
		c.NCols = override.NCols
	}
	if override.Fill != "" {
		c.Fill = override.Fill
	}
	if override.Unfilled != "" {
		c.Unfilled = override.Unfilled
	}
	if override.Format != "" {
		c.Format = override.Format
	}
	if override.Interval != 0 {
		c.Interval = override.Interval
	}
	if override.Workers != 0 {
		c.Workers = override.Workers
	}
	if override.Strict {
		c.Strict = override.Strict
	}
	if override.Debug {
		c.Debug = override.Debug
	}
	return c
}
