// Package config - Optional YAML-backed defaults for the benchreport CLI.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes for the report's assessment lines.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options carries CLI defaults. Flags set explicitly on the command line
// take precedence over file values. Budgets and output filenames are fixed
// and intentionally absent here.
type Options struct {
	// Format is "text" (human report) or "json" (summary document on stdout).
	Format string `json:"format" yaml:"format"`
	// CSV also writes the benchmark_summary.csv sidecar when set.
	CSV bool `json:"csv" yaml:"csv"`
	// Color is "auto", "always", or "never".
	Color string `json:"color" yaml:"color"`
	// Watch groups the watch-mode settings.
	Watch WatchOptions `json:"watch" yaml:"watch"`
}

// WatchOptions configures watch mode.
type WatchOptions struct {
	// DebounceMS is the quiet window, in milliseconds, before a rerun.
	DebounceMS int `json:"debounce_ms" yaml:"debounce_ms"`
}

// Default returns the options used when no config file is given.
func Default() Options {
	return Options{
		Format: FormatText,
		Color:  ColorAuto,
		Watch:  WatchOptions{DebounceMS: 250},
	}
}

// Load reads options from a YAML file, layered over Default.
//
// Arguments:
// - path: Path to the YAML options file.
//
// Returns:
// - Options: The merged options.
// - error: Error if the file is unreadable, unparseable, or invalid.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(err, "config read failed")
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrap(err, "config parse failed")
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

// Validate rejects values the CLI cannot honor.
func (o Options) Validate() error {
	switch o.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("invalid format %q (want %q or %q)", o.Format, FormatText, FormatJSON)
	}

	switch o.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("invalid color mode %q (want %q, %q, or %q)", o.Color, ColorAuto, ColorAlways, ColorNever)
	}

	if o.Watch.DebounceMS < 0 {
		return errors.New("watch.debounce_ms must not be negative")
	}

	return nil
}

// Debounce returns the watch quiet window as a duration.
func (o Options) Debounce() time.Duration {
	return time.Duration(o.Watch.DebounceMS) * time.Millisecond
}
