// Package config holds runtime configuration: defaults, the YAML config file,
// environment overrides, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// Order selects how matching entries are ordered before indices are assigned.
type Order string

const (
	OrderListing Order = "listing" // Directory enumeration order, unsorted (default).
	OrderName    Order = "name"    // Byte-wise lexicographic.
	OrderNatural Order = "natural" // Digit runs compared numerically ("clip2" < "clip10").
	OrderCollate Order = "collate" // Unicode collation (root locale).
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when the console stream is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// RangeConfig drives the fixed-range variant ("reseq range"): for every i in
// [From, To), Source formatted with i is renamed to Target formatted with i.
type RangeConfig struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Source string `yaml:"source"` // Default: "video_%d.mp4".
	Target string `yaml:"target"` // Default: "non%d.mp4".
}

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// overlaid by the config file, the environment, and finally CLI flags (see
// [Resolve]) before being passed by pointer to the packages that need it.
type Config struct {
	// Target folder. No default: it must come from an argument, RESEQ_FOLDER,
	// or the config file.
	Folder string `yaml:"folder"`

	// Naming.
	Extension string `yaml:"extension"` // Default: ".avi". Case-sensitive suffix match.
	Prefix    string `yaml:"prefix"`    // Default: "walking".
	Start     int    `yaml:"start"`     // Default: 0.
	Order     Order  `yaml:"order"`     // Default: "listing".

	Range RangeConfig `yaml:"range"`

	// Behavior flags.
	DryRun  bool `yaml:"dry_run"`
	Confirm bool `yaml:"confirm"` // Ask before renaming when stdin is a TTY.

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"`   // Default: "auto".
	LogFile   string    `yaml:"log_file"` // Optional log file path.
}

// DefaultConfig returns the built-in defaults: ".avi" entries become
// "walking<k>.avi" in listing order.
func DefaultConfig() Config {
	return Config{
		Extension: ".avi",
		Prefix:    "walking",
		Start:     0,
		Order:     OrderListing,
		Range: RangeConfig{
			From:   0,
			To:     57,
			Source: "video_%d.mp4",
			Target: "non%d.mp4",
		},
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and naming parts, canonicalizes the extension
// to carry a leading dot, and requires a folder.
func (c *Config) Validate() error {
	switch c.Order {
	case OrderListing, OrderName, OrderNatural, OrderCollate:
		// valid
	default:
		return fmt.Errorf("invalid order %q (use 'listing', 'name', 'natural' or 'collate')", c.Order)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	ext, err := normalizeExtension(c.Extension)
	if err != nil {
		return err
	}
	c.Extension = ext

	if strings.ContainsAny(c.Prefix, `/\`) {
		return fmt.Errorf("prefix %q must not contain a path separator", c.Prefix)
	}
	if c.Start < 0 {
		return errors.New("start index must not be negative")
	}

	if c.Folder == "" {
		return errors.New("need a folder (argument, RESEQ_FOLDER, or 'folder' in the config file)")
	}
	return nil
}

// MaxRangeSpan caps To-From for the range variant; every number in the
// range costs one stat call.
const MaxRangeSpan = 1 << 20

// ValidateRange checks the settings used only by the range variant.
func (c *Config) ValidateRange() error {
	if c.Range.From < 0 || c.Range.To < c.Range.From {
		return fmt.Errorf("invalid range [%d, %d)", c.Range.From, c.Range.To)
	}
	if c.Range.To-c.Range.From > MaxRangeSpan {
		return fmt.Errorf("range [%d, %d) spans more than %d numbers", c.Range.From, c.Range.To, MaxRangeSpan)
	}
	if err := validatePattern("source", c.Range.Source); err != nil {
		return err
	}
	return validatePattern("target", c.Range.Target)
}

// normalizeExtension validates and canonicalizes the extension suffix.
// Accepted forms: ".avi" and "avi". Output is ".avi"; case is preserved.
func normalizeExtension(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "." {
		return "", errors.New("extension must not be empty")
	}
	if strings.ContainsAny(s, `/\`) {
		return "", fmt.Errorf("extension %q must not contain a path separator", raw)
	}
	if !strings.HasPrefix(s, ".") {
		s = "." + s
	}
	return s, nil
}

// validatePattern requires exactly one %d verb and no other verbs, so that
// fmt.Sprintf(pattern, i) is well-formed. "%%" is allowed as a literal.
func validatePattern(name, pattern string) error {
	if pattern == "" {
		return fmt.Errorf("range %s pattern must not be empty", name)
	}
	if strings.ContainsAny(pattern, `/\`) {
		return fmt.Errorf("range %s pattern %q must not contain a path separator", name, pattern)
	}
	verbs := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		if i+1 >= len(pattern) {
			return fmt.Errorf("range %s pattern %q ends with a bare %%", name, pattern)
		}
		switch pattern[i+1] {
		case '%':
		case 'd':
			verbs++
		default:
			return fmt.Errorf("range %s pattern %q: only %%d is supported", name, pattern)
		}
		i++
	}
	if verbs != 1 {
		return fmt.Errorf("range %s pattern %q must contain exactly one %%d", name, pattern)
	}
	return nil
}
