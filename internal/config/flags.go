package config

// This file implements CLI flag binding and the source precedence used by
// Resolve. Flags are parsed into a scratch Config and only the ones the user
// actually set are copied over, so that file and environment values hold
// unless overridden on the command line.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// FlagConfig names the --config flag, which selects the YAML file.
const FlagConfig = "config"

// flagSetters copies one flag's parsed value from src into dst.
var flagSetters = map[string]func(dst, src *Config){
	"extension": func(dst, src *Config) { dst.Extension = src.Extension },
	"prefix":    func(dst, src *Config) { dst.Prefix = src.Prefix },
	"start":     func(dst, src *Config) { dst.Start = src.Start },
	"order":     func(dst, src *Config) { dst.Order = src.Order },
	"dry-run":   func(dst, src *Config) { dst.DryRun = src.DryRun },
	"confirm":   func(dst, src *Config) { dst.Confirm = src.Confirm },
	"verbose":   func(dst, src *Config) { dst.Verbose = src.Verbose },
	"color":     func(dst, src *Config) { dst.ColorMode = src.ColorMode },
	"log":       func(dst, src *Config) { dst.LogFile = src.LogFile },
	"from":      func(dst, src *Config) { dst.Range.From = src.Range.From },
	"to":        func(dst, src *Config) { dst.Range.To = src.Range.To },
	"source":    func(dst, src *Config) { dst.Range.Source = src.Range.Source },
	"target":    func(dst, src *Config) { dst.Range.Target = src.Range.Target },
}

// BindPersistentFlags registers flags shared by every command: display,
// logging, dry-run, and the config file path.
func BindPersistentFlags(fs *pflag.FlagSet, dst *Config) {
	def := DefaultConfig()
	fs.String(FlagConfig, "", "YAML config file (default: ./"+DefaultFile+" if present)")
	fs.BoolVarP(&dst.DryRun, "dry-run", "d", false, "Preview only; do not rename anything")
	fs.BoolVarP(&dst.Verbose, "verbose", "v", false, "Verbose output")
	dst.ColorMode = def.ColorMode
	fs.Var(&colorModeValue{&dst.ColorMode}, "color", "Colored logs: auto | always | never")
	fs.StringVarP(&dst.LogFile, "log", "l", "", "Append logs to file")
}

// BindSequenceFlags registers the naming flags of the sequential renamer.
func BindSequenceFlags(fs *pflag.FlagSet, dst *Config) {
	def := DefaultConfig()
	fs.StringVarP(&dst.Extension, "extension", "e", def.Extension, "Only rename entries ending with this suffix (case-sensitive)")
	fs.StringVarP(&dst.Prefix, "prefix", "p", def.Prefix, "Name prefix placed before the index")
	fs.IntVarP(&dst.Start, "start", "s", def.Start, "First index")
	dst.Order = def.Order
	fs.VarP(&orderValue{&dst.Order}, "order", "o", "Index order: listing | name | natural | collate")
}

// BindRangeFlags registers the flags of the fixed-range variant.
func BindRangeFlags(fs *pflag.FlagSet, dst *Config) {
	def := DefaultConfig()
	fs.IntVar(&dst.Range.From, "from", def.Range.From, "First number (inclusive)")
	fs.IntVar(&dst.Range.To, "to", def.Range.To, "Last number (exclusive)")
	fs.StringVar(&dst.Range.Source, "source", def.Range.Source, "Source name pattern with one %d")
	fs.StringVar(&dst.Range.Target, "target", def.Range.Target, "Target name pattern with one %d")
}

// BindConfirmFlag registers --confirm on commands that rename.
func BindConfirmFlag(fs *pflag.FlagSet, dst *Config) {
	fs.BoolVar(&dst.Confirm, "confirm", false, "Ask for confirmation before renaming (TTY only)")
}

// ApplyFlags copies into cfg every flag in fs that was set on the command line.
func ApplyFlags(fs *pflag.FlagSet, src, cfg *Config) {
	fs.Visit(func(f *pflag.Flag) {
		if set, ok := flagSetters[f.Name]; ok {
			set(cfg, src)
		}
	})
}

// Resolve builds the effective Config. Precedence, lowest first: defaults,
// YAML file, .env and RESEQ_* variables, flags, then the positional folder.
// The result is validated.
func Resolve(fs *pflag.FlagSet, flags *Config, args []string) (Config, error) {
	cfg := DefaultConfig()

	path, explicit := DefaultFile, false
	if f := fs.Lookup(FlagConfig); f != nil && f.Changed {
		path, explicit = f.Value.String(), true
	}
	found, err := LoadFile(path, &cfg)
	if err != nil {
		return cfg, err
	}
	if explicit && !found {
		return cfg, fmt.Errorf("config file not found: %s", path)
	}

	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	ApplyFlags(fs, flags, &cfg)

	switch len(args) {
	case 0:
	case 1:
		cfg.Folder = NormalizeDirArg(args[0])
	default:
		return cfg, fmt.Errorf("need at most one folder (got %d)", len(args))
	}
	cfg.Folder = NormalizeDirArg(cfg.Folder)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// pflag.Value adapters so we can use enum types (Order, ColorMode) with fs.Var.

type orderValue struct{ p *Order }

func (o *orderValue) String() string { return string(*o.p) }
func (o *orderValue) Type() string   { return "order" }
func (o *orderValue) Set(s string) error {
	switch v := Order(strings.ToLower(s)); v {
	case OrderListing, OrderName, OrderNatural, OrderCollate:
		*o.p = v
	default:
		return fmt.Errorf("invalid order %q (use 'listing', 'name', 'natural' or 'collate')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch v := ColorMode(strings.ToLower(s)); v {
	case ColorAuto, ColorAlways, ColorNever:
		*c.p = v
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
