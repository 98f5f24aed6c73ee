package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by [ApplyEnv].
const (
	EnvFolder    = "RESEQ_FOLDER"
	EnvExtension = "RESEQ_EXTENSION"
	EnvPrefix    = "RESEQ_PREFIX"
	EnvStart     = "RESEQ_START"
	EnvOrder     = "RESEQ_ORDER"
	EnvDryRun    = "RESEQ_DRY_RUN"
	EnvVerbose   = "RESEQ_VERBOSE"
	EnvColor     = "RESEQ_COLOR"
	EnvLogFile   = "RESEQ_LOG"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none are
// given) into the process environment. Variables already set win, and a
// missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays RESEQ_* environment variables onto cfg. Empty values are
// ignored; malformed numbers or booleans are reported.
func ApplyEnv(cfg *Config) error {
	if v := env(EnvFolder); v != "" {
		cfg.Folder = NormalizeDirArg(v)
	}
	if v := env(EnvExtension); v != "" {
		cfg.Extension = v
	}
	if v, ok := os.LookupEnv(EnvPrefix); ok {
		cfg.Prefix = v // an empty prefix is meaningful ("0.avi", "1.avi", ...)
	}
	if v := env(EnvStart); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be a whole number (got %q)", EnvStart, v)
		}
		cfg.Start = n
	}
	if v := env(EnvOrder); v != "" {
		cfg.Order = Order(strings.ToLower(v))
	}
	if v := env(EnvDryRun); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q)", EnvDryRun, v)
		}
		cfg.DryRun = b
	}
	if v := env(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q)", EnvVerbose, v)
		}
		cfg.Verbose = b
	}
	if v := env(EnvColor); v != "" {
		cfg.ColorMode = ColorMode(strings.ToLower(v))
	}
	if v := env(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
