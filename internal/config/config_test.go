package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/Walking", "/data/Walking"},
		{"single trailing slash", "/data/Walking/", "/data/Walking"},
		{"multiple trailing slashes", "/data/Walking///", "/data/Walking"},
		{"root path", "/", "/"},
		{"relative path", "Single_person_violent/Walking", "Single_person_violent/Walking"},
		{"relative with slash", "Walking/", "Walking"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".avi", cfg.Extension)
	assert.Equal(t, "walking", cfg.Prefix)
	assert.Equal(t, 0, cfg.Start)
	assert.Equal(t, OrderListing, cfg.Order)
	assert.Empty(t, cfg.Folder, "no hard-coded folder")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with folder", func(c *Config) {}, false},
		{"missing folder", func(c *Config) { c.Folder = "" }, true},
		{"natural order", func(c *Config) { c.Order = OrderNatural }, false},
		{"unknown order", func(c *Config) { c.Order = "random" }, true},
		{"unknown color", func(c *Config) { c.ColorMode = "sometimes" }, true},
		{"empty extension", func(c *Config) { c.Extension = "" }, true},
		{"extension with separator", func(c *Config) { c.Extension = "a/.avi" }, true},
		{"prefix with separator", func(c *Config) { c.Prefix = "../walking" }, true},
		{"empty prefix allowed", func(c *Config) { c.Prefix = "" }, false},
		{"negative start", func(c *Config) { c.Start = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Folder = "Walking"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NormalizesExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Folder = "Walking"
	cfg.Extension = " avi "
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".avi", cfg.Extension)

	cfg.Extension = ".AVI"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".AVI", cfg.Extension, "case is preserved")
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		r       RangeConfig
		wantErr bool
	}{
		{"defaults", DefaultConfig().Range, false},
		{"empty range", RangeConfig{From: 3, To: 3, Source: "v%d", Target: "n%d"}, false},
		{"reversed", RangeConfig{From: 5, To: 1, Source: "v%d", Target: "n%d"}, true},
		{"negative", RangeConfig{From: -1, To: 1, Source: "v%d", Target: "n%d"}, true},
		{"no verb", RangeConfig{To: 1, Source: "video.mp4", Target: "n%d"}, true},
		{"two verbs", RangeConfig{To: 1, Source: "v%d_%d", Target: "n%d"}, true},
		{"string verb", RangeConfig{To: 1, Source: "v%s", Target: "n%d"}, true},
		{"escaped percent", RangeConfig{To: 1, Source: "100%%_%d", Target: "n%d"}, false},
		{"trailing percent", RangeConfig{To: 1, Source: "v%d%", Target: "n%d"}, true},
		{"separator", RangeConfig{To: 1, Source: "v%d", Target: "../n%d"}, true},
		{"widest span", RangeConfig{From: 5, To: 5 + MaxRangeSpan, Source: "v%d", Target: "n%d"}, false},
		{"span too wide", RangeConfig{To: MaxRangeSpan + 1, Source: "v%d", Target: "n%d"}, true},
		{"max int", RangeConfig{To: math.MaxInt, Source: "v%d", Target: "n%d"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Range = tt.r
			err := cfg.ValidateRange()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reseq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("folder: Single_person_violent/Walking\nprefix: standing\norder: name\nrange:\n  to: 10\n"), 0o644))

	cfg := DefaultConfig()
	found, err := LoadFile(path, &cfg)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Single_person_violent/Walking", cfg.Folder)
	assert.Equal(t, "standing", cfg.Prefix)
	assert.Equal(t, OrderName, cfg.Order)
	assert.Equal(t, ".avi", cfg.Extension, "absent keys keep defaults")
	assert.Equal(t, 10, cfg.Range.To)
	assert.Equal(t, "video_%d.mp4", cfg.Range.Source)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := DefaultConfig()
	found, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"), &cfg)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reseq.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	cfg := DefaultConfig()
	found, err := LoadFile(path, &cfg)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reseq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefx: typo\n"), 0o644))
	cfg := DefaultConfig()
	_, err := LoadFile(path, &cfg)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFolder, "/data/Walking/")
	t.Setenv(EnvPrefix, "")
	t.Setenv(EnvStart, "3")
	t.Setenv(EnvOrder, "NATURAL")
	t.Setenv(EnvDryRun, "true")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, "/data/Walking", cfg.Folder)
	assert.Equal(t, "", cfg.Prefix, "set-but-empty prefix is honored")
	assert.Equal(t, 3, cfg.Start)
	assert.Equal(t, OrderNatural, cfg.Order)
	assert.True(t, cfg.DryRun)
}

func TestApplyEnv_Malformed(t *testing.T) {
	t.Setenv(EnvStart, "three")
	cfg := DefaultConfig()
	assert.Error(t, ApplyEnv(&cfg))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RESEQ_PREFIX=standing\n"), 0o644))
	t.Setenv(EnvPrefix, "") // registers cleanup; existing variables win
	require.NoError(t, os.Unsetenv(EnvPrefix))

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "standing", os.Getenv(EnvPrefix))
}

func newFlagSet(dst *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("reseq", pflag.ContinueOnError)
	BindPersistentFlags(fs, dst)
	BindSequenceFlags(fs, dst)
	BindRangeFlags(fs, dst)
	BindConfirmFlag(fs, dst)
	return fs
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(DefaultFile, []byte("folder: from-file\nprefix: file\nstart: 1\norder: name\n"), 0o644))
	t.Setenv(EnvStart, "2")

	var flags Config
	fs := newFlagSet(&flags)
	require.NoError(t, fs.Parse([]string{"--order", "natural", "--to", "5"}))

	cfg, err := Resolve(fs, &flags, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Folder)
	assert.Equal(t, "file", cfg.Prefix, "file beats default")
	assert.Equal(t, 2, cfg.Start, "env beats file")
	assert.Equal(t, OrderNatural, cfg.Order, "flag beats file")
	assert.Equal(t, 5, cfg.Range.To)
	assert.Equal(t, ".avi", cfg.Extension, "unset flag keeps default")
}

func TestResolve_PositionalFolder(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvFolder, "from-env")

	var flags Config
	fs := newFlagSet(&flags)
	require.NoError(t, fs.Parse([]string{"Walking/"}))

	cfg, err := Resolve(fs, &flags, fs.Args())
	require.NoError(t, err)
	assert.Equal(t, "Walking", cfg.Folder)
}

func TestResolve_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	var flags Config
	fs := newFlagSet(&flags)
	require.NoError(t, fs.Parse(nil))
	_, err := Resolve(fs, &flags, nil)
	assert.ErrorContains(t, err, "need a folder")

	_, err = Resolve(fs, &flags, []string{"a", "b"})
	assert.ErrorContains(t, err, "at most one folder")

	var flags2 Config
	fs2 := newFlagSet(&flags2)
	require.NoError(t, fs2.Parse([]string{"--config", "missing.yaml", "Walking"}))
	_, err = Resolve(fs2, &flags2, fs2.Args())
	assert.ErrorContains(t, err, "config file not found")
}

func TestFlagValues(t *testing.T) {
	var flags Config
	fs := newFlagSet(&flags)
	assert.Error(t, fs.Parse([]string{"--order", "shuffle"}))

	fs = newFlagSet(&flags)
	require.NoError(t, fs.Parse([]string{"--color", "NEVER", "-o", "Collate"}))
	assert.Equal(t, ColorNever, flags.ColorMode)
	assert.Equal(t, OrderCollate, flags.Order)
}
