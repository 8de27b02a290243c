package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1000, cfg.Depth)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Greater(t, cfg.Workers, 0)
}

func TestLoadDotfileMissingIsNotAnError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	err := LoadDotfile(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 1000, cfg.Depth, "missing dotfile changes no observable behavior")
}

func TestLoadDotfileAppliesOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".microprologrc.toml")
	require.NoError(t, os.WriteFile(path, []byte("depth = 250\nprompt = \"?- \"\n"), 0o644))

	cfg := Default()
	require.NoError(t, LoadDotfile(cfg))
	assert.Equal(t, 250, cfg.Depth)
	assert.Equal(t, "?- ", cfg.Prompt)
}

func TestLoadDotfileMalformedIsWrappedError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".microprologrc.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid = = toml"), 0o644))

	cfg := Default()
	err := LoadDotfile(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
	assert.Equal(t, 1000, cfg.Depth, "a malformed file leaves built-in defaults in place")
}

// TestFlagOverridesDotfile covers spec.md §8 property 11: an explicit
// flag always wins over a dotfile-loaded value.
func TestFlagOverridesDotfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, ".microprologrc.toml")
	require.NoError(t, os.WriteFile(path, []byte("depth = 250\n"), 0o644))

	cfg := Default()
	require.NoError(t, LoadDotfile(cfg))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs, cfg)
	require.NoError(t, fs.Parse([]string{"--depth", "42"}))

	assert.Equal(t, 42, cfg.Depth)
}

func TestDotfileValueSurvivesWhenFlagNotPassed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, ".microprologrc.toml")
	require.NoError(t, os.WriteFile(path, []byte("depth = 250\n"), 0o644))

	cfg := Default()
	require.NoError(t, LoadDotfile(cfg))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs, cfg)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 250, cfg.Depth)
}
