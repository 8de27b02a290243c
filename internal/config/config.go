// Package config resolves the interpreter's startup configuration
// from three layers, lowest precedence first: built-in defaults, an
// optional TOML dotfile, and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	// DefaultPrompt is shown before reading a new top-level clause or
	// query.
	DefaultPrompt = "&- "
	// DefaultHistoryFile is appended to the user's home directory when
	// no override is given.
	DefaultHistoryFile = ".microprolog_history"
	// dotfileName is looked up in the user's home directory.
	dotfileName = ".microprologrc.toml"
)

// Config holds every value that shapes interpreter startup.
type Config struct {
	Depth       int    `toml:"depth"`
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Workers     int    `toml:"workers"`
	Verbose     bool   `toml:"verbose"`

	// InitialFile, if non-empty, is consulted before the REPL starts.
	InitialFile string
}

// Default returns a Config with built-in defaults and no dotfile or
// flag overrides applied.
func Default() *Config {
	return &Config{
		Depth:       1000,
		Prompt:      DefaultPrompt,
		HistoryFile: defaultHistoryPath(),
		Workers:     runtime.NumCPU(),
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultHistoryFile
	}
	return filepath.Join(home, DefaultHistoryFile)
}

// Flags declares the interpreter's command-line flags on fs, binding
// each one directly into cfg. Call Flags before fs.Parse, and load any
// dotfile beforehand (LoadDotfile) so flags can override it once
// parsed: each flag's default is the value cfg already holds, so a
// flag that is not passed leaves that value in place.
func Flags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "recursion depth limit for SLD resolution")
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "REPL prompt string")
	fs.StringVar(&cfg.HistoryFile, "history-file", cfg.HistoryFile, "path to the REPL history file")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker pool size for the batch query runner")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print wrapped error chains")
}

// LoadDotfile merges ~/.microprologrc.toml into cfg, skipping silently
// if the file does not exist. A malformed file is reported as a
// wrapped error so the caller can print an IOError-class diagnostic
// and continue with whatever defaults cfg already carried.
func LoadDotfile(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, dotfileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return errors.Wrapf(err, "parsing config file %s", path)
	}
	return nil
}
