package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configName = "m2l.toml"

type fileConfig struct {
	Diagnostics struct {
		Color string `toml:"color"`
		Max   int    `toml:"max"`
		Short bool   `toml:"short"`
	} `toml:"diagnostics"`
	Trace struct {
		Level  string `toml:"level"`
		Output string `toml:"output"`
	} `toml:"trace"`
	Parse struct {
		Jobs int `toml:"jobs"`
	} `toml:"parse"`
}

// findConfig walks up from startDir looking for m2l.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// applyConfig copies keys present in the config file onto flags the user
// did not set explicitly.
func applyConfig(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		var ok bool
		path, ok, err = findConfig(".")
		if err != nil || !ok {
			return err
		}
	}

	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	set := func(flag string, key []string, value string) error {
		if !meta.IsDefined(key...) {
			return nil
		}
		f := cmd.Flags().Lookup(flag)
		if f == nil || f.Changed {
			return nil
		}
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("%s: %s: %w", path, flag, err)
		}
		return nil
	}
	return errors.Join(
		set("color", []string{"diagnostics", "color"}, cfg.Diagnostics.Color),
		set("max-diagnostics", []string{"diagnostics", "max"}, strconv.Itoa(cfg.Diagnostics.Max)),
		set("short", []string{"diagnostics", "short"}, strconv.FormatBool(cfg.Diagnostics.Short)),
		set("trace-level", []string{"trace", "level"}, cfg.Trace.Level),
		set("trace", []string{"trace", "output"}, cfg.Trace.Output),
		set("jobs", []string{"parse", "jobs"}, strconv.Itoa(cfg.Parse.Jobs)),
	)
}
