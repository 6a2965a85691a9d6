package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var configFilePath = flag.String("config_file", "config.txtpb", "Path to the configuration file.")

// LoadFile applies the config file at `path` onto the flags of `flagSet`.
// A missing file or an empty path leaves the flags untouched.
func LoadFile(flagSet *flag.FlagSet, path string) error {
	if path == "" {
		slog.Info("Config file not specified. Skipping config initialization.")
		return nil
	}

	configBytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("Config file does not exist.", "path", path, "error", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	conf, err := parseConfig(configBytes)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := setConfigFlags(flagSet, conf); err != nil {
		return fmt.Errorf("failed to set flags from config file: %w", err)
	}
	slog.Debug("Config file applied.", "path", path)
	return nil
}

// InitFlags parses the command line and then applies the config file specified by the -config_file flag.
// It should be called after defining all flags and before using them.
// Assumes config file doesn't have repeated/map fields. Supports nested messages only.
func InitFlags() {
	flag.Parse()

	// If the config file cannot be applied, we use the flag values as they are.
	if err := LoadFile(flag.CommandLine, *configFilePath); err != nil {
		slog.Error("Failed to load config file.", "error", err)
	}
}
